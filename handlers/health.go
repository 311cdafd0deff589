package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimp01/hural-bot/utils"
)

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
