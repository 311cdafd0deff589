package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Telegram transport.
	BotToken         string `mapstructure:"BOT_TOKEN"`
	TelegramMode     string `mapstructure:"TELEGRAM_MODE"` // "polling" or "webhook"
	WebhookURL       string `mapstructure:"WEBHOOK_URL"`
	ChannelID        string `mapstructure:"CHANNEL_ID"`
	MaxUpdatesPerMin int    `mapstructure:"MAX_UPDATES_PER_MIN"`

	// Google Sheets (the durable signup store) and Calendar.
	SheetsCredentialsPath string `mapstructure:"SHEETS_CREDENTIALS_PATH"`
	SheetID               string `mapstructure:"SHEET_ID"`
	SheetName             string `mapstructure:"SHEET_NAME"`
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	CalendarEnabled       bool   `mapstructure:"CALENDAR_ENABLED"`

	// Event schedule. Weekdays are cron-style: 0=Sunday .. 6=Saturday.
	Timezone        string   `mapstructure:"TIMEZONE"`
	EventWeekday    int      `mapstructure:"EVENT_WEEKDAY"`
	ReminderWeekday int      `mapstructure:"REMINDER_WEEKDAY"`
	ReminderHour    int      `mapstructure:"REMINDER_HOUR"`
	ReminderMinute  int      `mapstructure:"REMINDER_MINUTE"`
	Slots           []string `mapstructure:"SLOTS"`

	// Pending-selection storage: "memory" keeps selections in-process,
	// "redis" adds TTL eviction for abandoned selections.
	SelectionStore  string `mapstructure:"SELECTION_STORE"`
	SelectionTTLMin int    `mapstructure:"SELECTION_TTL_MIN"`

	// Redis configuration (used when SELECTION_STORE is "redis").
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisSelectionDB int    `mapstructure:"REDIS_SELECTION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. The schedule defaults describe the original event:
	// presentations every Wednesday 15:00-16:00 Moscow time, reminder digest
	// on Tuesday evening.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("CHANNEL_ID", "")
	viper.SetDefault("SHEET_ID", "")
	viper.SetDefault("TELEGRAM_MODE", "polling")
	viper.SetDefault("WEBHOOK_URL", "")
	viper.SetDefault("MAX_UPDATES_PER_MIN", 60)
	viper.SetDefault("SHEETS_CREDENTIALS_PATH", "credentials.json")
	viper.SetDefault("SHEET_NAME", "Signups")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("CALENDAR_ENABLED", false)
	viper.SetDefault("TIMEZONE", "Europe/Moscow")
	viper.SetDefault("EVENT_WEEKDAY", 3)
	viper.SetDefault("REMINDER_WEEKDAY", 2)
	viper.SetDefault("REMINDER_HOUR", 19)
	viper.SetDefault("REMINDER_MINUTE", 0)
	viper.SetDefault("SLOTS", []string{
		"15:00-15:10", "15:10-15:20", "15:20-15:30",
		"15:30-15:40", "15:40-15:50", "15:50-16:00",
	})
	viper.SetDefault("SELECTION_STORE", "memory")
	viper.SetDefault("SELECTION_TTL_MIN", 0)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SELECTION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
