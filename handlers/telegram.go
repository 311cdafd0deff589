package handlers

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/alimp01/hural-bot/services/signup"
)

// BotHandler routes incoming Telegram updates into the signup workflow.
type BotHandler struct {
	Bot    *tgbotapi.BotAPI
	Signup signup.SignupService
	Logger *zap.Logger

	// baseCtx bounds updates that arrive outside the polling loop (webhook
	// deliveries). It is cancelled at shutdown.
	baseCtx context.Context
}

func NewBotHandler(ctx context.Context, bot *tgbotapi.BotAPI, svc signup.SignupService, logger *zap.Logger) *BotHandler {
	return &BotHandler{Bot: bot, Signup: svc, Logger: logger, baseCtx: ctx}
}

// RunPolling consumes updates over long polling until ctx is cancelled.
// Each update is handled on its own goroutine so one user's slow confirm
// (a Sheets round trip) never blocks another user's toggles; the selection
// store is atomic per operation.
func (h *BotHandler) RunPolling(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.Bot.GetUpdatesChan(u)

	h.Logger.Info("telegram polling started", zap.String("bot", h.Bot.Self.UserName))
	for {
		select {
		case <-ctx.Done():
			h.Bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches one update. Errors are terminal here: everything
// user-visible has already been surfaced by the workflow, so this layer only
// logs.
func (h *BotHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		h.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	}
}

func (h *BotHandler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return // channel posts carry no sender
	}
	switch msg.Command() {
	case "start", "signup":
		sess := sessionFromMessage(msg)
		if err := h.Signup.StartSignup(ctx, sess); err != nil {
			h.Logger.Error("start signup failed",
				zap.Int64("user", sess.UserID), zap.Error(err))
		}
	case "help":
		reply := tgbotapi.NewMessage(msg.Chat.ID,
			"Use /signup to book presentation slots for the next session.")
		if _, err := h.Bot.Send(reply); err != nil {
			h.Logger.Error("help reply failed", zap.Error(err))
		}
	}
}

func (h *BotHandler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		// Callback from a message too old for Telegram to include; nothing to
		// re-render, so just acknowledge it.
		if _, err := h.Bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.Logger.Warn("stale callback ack failed", zap.Error(err))
		}
		return
	}
	sess := sessionFromCallback(cb)

	var err error
	switch {
	case strings.HasPrefix(cb.Data, SlotCallbackPrefix):
		err = h.Signup.ToggleSlot(ctx, sess, strings.TrimPrefix(cb.Data, SlotCallbackPrefix))
	case cb.Data == ConfirmCallback:
		err = h.Signup.ConfirmSignup(ctx, sess)
	default:
		h.Logger.Warn("unrecognized callback payload",
			zap.Int64("user", sess.UserID), zap.String("data", cb.Data))
		if _, aerr := h.Bot.Request(tgbotapi.NewCallback(cb.ID, "")); aerr != nil {
			h.Logger.Warn("callback ack failed", zap.Error(aerr))
		}
		return
	}

	switch {
	case err == nil:
	case errors.Is(err, signup.ErrUnknownSlot), errors.Is(err, signup.ErrEmptySelection):
		// Recovered locally; the user already got a notice.
		h.Logger.Debug("callback rejected",
			zap.Int64("user", sess.UserID), zap.String("data", cb.Data), zap.Error(err))
	default:
		h.Logger.Error("callback handling failed",
			zap.Int64("user", sess.UserID), zap.String("data", cb.Data), zap.Error(err))
	}
}

func sessionFromMessage(msg *tgbotapi.Message) signup.Session {
	return signup.Session{
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
		Name:   displayName(msg.From),
		Handle: msg.From.UserName,
	}
}

func sessionFromCallback(cb *tgbotapi.CallbackQuery) signup.Session {
	return signup.Session{
		UserID:     cb.From.ID,
		ChatID:     cb.Message.Chat.ID,
		MessageID:  cb.Message.MessageID,
		CallbackID: cb.ID,
		Name:       displayName(cb.From),
		Handle:     cb.From.UserName,
	}
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}
