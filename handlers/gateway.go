package handlers

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// TelegramGateway adapts the Telegram Bot API to the signup.ChatGateway
// contract. All outgoing calls share one rate limiter: Telegram enforces a
// bot-wide ceiling of roughly 30 messages per second.
type TelegramGateway struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

func NewTelegramGateway(bot *tgbotapi.BotAPI) *TelegramGateway {
	return &TelegramGateway{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(25), 5),
	}
}

func (g *TelegramGateway) SendKeyboard(ctx context.Context, chatID int64, text string, slots []string, selected map[string]bool) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = SlotKeyboard(slots, selected)
	if _, err := g.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

func (g *TelegramGateway) UpdateKeyboard(ctx context.Context, chatID int64, messageID int, slots []string, selected map[string]bool) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, SlotKeyboard(slots, selected))
	if _, err := g.bot.Send(edit); err != nil {
		return fmt.Errorf("telegram keyboard edit failed: %w", err)
	}
	return nil
}

func (g *TelegramGateway) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := g.bot.Send(edit); err != nil {
		return fmt.Errorf("telegram text edit failed: %w", err)
	}
	return nil
}

func (g *TelegramGateway) Notify(ctx context.Context, callbackID, text string, alert bool) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	cb := tgbotapi.NewCallback(callbackID, text)
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	if _, err := g.bot.Request(cb); err != nil {
		return fmt.Errorf("telegram callback answer failed: %w", err)
	}
	return nil
}

// Publish sends to the broadcast destination, which is either a numeric chat
// ID or a public @channelname.
func (g *TelegramGateway) Publish(ctx context.Context, destination, text string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(destination, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(destination, text)
	}
	if _, err := g.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram publish failed: %w", err)
	}
	return nil
}
