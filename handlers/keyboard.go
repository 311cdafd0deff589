package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback payloads carried by the inline keyboard.
const (
	SlotCallbackPrefix = "slot_"
	ConfirmCallback    = "confirm_slots"
)

const keyboardColumns = 2

// SlotKeyboard builds the signup keyboard: slot buttons laid out two per row
// in catalog order, each annotated with its selection state, plus a trailing
// confirm row.
func SlotKeyboard(slots []string, selected map[string]bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, keyboardColumns)
	for _, slot := range slots {
		prefix := "⏰"
		if selected[slot] {
			prefix = "✅"
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(prefix+" "+slot, SlotCallbackPrefix+slot))
		if len(row) == keyboardColumns {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, keyboardColumns)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Confirm selection", ConfirmCallback),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
