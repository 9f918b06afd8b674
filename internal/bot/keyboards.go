package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnSummary), tgbotapi.NewKeyboardButton(btnExpiring)},
			{tgbotapi.NewKeyboardButton(btnExport), tgbotapi.NewKeyboardButton(btnImport)},
		},
	}
}

// digestKeyboard — кнопки под сообщением дайджеста.
func digestKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Сводка", cbSummary),
			tgbotapi.NewInlineKeyboardButtonData("🛡 Гарантии", cbExport+"warranties"),
		),
	)
}

func exportKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := func(a, b string) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(exportLabels[a], cbExport+a),
			tgbotapi.NewInlineKeyboardButtonData(exportLabels[b], cbExport+b),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		row("hardware", "tech"),
		row("warranties", "subscriptions"),
		row("cables", "categories"),
	)
}

var exportLabels = map[string]string{
	"hardware":      "Оборудование",
	"tech":          "Техника",
	"warranties":    "Гарантии",
	"subscriptions": "Подписки",
	"cables":        "Кабели",
	"categories":    "Категории",
	"credentials":   "Учётные записи",
}

func importKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(exportLabels["hardware"], cbImport+"hardware"),
			tgbotapi.NewInlineKeyboardButtonData(exportLabels["warranties"], cbImport+"warranties"),
		),
	)
}
