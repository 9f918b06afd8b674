package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Кнопки главного меню.
const (
	btnSummary  = "Сводка"
	btnExpiring = "Истекает скоро"
	btnExport   = "Выгрузка"
	btnImport   = "Загрузка"
)

// Данные inline-кнопок.
const (
	cbSummary  = "summary"
	cbExpiring = "expiring"
	cbExport   = "export:"
	cbImport   = "import:"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !b.allowed(msg.Chat.ID) {
		b.sendText(msg.Chat.ID, "Это личный бот, доступ закрыт.")
		return
	}
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if msg.Document != nil {
		b.handleDocument(ctx, msg)
		return
	}
	switch strings.TrimSpace(msg.Text) {
	case btnSummary:
		b.showSummary(ctx, msg.Chat.ID)
	case btnExpiring:
		b.showExpiring(ctx, msg.Chat.ID)
	case btnExport:
		m := tgbotapi.NewMessage(msg.Chat.ID, "Что выгрузить?")
		m.ReplyMarkup = exportKeyboard()
		b.send(m)
	case btnImport:
		b.askImport(msg.Chat.ID)
	default:
		b.sendText(msg.Chat.ID, "Не понял. /help — список команд.")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		m := tgbotapi.NewMessage(chatID, helpText)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)
	case "summary":
		b.showSummary(ctx, chatID)
	case "expiring":
		b.showExpiring(ctx, chatID)
	case "export":
		entity := strings.TrimSpace(msg.CommandArguments())
		if entity == "" {
			m := tgbotapi.NewMessage(chatID, "Что выгрузить?")
			m.ReplyMarkup = exportKeyboard()
			b.send(m)
			return
		}
		b.sendExport(ctx, chatID, entity)
	case "import":
		b.askImport(chatID)
	case "cancel":
		if err := b.states.Reset(ctx, chatID); err != nil {
			b.log.Error("reset dialog failed", "err", err)
		}
		b.sendText(chatID, "Отменено.")
	default:
		b.sendText(chatID, "Неизвестная команда. /help — список команд.")
	}
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || !b.allowed(cb.Message.Chat.ID) {
		_ = b.answerCallback(cb, "Доступ закрыт", true)
		return
	}
	chatID := cb.Message.Chat.ID
	_ = b.answerCallback(cb, "", false)

	switch {
	case cb.Data == cbSummary:
		b.showSummary(ctx, chatID)
	case cb.Data == cbExpiring:
		b.showExpiring(ctx, chatID)
	case strings.HasPrefix(cb.Data, cbExport):
		b.sendExport(ctx, chatID, strings.TrimPrefix(cb.Data, cbExport))
	case strings.HasPrefix(cb.Data, cbImport):
		b.awaitImport(ctx, chatID, strings.TrimPrefix(cb.Data, cbImport))
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) error {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	_, err := b.api.Request(resp)
	return err
}

const helpText = `Учёт техники и сроков.

/summary — сводка по инвентарю
/expiring — что истекает в ближайшие дни
/export <раздел> — выгрузка в Excel (hardware, tech, cables, warranties, subscriptions, categories, credentials)
/import — загрузка оборудования или гарантий из Excel
/cancel — отменить загрузку

Можно сразу прислать .xlsx с подписью hardware или warranties.`
