// Package bot — Telegram-бот владельца: дайджест истекающих сроков,
// сводка, выгрузка и загрузка таблиц.
package bot

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/techvault/internal/dialog"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/domain/report"
	"github.com/Spok95/techvault/internal/infra/excel"
)

// API — часть *tgbotapi.BotAPI, которой пользуется бот.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetFileDirectURL(fileID string) (string, error)
	StopReceivingUpdates()
}

type Bot struct {
	api       API
	log       *slog.Logger
	inv       *inventory.Inventory
	states    *dialog.Repo
	reports   *report.Service
	exporter  *excel.Exporter
	adminChat int64
	http      *http.Client
}

func New(api API, log *slog.Logger, inv *inventory.Inventory, states *dialog.Repo, adminChatID int64) *Bot {
	return &Bot{
		api:       api,
		log:       log,
		inv:       inv,
		states:    states,
		reports:   report.NewService(inv),
		exporter:  excel.NewExporter(inv),
		adminChat: adminChatID,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

// allowed — бот личный, отвечает только в чат владельца.
func (b *Bot) allowed(chatID int64) bool {
	return b.adminChat != 0 && chatID == b.adminChat
}
