package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/techvault/internal/domain/cables"
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/report"
	"github.com/Spok95/techvault/internal/infra/metrics"
)

var ErrNoAdminChat = errors.New("bot: admin chat is not configured")

var kindLabels = map[string]string{
	report.KindWarranty:     "Гарантия",
	report.KindSubscription: "Подписка",
	report.KindHardware:     "Гарантия оборудования",
}

// RunDigest шлёт дайджест сразу и затем раз в interval, пока жив ctx.
func (b *Bot) RunDigest(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := b.SendDigest(ctx); err != nil && ctx.Err() == nil {
			b.log.Error("digest failed", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// SendDigest отправляет владельцу список истекающих записей.
// Пустой список не отправляется.
func (b *Bot) SendDigest(ctx context.Context) error {
	if b.adminChat == 0 {
		return ErrNoAdminChat
	}
	sum, err := b.reports.Build(ctx)
	if err != nil {
		metrics.DigestsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("build summary: %w", err)
	}
	if len(sum.Expiring) == 0 {
		metrics.DigestsSent.WithLabelValues("empty").Inc()
		b.log.Info("digest skipped, nothing expiring")
		return nil
	}

	msg := tgbotapi.NewMessage(b.adminChat, "⏰ <b>Дайджест сроков</b>\n\n"+formatExpiring(sum.Expiring))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = digestKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		metrics.DigestsSent.WithLabelValues("error").Inc()
		return fmt.Errorf("send digest: %w", err)
	}
	metrics.DigestsSent.WithLabelValues("sent").Inc()
	b.log.Info("digest sent", "items", len(sum.Expiring))
	return nil
}

func (b *Bot) showSummary(ctx context.Context, chatID int64) {
	sum, err := b.reports.Build(ctx)
	if err != nil {
		b.log.Error("summary failed", "err", err)
		b.sendText(chatID, "Не удалось собрать сводку.")
		return
	}
	m := tgbotapi.NewMessage(chatID, formatSummary(sum))
	m.ParseMode = tgbotapi.ModeHTML
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏳ Истекает скоро", cbExpiring),
	))
	b.send(m)
}

func (b *Bot) showExpiring(ctx context.Context, chatID int64) {
	sum, err := b.reports.Build(ctx)
	if err != nil {
		b.log.Error("summary failed", "err", err)
		b.sendText(chatID, "Не удалось собрать список.")
		return
	}
	if len(sum.Expiring) == 0 {
		b.sendText(chatID, "В ближайшие дни ничего не истекает ✅")
		return
	}
	b.sendText(chatID, formatExpiring(sum.Expiring))
}

func formatExpiring(items []report.Expiring) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "• %s: <b>%s</b> — %s (%s)\n",
			kindLabels[it.Kind], html.EscapeString(it.Name), it.Date, daysPhrase(it.DaysRemaining))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func daysPhrase(d int) string {
	switch d {
	case 0:
		return "сегодня"
	case 1:
		return "завтра"
	default:
		return fmt.Sprintf("через %d дн.", d)
	}
}

func formatSummary(s report.Summary) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>Сводка</b>\n\n")
	fmt.Fprintf(&sb, "Оборудование: %d (в работе %d, на обслуживании %d)\n",
		s.Totals["hardware"], s.HardwareByStatus[string(hardware.StatusActive)], s.HardwareByStatus[string(hardware.StatusMaintenance)])
	fmt.Fprintf(&sb, "Техника: %d\n", s.Totals["tech"])
	fmt.Fprintf(&sb, "Кабели: %d (в использовании %d)\n", s.Totals["cables"], s.CablesByStatus[string(cables.StatusInUse)])
	fmt.Fprintf(&sb, "Категорий: %d, предметов в них: %d\n", s.Totals["categories"], s.CategoryItems)
	fmt.Fprintf(&sb, "Гарантии: активны %d, истекают %d, истекли %d\n",
		s.Warranties[string(expiry.Active)], s.Warranties[string(expiry.ExpiringSoon)], s.Warranties[string(expiry.Expired)])
	fmt.Fprintf(&sb, "Подписки: %d активных, %s $/мес\n", s.ActiveSubscriptions, s.MonthlyCost.StringFixed(2))
	fmt.Fprintf(&sb, "Слабых паролей: %d\n", s.WeakCredentials)
	return sb.String()
}
