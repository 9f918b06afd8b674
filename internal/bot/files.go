package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/techvault/internal/dialog"
	"github.com/Spok95/techvault/internal/infra/excel"
	"github.com/Spok95/techvault/internal/validate"
)

// Файлы больше этого размера бот не скачивает.
const maxUploadBytes = 10 << 20

func (b *Bot) sendExport(ctx context.Context, chatID int64, entity string) {
	t, err := b.exporter.Table(ctx, entity)
	if errors.Is(err, excel.ErrUnknownEntity) {
		b.sendText(chatID, "Нет такого раздела. Доступны: hardware, tech, cables, warranties, subscriptions, categories, credentials.")
		return
	}
	if err != nil {
		b.log.Error("export failed", "entity", entity, "err", err)
		b.sendText(chatID, "Не удалось сформировать файл.")
		return
	}
	data, err := excel.Encode(t)
	if err != nil {
		b.log.Error("export encode failed", "entity", entity, "err", err)
		b.sendText(chatID, "Не удалось сформировать файл.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("%s_%s.xlsx", entity, time.Now().Format("20060102_150405")),
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("%s: %d записей", exportLabels[entity], len(t.Rows))
	b.send(doc)
}

func importable(entity string) bool {
	return entity == "hardware" || entity == "warranties"
}

func (b *Bot) askImport(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Что загрузить?")
	m.ReplyMarkup = importKeyboard()
	b.send(m)
}

func (b *Bot) awaitImport(ctx context.Context, chatID int64, entity string) {
	if !importable(entity) {
		b.sendText(chatID, "Загружать можно только hardware и warranties.")
		return
	}
	if err := b.states.Set(ctx, chatID, dialog.StateAwaitImportFile, dialog.Payload{"entity": entity}); err != nil {
		b.log.Error("set dialog failed", "err", err)
		b.sendText(chatID, "Что-то пошло не так, попробуйте ещё раз.")
		return
	}
	b.sendText(chatID, fmt.Sprintf("Пришлите .xlsx: %s. Первая строка — названия колонок. /cancel — отмена.", exportLabels[entity]))
}

// handleDocument загружает .xlsx. Раздел берётся из подписи к файлу,
// а без подписи из начатого через /import диалога.
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !strings.HasSuffix(strings.ToLower(msg.Document.FileName), ".xlsx") {
		b.sendText(chatID, "Нужен файл .xlsx.")
		return
	}
	if msg.Document.FileSize > maxUploadBytes {
		b.sendText(chatID, "Файл слишком большой.")
		return
	}
	entity := strings.ToLower(strings.TrimSpace(msg.Caption))
	if entity == "" {
		st, err := b.states.Get(ctx, chatID)
		if err != nil {
			b.log.Error("get dialog failed", "err", err)
		} else if st.State == dialog.StateAwaitImportFile {
			entity, _ = dialog.GetString(st.Payload, "entity")
		}
	}
	if !importable(entity) {
		b.sendText(chatID, "Добавьте к файлу подпись hardware или warranties или начните с /import.")
		return
	}
	defer func() {
		if err := b.states.Reset(ctx, chatID); err != nil {
			b.log.Error("reset dialog failed", "err", err)
		}
	}()

	data, err := b.downloadFile(ctx, msg.Document.FileID)
	if err != nil {
		b.log.Error("download failed", "err", err)
		b.sendText(chatID, "Не удалось скачать файл.")
		return
	}
	rows, err := excel.Read(bytes.NewReader(data))
	if err != nil {
		b.sendText(chatID, "Не удалось прочитать таблицу: "+html.EscapeString(err.Error()))
		return
	}

	var n int
	switch entity {
	case "hardware":
		n, err = b.inv.Hardware.Import(ctx, excel.HardwareInputs(rows))
	case "warranties":
		n, err = b.inv.Warranties.Import(ctx, excel.WarrantyInputs(rows))
	}
	var verrs validate.Errors
	switch {
	case errors.As(err, &verrs):
		b.sendText(chatID, "Файл не загружен: "+html.EscapeString(err.Error()))
		return
	case err != nil:
		b.log.Error("import failed", "entity", entity, "err", err)
		b.sendText(chatID, "Не удалось сохранить записи.")
		return
	}
	b.log.Info("imported via bot", "entity", entity, "rows", n)
	b.sendText(chatID, fmt.Sprintf("Загружено записей: %d", n))
}

// downloadFile скачивает файл по FileID через Telegram API.
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram returned status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxUploadBytes {
		return nil, errors.New("file too large")
	}
	return data, nil
}
