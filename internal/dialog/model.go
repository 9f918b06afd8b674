// Package dialog хранит, на каком шаге диалога находится чат бота.
package dialog

type State string

const (
	StateIdle State = "idle"
	// Ждём .xlsx; раздел лежит в payload["entity"].
	StateAwaitImportFile State = "await_import_file"
)

type Payload map[string]any

type Item struct {
	ChatID  int64   `json:"chatId"`
	State   State   `json:"state"`
	Payload Payload `json:"payload,omitempty"`
}
