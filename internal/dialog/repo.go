package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Spok95/techvault/internal/store"
)

// keyPrefix — состояния лежат рядом с коллекциями, по ключу на чат.
const keyPrefix = "dialog:"

type Repo struct {
	kv store.KV
}

func NewRepo(kv store.KV) *Repo { return &Repo{kv: kv} }

func key(chatID int64) string { return keyPrefix + strconv.FormatInt(chatID, 10) }

func (r *Repo) Get(ctx context.Context, chatID int64) (*Item, error) {
	raw, err := r.kv.Get(ctx, key(chatID))
	if errors.Is(err, store.ErrNoValue) {
		return &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}, nil
	}
	if err != nil {
		return nil, err
	}
	var it Item
	if err := json.Unmarshal(raw, &it); err != nil {
		// битое состояние не должно ломать бота, начинаем с начала
		return &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}, nil
	}
	if it.Payload == nil {
		it.Payload = Payload{}
	}
	it.ChatID = chatID
	return &it, nil
}

func (r *Repo) Set(ctx context.Context, chatID int64, state State, payload Payload) error {
	raw, err := json.Marshal(Item{ChatID: chatID, State: state, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal dialog state: %w", err)
	}
	return r.kv.Put(ctx, key(chatID), raw)
}

func (r *Repo) Reset(ctx context.Context, chatID int64) error {
	return r.Set(ctx, chatID, StateIdle, nil)
}

// GetString Helper для безопасного чтения строк из payload
func GetString(p Payload, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
