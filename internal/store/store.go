// Package store хранит коллекции записей целиком: один ключ на тип сущности,
// значение — JSON-массив плоских записей.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNoValue — ключа в хранилище ещё нет (первый запуск).
	ErrNoValue = errors.New("store: no value")
	// ErrNotFound — записи с таким id нет в коллекции.
	ErrNotFound = errors.New("store: record not found")
	// ErrCorrupt — сохранённые данные не разбираются как коллекция.
	ErrCorrupt = errors.New("store: corrupt collection")
)

// KV — бэкенд, в котором лежат сериализованные коллекции.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Identified — запись с уникальным в пределах коллекции id.
type Identified interface {
	RecordID() int64
}

// Entity keys.
const (
	KeyCategories    = "categories"
	KeyHardware      = "hardwareItems"
	KeyTech          = "techItems"
	KeyCables        = "cables"
	KeyWarranties    = "warranties"
	KeySubscriptions = "subscriptions"
	KeyCredentials   = "credentials"
)

// Keys перечисляет все ключи сущностей.
func Keys() []string {
	return []string{
		KeyCategories, KeyHardware, KeyTech, KeyCables,
		KeyWarranties, KeySubscriptions, KeyCredentials,
	}
}
