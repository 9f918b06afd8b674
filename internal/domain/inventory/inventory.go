// Package inventory собирает репозитории всех сущностей поверх одного хранилища.
package inventory

import (
	"time"

	"github.com/Spok95/techvault/internal/domain/cables"
	"github.com/Spok95/techvault/internal/domain/categories"
	"github.com/Spok95/techvault/internal/domain/credentials"
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/subscriptions"
	"github.com/Spok95/techvault/internal/domain/tech"
	"github.com/Spok95/techvault/internal/domain/warranties"
	"github.com/Spok95/techvault/internal/store"
)

type Inventory struct {
	Categories    *categories.Repo
	Hardware      *hardware.Repo
	Tech          *tech.Repo
	Cables        *cables.Repo
	Warranties    *warranties.Repo
	Subscriptions *subscriptions.Repo
	Credentials   *credentials.Repo

	Classifier expiry.Classifier
	Now        func() time.Time
}

func New(kv store.KV, clf expiry.Classifier, now func() time.Time) *Inventory {
	if now == nil {
		now = time.Now
	}
	return &Inventory{
		Categories:    categories.NewRepo(kv),
		Hardware:      hardware.NewRepo(kv, clf, now),
		Tech:          tech.NewRepo(kv, clf, now),
		Cables:        cables.NewRepo(kv),
		Warranties:    warranties.NewRepo(kv, clf, now),
		Subscriptions: subscriptions.NewRepo(kv, clf, now),
		Credentials:   credentials.NewRepo(kv, now),
		Classifier:    clf,
		Now:           now,
	}
}

// Entities — имена сущностей в API и CLI.
var Entities = []string{"categories", "hardware", "tech", "cables", "warranties", "subscriptions", "credentials"}
