package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/store"
)

func newService(kv store.KV, now time.Time) *Service {
	return NewService(inventory.New(kv, expiry.Default, func() time.Time { return now }))
}

func TestBuildOnDefaults(t *testing.T) {
	now := time.Date(2023, 7, 10, 8, 0, 0, 0, time.UTC)
	sum, err := newService(store.NewMemory(), now).Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"categories": 9, "hardware": 8, "tech": 6, "cables": 8,
		"warranties": 5, "subscriptions": 6, "credentials": 8,
	}, sum.Totals)
	assert.Equal(t, 101, sum.CategoryItems)
	assert.Equal(t, map[string]int{"Active": 2, "Expiring Soon": 2, "Expired": 1}, sum.Warranties)
	assert.Equal(t, map[string]int{"Active": 6, "Maintenance": 1, "Inactive": 1}, sum.HardwareByStatus)
	assert.Equal(t, 5, sum.ActiveSubscriptions)
	assert.Equal(t, "106.29", sum.MonthlyCost.StringFixed(2))
	assert.Equal(t, 1, sum.WeakCredentials)
	assert.Equal(t, now, sum.GeneratedAt)

	require.Len(t, sum.Expiring, 3)
	assert.Equal(t, Expiring{KindWarranty, 2, "iPhone 13 Pro", "2023-07-22", 12}, sum.Expiring[0])
	assert.Equal(t, Expiring{KindHardware, 3, "Cisco Router 2900", "2023-07-22", 12}, sum.Expiring[1])
	assert.Equal(t, KindWarranty, sum.Expiring[2].Kind)
	assert.Equal(t, 26, sum.Expiring[2].DaysRemaining)
}

func TestBuildIncludesRenewals(t *testing.T) {
	now := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	sum, err := newService(store.NewMemory(), now).Build(context.Background())
	require.NoError(t, err)
	var subs []string
	for _, e := range sum.Expiring {
		if e.Kind == KindSubscription {
			subs = append(subs, e.Name)
		}
	}
	assert.Equal(t, []string{"Netflix Premium", "iCloud+ 2TB", "Adobe Creative Cloud"}, subs)
}

func TestBuildFailsOnCorruptCollection(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Put(context.Background(), store.KeyCables, []byte("{oops")))
	_, err := newService(kv, time.Now()).Build(context.Background())
	assert.ErrorIs(t, err, store.ErrCorrupt)
}
