package subscriptions

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

var today = time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)

func newRepo() *Repo {
	return NewRepo(store.NewMemory(), expiry.Default, func() time.Time { return today })
}

func TestMonthlyCostDefaults(t *testing.T) {
	cost, err := newRepo().MonthlyCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "106.29", cost.StringFixed(2))
}

func TestMonthlyCostSkipsCanceled(t *testing.T) {
	subs := []Subscription{
		{Price: decimal.RequireFromString("10"), BillingCycle: Monthly, Status: StatusActive},
		{Price: decimal.RequireFromString("120"), BillingCycle: Yearly, Status: StatusActive},
		{Price: decimal.RequireFromString("50"), BillingCycle: Monthly, Status: StatusCanceled},
	}
	assert.True(t, MonthlyCost(subs).Equal(decimal.NewFromInt(20)))
	assert.True(t, MonthlyCost(nil).IsZero())
}

func TestExpiringOnlyActive(t *testing.T) {
	got, err := newRepo().Expiring(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, v := range got {
		names = append(names, v.Name)
	}
	// NYT тоже в окне, но отменена
	assert.Equal(t, []string{"Spotify Family", "Netflix Premium", "iCloud+ 2TB", "Adobe Creative Cloud"}, names)
}

func TestCancelAndReactivate(t *testing.T) {
	r := newRepo()
	ctx := context.Background()
	v, err := r.SetStatus(ctx, 2, "Canceled")
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, v.Status)

	cost, err := r.MonthlyCost(ctx)
	require.NoError(t, err)
	assert.Equal(t, "53.30", cost.StringFixed(2))

	_, err = r.SetStatus(ctx, 2, "Paused")
	var verr validate.Errors
	assert.ErrorAs(t, err, &verr)
}

func TestCreateValidatesPrice(t *testing.T) {
	r := newRepo()
	ctx := context.Background()
	in := Input{Name: "GitHub Copilot", Category: "Software", BillingCycle: "Monthly", NextBilling: "2023-06-20"}

	in.Price = decimal.RequireFromString("-1")
	_, err := r.Create(ctx, in)
	var verr validate.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "price")

	in.Price = decimal.RequireFromString("10.005")
	_, err = r.Create(ctx, in)
	require.ErrorAs(t, err, &verr)

	in.Price = decimal.RequireFromString("10")
	v, err := r.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.ID)
	assert.Equal(t, StatusActive, v.Status)
	assert.Equal(t, expiry.ExpiringSoon, v.RenewalStatus)
}

func TestInputAcceptsNumericPrice(t *testing.T) {
	var in Input
	require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &in))
	assert.True(t, in.Price.Equal(decimal.RequireFromString("12.5")))
}
