package hardware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/filter"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

var today = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repo, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	return NewRepo(kv, expiry.Default, func() time.Time { return today }), kv
}

func TestListSeedsDefaults(t *testing.T) {
	r, _ := newRepo(t)
	views, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, len(Defaults()))
	assert.Equal(t, "Dell XPS 15 Laptop", views[0].Name)

	// гарантия монитора до 2024-06-14 — через 13 дней
	mon := views[7]
	assert.Equal(t, expiry.ExpiringSoon, mon.WarrantyStatus)
	require.NotNil(t, mon.WarrantyDaysRemaining)
	assert.Equal(t, 13, *mon.WarrantyDaysRemaining)
	// у ноутбука гарантия ещё почти год
	assert.Equal(t, expiry.Active, views[0].WarrantyStatus)
	assert.Equal(t, expiry.Expired, views[3].WarrantyStatus)
}

func TestCreateAssignsNextID(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	v, err := r.Create(ctx, Input{Name: "ThinkPad X1", Category: "Computer", Location: "Home", Warranty: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.ID)
	assert.Equal(t, StatusActive, v.Status)

	got, err := r.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1", got.Name)
}

func TestCreateRejectsInvalid(t *testing.T) {
	r, _ := newRepo(t)
	_, err := r.Create(context.Background(), Input{Category: "Computer", Status: "Broken", Warranty: "soon"})
	var verr validate.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "name")
	assert.Contains(t, verr, "status")
	assert.Contains(t, verr, "warranty")
}

func TestDeleteKeepsOrder(t *testing.T) {
	r, kv := newRepo(t)
	ctx := context.Background()
	c := store.NewCollection[Item](kv, store.KeyHardware, nil)
	require.NoError(t, c.SaveAll(ctx, []Item{
		{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"},
	}))

	require.NoError(t, r.Delete(ctx, 2))
	items, err := r.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)

	assert.ErrorIs(t, r.Delete(ctx, 2), store.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	v, err := r.SetStatus(ctx, 1, "Maintenance")
	require.NoError(t, err)
	assert.Equal(t, StatusMaintenance, v.Status)
	assert.Equal(t, "Dell XPS 15 Laptop", v.Name)

	_, err = r.SetStatus(ctx, 1, "Lost")
	var verr validate.Errors
	assert.ErrorAs(t, err, &verr)

	_, err = r.SetStatus(ctx, 99, "Active")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateKeepsPosition(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	_, err := r.Update(ctx, 3, Input{Name: "Cisco Router 4331", Category: "Network", Status: "Active", Location: "Server Room"})
	require.NoError(t, err)
	items, err := r.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cisco Router 4331", items[2].Name)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestImportValidatesAllRowsFirst(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	_, err := r.Import(ctx, []Input{
		{Name: "Switch", Category: "Network"},
		{Name: "", Category: "Network"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	items, err := r.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(Defaults()))

	n, err := r.Import(ctx, []Input{{Name: "Switch", Category: "Network"}, {Name: "AP", Category: "Network"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	items, err = r.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AP", items[len(items)-1].Name)
}

type failingPutKV struct {
	*store.Memory
	fail bool
}

func (f *failingPutKV) Put(ctx context.Context, key string, value []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Put(ctx, key, value)
}

func TestImportWriteFailureSavesNothing(t *testing.T) {
	ctx := context.Background()
	kv := &failingPutKV{Memory: store.NewMemory()}
	r := NewRepo(kv, expiry.Default, func() time.Time { return today })
	_, err := r.Items(ctx)
	require.NoError(t, err)

	kv.fail = true
	n, err := r.Import(ctx, []Input{
		{Name: "Switch", Category: "Network"},
		{Name: "AP", Category: "Network"},
		{Name: "UPS", Category: "Power"},
	})
	require.ErrorContains(t, err, "disk full")
	assert.Zero(t, n)

	kv.fail = false
	items, err := r.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(Defaults()))
}

func TestFilterByWarrantyStatus(t *testing.T) {
	r, _ := newRepo(t)
	views, err := r.List(context.Background())
	require.NoError(t, err)
	got := filter.Apply(views, "", filter.Facets{"warrantyStatus": string(expiry.ExpiringSoon)})
	require.Len(t, got, 1)
	assert.Equal(t, "Dell U2720Q Monitor", got[0].Name)

	got = filter.Apply(views, "dell", filter.Facets{"location": "Office", "status": filter.All})
	assert.Len(t, got, 2)
}
