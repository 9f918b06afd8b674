package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/techvault/internal/domain/filter"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

func newRepo() *Repo {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewRepo(store.NewMemory(), func() time.Time { return now })
}

func TestStrengthOf(t *testing.T) {
	cases := map[string]Strength{
		"":                 Weak,
		"dbadmin":          Weak,
		"abcdefgh":         Weak,
		"abcdefg1":         Medium,
		"Office365":        Medium,
		"wiki2022admin":    Medium,
		"Kx9#mQ2$vL7pR4":   Strong,
		"correct horse 42": Strong,
	}
	for pw, want := range cases {
		assert.Equal(t, want, StrengthOf(pw), pw)
	}
}

func TestDefaultsStrength(t *testing.T) {
	views, err := newRepo().List(context.Background())
	require.NoError(t, err)
	got := make([]Strength, 0, len(views))
	for _, v := range views {
		got = append(got, v.Strength)
	}
	assert.Equal(t, []Strength{Strong, Strong, Medium, Weak, Medium, Strong, Medium, Strong}, got)
}

func TestMasked(t *testing.T) {
	v, err := newRepo().Get(context.Background(), 4)
	require.NoError(t, err)
	m := v.Masked()
	assert.Equal(t, Mask, m.Password)
	assert.Equal(t, Weak, m.Strength)
	assert.Equal(t, "dbadmin", v.Password)
}

func TestSearchMatchesUsername(t *testing.T) {
	views, err := newRepo().List(context.Background())
	require.NoError(t, err)
	got := filter.Apply(views, "ADMIN@", nil)
	require.Len(t, got, 2)
	assert.Equal(t, "AWS Admin Access", got[0].Name)
	assert.Equal(t, "Office 365", got[1].Name)

	// имя и логин не склеиваются в одну строку
	v := View{Credential: Credential{Name: "ab", Username: "cd"}}
	assert.Empty(t, filter.Apply([]View{v}, "bc", nil))
	assert.Len(t, filter.Apply([]View{v}, "cd", nil), 1)
}

func TestUpdateKeepsPasswordBehindMask(t *testing.T) {
	r := newRepo()
	ctx := context.Background()
	v, err := r.Update(ctx, 1, Input{Name: "AWS Root", Username: "root@company.com", Password: Mask, Category: "Cloud"})
	require.NoError(t, err)
	assert.Equal(t, "Kx9#mQ2$vL7pR4", v.Password)
	assert.Equal(t, "2023-05-15", v.LastUpdated)

	v, err = r.Update(ctx, 1, Input{Name: "AWS Root", Username: "root@company.com", Password: "N3w-Passw0rd!!", Category: "Cloud"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", v.LastUpdated)
}

func TestCreateValidates(t *testing.T) {
	r := newRepo()
	_, err := r.Create(context.Background(), Input{Name: "Router", Category: "Network", Website: "not a url"})
	var verr validate.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "username")
	assert.Contains(t, verr, "password")
	assert.Equal(t, "website must be a valid URL", verr["website"])

	v, err := r.Create(context.Background(), Input{Name: "Router", Username: "admin", Password: "router-pass-1", Category: "Network", Website: "https://192.168.1.1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", v.LastUpdated)
	assert.Equal(t, StatusActive, v.Status)
}
