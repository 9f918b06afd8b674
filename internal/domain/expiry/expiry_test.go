package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestClassifyBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		exp  *time.Time
		want Status
	}{
		{"absent", nil, Expired},
		{"yesterday", ptr(day(2026, 3, 9)), Expired},
		{"today", ptr(day(2026, 3, 10)), Expired},
		{"tomorrow", ptr(day(2026, 3, 11)), ExpiringSoon},
		{"in 30 days", ptr(day(2026, 4, 9)), ExpiringSoon},
		{"in 31 days", ptr(day(2026, 4, 10)), Active},
		{"next year", ptr(day(2027, 3, 10)), Active},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(now, tc.exp))
		})
	}
}

func TestClassifyMoreThanWindowIsAlwaysActive(t *testing.T) {
	now := day(2026, 1, 1)
	for d := 31; d < 800; d += 17 {
		exp := now.AddDate(0, 0, d)
		require.Equal(t, Active, Classify(now, &exp), "days=%d", d)
	}
	for d := 1; d <= 30; d++ {
		exp := now.AddDate(0, 0, d)
		require.Equal(t, ExpiringSoon, Classify(now, &exp), "days=%d", d)
	}
}

func TestDaysRemainingMatchesCeilForMidnightDates(t *testing.T) {
	c := Default
	now := time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, c.DaysRemaining(now, day(2026, 5, 2)))
	assert.Equal(t, 0, c.DaysRemaining(now, day(2026, 5, 1)))
	assert.Equal(t, -3, c.DaysRemaining(now, day(2026, 4, 28)))
}

func TestDaysRemainingFarFuture(t *testing.T) {
	today := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	far := time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC)
	// 376 лет, 91 високосный: 2100, 2200 и 2300 не високосные
	assert.Equal(t, 376*365+91, Default.DaysRemaining(today, far))
	assert.Equal(t, -(376*365 + 91), Default.DaysRemaining(far, today))
	assert.Equal(t, Active, Default.Classify(today, &far))
}

func TestClassifierUsesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	c := New(30, loc)

	// 22:30 UTC — уже следующие сутки в UTC+3
	now := time.Date(2026, 6, 1, 22, 30, 0, 0, time.UTC)
	exp, err := c.Parse("2026-06-02")
	require.NoError(t, err)

	assert.Equal(t, 0, c.DaysRemaining(now, exp))
	assert.Equal(t, 1, Default.DaysRemaining(now, day(2026, 6, 2)))
}

func TestEvaluate(t *testing.T) {
	now := day(2026, 10, 19)

	r := Default.Evaluate(now, "2026-10-24")
	require.NotNil(t, r.DaysRemaining)
	assert.Equal(t, 5, *r.DaysRemaining)
	assert.Equal(t, ExpiringSoon, r.Status)

	r = Default.Evaluate(now, "2026-12-31T10:00:00Z")
	assert.Equal(t, Active, r.Status)

	for _, bad := range []string{"", "   ", "31/12/2026", "soon"} {
		r = Default.Evaluate(now, bad)
		assert.Equal(t, Expired, r.Status, bad)
		assert.Nil(t, r.DaysRemaining, bad)
	}
}

func TestCustomWindow(t *testing.T) {
	c := New(7, nil)
	now := day(2026, 1, 1)
	assert.Equal(t, ExpiringSoon, c.Classify(now, ptr(day(2026, 1, 8))))
	assert.Equal(t, Active, c.Classify(now, ptr(day(2026, 1, 9))))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(""))
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("tomorrow"))
}
