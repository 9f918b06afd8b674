// Package expiry выводит статус гарантии/подписки из даты окончания.
package expiry

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	Active       Status = "Active"
	ExpiringSoon Status = "Expiring Soon"
	Expired      Status = "Expired"
)

// DefaultWindow — сколько дней до окончания считается "скоро истекает".
const DefaultWindow = 30

var ErrBadDate = errors.New("expiry: invalid date")

// Classifier считает дни по календарным датам в Location: граница суток —
// полночь этой зоны.
type Classifier struct {
	Window   int
	Location *time.Location
}

// Default — окно 30 дней, UTC.
var Default = Classifier{Window: DefaultWindow, Location: time.UTC}

func New(window int, loc *time.Location) Classifier {
	if window <= 0 {
		window = DefaultWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return Classifier{Window: window, Location: loc}
}

// Classify — статус по дате окончания. Нет даты — Expired.
func Classify(today time.Time, expiration *time.Time) Status {
	return Default.Classify(today, expiration)
}

func (c Classifier) Classify(today time.Time, expiration *time.Time) Status {
	if expiration == nil {
		return Expired
	}
	return c.status(c.DaysRemaining(today, *expiration))
}

// DaysRemaining — целые календарные дни от даты today до даты expiration.
// Для даты окончания, привязанной к полуночи, это то же, что
// ceil((expiration-now)/24h).
func (c Classifier) DaysRemaining(today, expiration time.Time) int {
	loc := c.loc()
	t := civil(today.In(loc))
	e := civil(expiration.In(loc))
	// Unix-секунды вместо Duration: тот переполняется на ~292 годах
	return int((e.Unix() - t.Unix()) / 86400)
}

// Result — производный статус для отображения.
type Result struct {
	Status        Status `json:"status"`
	DaysRemaining *int   `json:"daysRemaining"`
}

// Evaluate разбирает дату из записи и классифицирует её. Пустая или
// нечитаемая дата даёт Expired без количества дней.
func (c Classifier) Evaluate(now time.Time, date string) Result {
	exp, err := c.Parse(date)
	if err != nil {
		return Result{Status: Expired}
	}
	d := c.DaysRemaining(now, exp)
	return Result{Status: c.status(d), DaysRemaining: &d}
}

// Parse принимает YYYY-MM-DD (дата в зоне классификатора) или RFC 3339.
func (c Classifier) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadDate
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, c.loc()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadDate
}

// ValidDate — пустая строка или дата, которую понимает Parse.
func ValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := Default.Parse(s)
	return err == nil
}

func (c Classifier) status(days int) Status {
	switch {
	case days <= 0:
		return Expired
	case days <= c.window():
		return ExpiringSoon
	default:
		return Active
	}
}

func (c Classifier) window() int {
	if c.Window <= 0 {
		return DefaultWindow
	}
	return c.Window
}

func (c Classifier) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
