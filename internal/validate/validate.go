// Package validate — правила проверки полей формы и ошибки по полям.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	// Check возвращает текст ошибки или "".
	Check   func(v string) string
	Message string
}

// Errors — поле -> сообщение. Пустой набор ошибкой не считается.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err возвращает nil, если ошибок нет.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Form проверяет значения по правилам; на поле — первая сработавшая ошибка.
func Form(values map[string]string, rules map[string]Rule) Errors {
	errs := Errors{}
	for field, r := range rules {
		v := strings.TrimSpace(values[field])
		if v == "" {
			if r.Required {
				errs[field] = r.msg(fmt.Sprintf("%s is required", field))
			}
			continue
		}
		n := utf8.RuneCountInString(v)
		switch {
		case r.MinLength > 0 && n < r.MinLength:
			errs[field] = r.msg(fmt.Sprintf("%s must be at least %d characters", field, r.MinLength))
		case r.MaxLength > 0 && n > r.MaxLength:
			errs[field] = r.msg(fmt.Sprintf("%s must not exceed %d characters", field, r.MaxLength))
		case r.Pattern != nil && !r.Pattern.MatchString(v):
			errs[field] = r.msg(fmt.Sprintf("%s has an invalid format", field))
		case r.Check != nil:
			if m := r.Check(v); m != "" {
				errs[field] = m
			}
		}
	}
	return errs
}

func (r Rule) msg(def string) string {
	if r.Message != "" {
		return r.Message
	}
	return def
}

// OneOf — проверка на значение из перечня.
func OneOf(allowed ...string) func(string) string {
	return func(v string) string {
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return "must be one of: " + strings.Join(allowed, ", ")
	}
}

// Date принимает YYYY-MM-DD или RFC 3339.
func Date(v string) string {
	if _, err := time.Parse(time.DateOnly, v); err == nil {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return ""
	}
	return "must be a date (YYYY-MM-DD)"
}

var (
	Email = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	URL   = regexp.MustCompile(`^(https?://)?([\w-]+\.)+[\w-]+(/[\w\-./?%&=#:+~]*)?$`)
	Phone = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)
