// Package filter — поиск по имени и точные фасеты для списков записей.
package filter

import "strings"

// All — значение фасета, которое ничего не ограничивает.
const All = "All"

// Record — то, что умеет фильтровать Apply.
type Record interface {
	// SearchName — основное имя записи (name/item).
	SearchName() string
	// FacetValue — значение поля фасета; ok=false, если такого поля нет.
	FacetValue(facet string) (string, bool)
}

// Facets — выбранные значения фасетов: имя фасета -> значение.
type Facets map[string]string

// Apply оставляет записи, чьё имя содержит search (без учёта регистра) и
// чьи поля точно совпадают со всеми фасетами кроме "All". Порядок сохраняется.
func Apply[T Record](records []T, search string, facets Facets) []T {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if needle != "" && !strings.Contains(strings.ToLower(r.SearchName()), needle) {
			continue
		}
		if !matches(r, facets) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r Record, facets Facets) bool {
	for name, want := range facets {
		if want == "" || want == All {
			continue
		}
		got, ok := r.FacetValue(name)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Distinct — значения фасета в порядке первого появления (варианты для селекта).
func Distinct[T Record](records []T, facet string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range records {
		v, ok := r.FacetValue(facet)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CountBy — сколько записей с каждым значением фасета.
func CountBy[T Record](records []T, facet string) map[string]int {
	out := map[string]int{}
	for _, r := range records {
		if v, ok := r.FacetValue(facet); ok {
			out[v]++
		}
	}
	return out
}
