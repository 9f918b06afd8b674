package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Spok95/techvault/internal/domain/filter"
)

// resource — CRUD-маршруты одной сущности поверх её репозитория.
type resource[V filter.Record, In any] struct {
	name   string
	facets []string
	counts string // фасет для карточек статистики

	list   func(ctx context.Context) ([]V, error)
	get    func(ctx context.Context, id int64) (V, error)
	create func(ctx context.Context, in In) (V, error)
	update func(ctx context.Context, id int64, in In) (V, error)
	remove func(ctx context.Context, id int64) error

	// необязательные
	setStatus func(ctx context.Context, id int64, status string) (V, error)
	present   func(r *http.Request, v V) V
}

type listResponse[V any] struct {
	Items  []V                 `json:"items"`
	Total  int                 `json:"total"`
	Facets map[string][]string `json:"facets"`
	Counts map[string]int      `json:"counts"`
}

func (rs resource[V, In]) mount(r chi.Router, h *Handler) {
	r.Get("/", h.wrap(rs.handleList))
	r.Post("/", h.wrap(rs.handleCreate))
	r.Get("/export", h.wrap(func(w http.ResponseWriter, req *http.Request) error {
		return h.export(w, req, rs.name)
	}))
	r.Get("/{id}", h.wrap(rs.handleGet))
	r.Put("/{id}", h.wrap(rs.handleUpdate))
	r.Delete("/{id}", h.wrap(rs.handleDelete))
	if rs.setStatus != nil {
		r.Patch("/{id}/status", h.wrap(rs.handleStatus))
	}
}

func (rs resource[V, In]) handleList(w http.ResponseWriter, r *http.Request) error {
	all, err := rs.list(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rs.listBody(r, all))
	return nil
}

// listBody фильтрует по q и фасетам; варианты фасетов и счётчики
// считаются по всей коллекции.
func (rs resource[V, In]) listBody(r *http.Request, all []V) listResponse[V] {
	q := r.URL.Query()
	sel := filter.Facets{}
	for _, f := range rs.facets {
		if v := q.Get(f); v != "" {
			sel[f] = v
		}
	}
	items := filter.Apply(all, q.Get("q"), sel)
	if rs.present != nil {
		for i := range items {
			items[i] = rs.present(r, items[i])
		}
	}
	body := listResponse[V]{
		Items:  items,
		Total:  len(items),
		Facets: make(map[string][]string, len(rs.facets)),
		Counts: map[string]int{},
	}
	for _, f := range rs.facets {
		body.Facets[f] = filter.Distinct(all, f)
	}
	if rs.counts != "" {
		body.Counts = filter.CountBy(all, rs.counts)
	}
	return body
}

func (rs resource[V, In]) handleGet(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	v, err := rs.get(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rs.show(r, v))
	return nil
}

func (rs resource[V, In]) handleCreate(w http.ResponseWriter, r *http.Request) error {
	var in In
	if err := decode(r, &in); err != nil {
		return err
	}
	v, err := rs.create(r.Context(), in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, rs.show(r, v))
	return nil
}

func (rs resource[V, In]) handleUpdate(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var in In
	if err := decode(r, &in); err != nil {
		return err
	}
	v, err := rs.update(r.Context(), id, in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rs.show(r, v))
	return nil
}

func (rs resource[V, In]) handleDelete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := rs.remove(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (rs resource[V, In]) handleStatus(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		return err
	}
	v, err := rs.setStatus(r.Context(), id, body.Status)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rs.show(r, v))
	return nil
}

func (rs resource[V, In]) show(r *http.Request, v V) V {
	if rs.present != nil {
		return rs.present(r, v)
	}
	return v
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest{fmt.Sprintf("invalid id %q", raw)}
	}
	return id, nil
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest{"empty request body"}
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return badRequest{"request body too large"}
		}
		return badRequest{"invalid JSON: " + err.Error()}
	}
	return nil
}
