// Package api — JSON API дашборда: списки с поиском и фасетами, CRUD,
// выгрузка/загрузка Excel, сводка и имитация внешнего API.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Spok95/techvault/internal/domain/cables"
	"github.com/Spok95/techvault/internal/domain/categories"
	"github.com/Spok95/techvault/internal/domain/credentials"
	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/domain/report"
	"github.com/Spok95/techvault/internal/domain/subscriptions"
	"github.com/Spok95/techvault/internal/domain/tech"
	"github.com/Spok95/techvault/internal/domain/warranties"
	"github.com/Spok95/techvault/internal/infra/excel"
	"github.com/Spok95/techvault/internal/infra/mockapi"
)

const (
	maxJSONBody   = 1 << 20
	maxUploadBody = 10 << 20
)

type Handler struct {
	log      *slog.Logger
	inv      *inventory.Inventory
	reports  *report.Service
	exporter *excel.Exporter
	mock     *mockapi.Simulator
}

// NewHandler собирает роутер. mock == nil — маршрут /api/mock не монтируется.
func NewHandler(log *slog.Logger, inv *inventory.Inventory, mock *mockapi.Simulator) http.Handler {
	h := &Handler{
		log:      log,
		inv:      inv,
		reports:  report.NewService(inv),
		exporter: excel.NewExporter(inv),
		mock:     mock,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.wrap(h.dashboard))

		r.Route("/categories", func(r chi.Router) {
			h.categories().mount(r, h)
			r.Get("/{id}/items", h.wrap(h.categoryItems))
			r.Post("/{id}/items", h.wrap(h.createCategoryItem))
		})
		r.Route("/hardware", func(r chi.Router) {
			h.hardware().mount(r, h)
			r.Post("/import", h.wrapUpload(h.importHardware))
		})
		r.Route("/tech", func(r chi.Router) {
			h.tech().mount(r, h)
		})
		r.Route("/cables", func(r chi.Router) {
			h.cables().mount(r, h)
		})
		r.Route("/warranties", func(r chi.Router) {
			h.warranties().mount(r, h)
			r.Get("/expiring", h.wrap(h.expiringWarranties))
			r.Post("/import", h.wrapUpload(h.importWarranties))
		})
		r.Route("/subscriptions", func(r chi.Router) {
			h.subscriptions().mount(r, h)
			r.Get("/expiring", h.wrap(h.expiringSubscriptions))
		})
		r.Route("/credentials", func(r chi.Router) {
			h.credentials().mount(r, h)
		})

		if h.mock != nil {
			r.HandleFunc("/mock/*", h.wrap(h.mockCall))
		}
	})
	return r
}

// wrap: обработчик возвращает ошибку, ответ на неё пишется в одном месте.
func (h *Handler) wrap(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return h.limited(maxJSONBody, fn)
}

func (h *Handler) wrapUpload(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return h.limited(maxUploadBody, fn)
}

func (h *Handler) limited(limit int64, fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		if err := fn(w, r); err != nil {
			writeErr(w, r, h.log, err)
		}
	}
}

func (h *Handler) categories() resource[categories.Category, categories.Input] {
	repo := h.inv.Categories
	return resource[categories.Category, categories.Input]{
		name:   "categories",
		facets: categories.Facets,
		list:   repo.List,
		get:    repo.Get,
		create: repo.Create,
		update: repo.Update,
		remove: repo.Delete,
	}
}

func (h *Handler) hardware() resource[hardware.View, hardware.Input] {
	repo := h.inv.Hardware
	return resource[hardware.View, hardware.Input]{
		name:      "hardware",
		facets:    hardware.Facets,
		counts:    "status",
		list:      repo.List,
		get:       repo.Get,
		create:    repo.Create,
		update:    repo.Update,
		remove:    repo.Delete,
		setStatus: repo.SetStatus,
	}
}

func (h *Handler) tech() resource[tech.View, tech.Input] {
	repo := h.inv.Tech
	return resource[tech.View, tech.Input]{
		name:      "tech",
		facets:    tech.Facets,
		counts:    "status",
		list:      repo.List,
		get:       repo.Get,
		create:    repo.Create,
		update:    repo.Update,
		remove:    repo.Delete,
		setStatus: repo.SetStatus,
	}
}

func (h *Handler) cables() resource[cables.Cable, cables.Input] {
	repo := h.inv.Cables
	return resource[cables.Cable, cables.Input]{
		name:   "cables",
		facets: cables.Facets,
		counts: "status",
		list:   repo.List,
		get:    repo.Get,
		create: repo.Create,
		update: repo.Update,
		remove: repo.Delete,
	}
}

func (h *Handler) warranties() resource[warranties.View, warranties.Input] {
	repo := h.inv.Warranties
	return resource[warranties.View, warranties.Input]{
		name:   "warranties",
		facets: warranties.Facets,
		counts: "status",
		list:   repo.List,
		get:    repo.Get,
		create: repo.Create,
		update: repo.Update,
		remove: repo.Delete,
	}
}

func (h *Handler) subscriptions() resource[subscriptions.View, subscriptions.Input] {
	repo := h.inv.Subscriptions
	return resource[subscriptions.View, subscriptions.Input]{
		name:      "subscriptions",
		facets:    subscriptions.Facets,
		counts:    "status",
		list:      repo.List,
		get:       repo.Get,
		create:    repo.Create,
		update:    repo.Update,
		remove:    repo.Delete,
		setStatus: repo.SetStatus,
	}
}

func (h *Handler) credentials() resource[credentials.View, credentials.Input] {
	repo := h.inv.Credentials
	return resource[credentials.View, credentials.Input]{
		name:   "credentials",
		facets: credentials.Facets,
		counts: "strength",
		list:   repo.List,
		get:    repo.Get,
		create: repo.Create,
		update: repo.Update,
		remove: repo.Delete,
		present: func(r *http.Request, v credentials.View) credentials.View {
			if r.URL.Query().Get("reveal") == "true" {
				return v
			}
			return v.Masked()
		},
	}
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) error {
	sum, err := h.reports.Build(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, sum)
	return nil
}

func (h *Handler) expiringWarranties(w http.ResponseWriter, r *http.Request) error {
	vs, err := h.inv.Warranties.Expiring(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(vs), "total": len(vs)})
	return nil
}

func (h *Handler) expiringSubscriptions(w http.ResponseWriter, r *http.Request) error {
	vs, err := h.inv.Subscriptions.Expiring(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(vs), "total": len(vs)})
	return nil
}

type categoryItemsResponse struct {
	Category categories.Category `json:"category"`
	listResponse[tech.View]
}

func (h *Handler) categoryItems(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	cat, err := h.inv.Categories.Get(r.Context(), id)
	if err != nil {
		return err
	}
	items, err := h.inv.Tech.InCategory(r.Context(), cat.Name)
	if err != nil {
		return err
	}
	rs := resource[tech.View, tech.Input]{facets: []string{"status", "location"}, counts: "status"}
	writeJSON(w, http.StatusOK, categoryItemsResponse{Category: cat, listResponse: rs.listBody(r, items)})
	return nil
}

// createCategoryItem добавляет технику в раздел: категория берётся из пути.
func (h *Handler) createCategoryItem(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	cat, err := h.inv.Categories.Get(r.Context(), id)
	if err != nil {
		return err
	}
	var in tech.Input
	if err := decode(r, &in); err != nil {
		return err
	}
	in.Category = cat.Name
	v, err := h.inv.Tech.Create(r.Context(), in)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, v)
	return nil
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, entity string) error {
	t, err := h.exporter.Table(r.Context(), entity)
	if err != nil {
		return err
	}
	data, err := excel.Encode(t)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s.xlsx", entity, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	return nil
}

func (h *Handler) importHardware(w http.ResponseWriter, r *http.Request) error {
	rows, err := readUpload(r)
	if err != nil {
		return err
	}
	n, err := h.inv.Hardware.Import(r.Context(), excel.HardwareInputs(rows))
	if err != nil {
		return err
	}
	h.log.Info("hardware imported", "rows", n)
	writeJSON(w, http.StatusOK, map[string]int{"imported": n})
	return nil
}

func (h *Handler) importWarranties(w http.ResponseWriter, r *http.Request) error {
	rows, err := readUpload(r)
	if err != nil {
		return err
	}
	n, err := h.inv.Warranties.Import(r.Context(), excel.WarrantyInputs(rows))
	if err != nil {
		return err
	}
	h.log.Info("warranties imported", "rows", n)
	writeJSON(w, http.StatusOK, map[string]int{"imported": n})
	return nil
}

// readUpload принимает .xlsx сырым телом или полем "file" multipart-формы.
func readUpload(r *http.Request) ([]map[string]string, error) {
	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, badRequest{"missing file field"}
		}
		defer func() { _ = f.Close() }()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, badRequest{"cannot read upload: " + err.Error()}
	}
	rows, err := excel.Read(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, excel.ErrNoRows) {
			return nil, err
		}
		return nil, badRequest{"file is not a valid .xlsx"}
	}
	return rows, nil
}

func (h *Handler) mockCall(w http.ResponseWriter, r *http.Request) error {
	var data map[string]any
	if r.ContentLength != 0 && r.Method != http.MethodGet && r.Method != http.MethodDelete {
		if err := decode(r, &data); err != nil {
			return err
		}
	}
	endpoint := "/" + chi.URLParam(r, "*")
	resp, err := h.mock.Call(r.Context(), endpoint, r.Method, data)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, resp)
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
