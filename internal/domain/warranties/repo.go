package warranties

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/store"
)

type Repo struct {
	items *store.Collection[Warranty]
	clf   expiry.Classifier
	now   func() time.Time
}

func NewRepo(kv store.KV, clf expiry.Classifier, now func() time.Time) *Repo {
	if now == nil {
		now = time.Now
	}
	return &Repo{
		items: store.NewCollection(kv, store.KeyWarranties, Defaults),
		clf:   clf,
		now:   now,
	}
}

func (r *Repo) view(w Warranty) View {
	res := r.clf.Evaluate(r.now(), w.ExpirationDate)
	return View{Warranty: w, Status: res.Status, DaysRemaining: res.DaysRemaining}
}

func (r *Repo) Items(ctx context.Context) ([]Warranty, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) List(ctx context.Context) ([]View, error) {
	items, err := r.items.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, w := range items {
		out = append(out, r.view(w))
	}
	return out, nil
}

// Expiring — гарантии в статусе Expiring Soon, ближайшие первыми.
func (r *Repo) Expiring(ctx context.Context) ([]View, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []View
	for _, v := range all {
		if v.Status == expiry.ExpiringSoon {
			out = append(out, v)
		}
	}
	sortByDays(out)
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (View, error) {
	w, err := r.items.Find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return r.view(w), nil
}

func (r *Repo) Create(ctx context.Context, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	w, err := r.items.Create(ctx, func(id int64) (Warranty, error) {
		return in.warranty(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(w), nil
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	w, err := r.items.Update(ctx, id, func(Warranty) (Warranty, error) {
		return in.warranty(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(w), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}

func (r *Repo) Import(ctx context.Context, ins []Input) (int, error) {
	for i, in := range ins {
		if err := in.Validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	added, err := r.items.CreateMany(ctx, len(ins), func(i int, id int64) (Warranty, error) {
		return ins[i].warranty(id), nil
	})
	if err != nil {
		return 0, err
	}
	return len(added), nil
}

func sortByDays(vs []View) {
	slices.SortStableFunc(vs, func(a, b View) int {
		return cmp.Compare(days(a), days(b))
	})
}

func days(v View) int {
	if v.DaysRemaining == nil {
		return math.MinInt
	}
	return *v.DaysRemaining
}
