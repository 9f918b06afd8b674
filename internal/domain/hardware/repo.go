package hardware

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

type Repo struct {
	items *store.Collection[Item]
	clf   expiry.Classifier
	now   func() time.Time
}

func NewRepo(kv store.KV, clf expiry.Classifier, now func() time.Time) *Repo {
	if now == nil {
		now = time.Now
	}
	return &Repo{
		items: store.NewCollection(kv, store.KeyHardware, Defaults),
		clf:   clf,
		now:   now,
	}
}

func (r *Repo) view(it Item) View {
	res := r.clf.Evaluate(r.now(), it.Warranty)
	return View{Item: it, WarrantyStatus: res.Status, WarrantyDaysRemaining: res.DaysRemaining}
}

// Items — сырые записи без производных полей (для выгрузки).
func (r *Repo) Items(ctx context.Context) ([]Item, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) List(ctx context.Context) ([]View, error) {
	items, err := r.items.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, it := range items {
		out = append(out, r.view(it))
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (View, error) {
	it, err := r.items.Find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return r.view(it), nil
}

func (r *Repo) Create(ctx context.Context, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	it, err := r.items.Create(ctx, func(id int64) (Item, error) {
		return in.item(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(it), nil
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	it, err := r.items.Update(ctx, id, func(Item) (Item, error) {
		return in.item(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(it), nil
}

// SetStatus — быстрая смена статуса из списка.
func (r *Repo) SetStatus(ctx context.Context, id int64, status string) (View, error) {
	if msg := validate.OneOf(Statuses...)(status); msg != "" {
		return View{}, validate.Errors{"status": msg}
	}
	it, err := r.items.Update(ctx, id, func(cur Item) (Item, error) {
		cur.Status = Status(status)
		return cur, nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(it), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}

// Import добавляет записи пачкой одной записью в хранилище: при ошибке
// валидации или записи не сохраняется ни одна строка.
func (r *Repo) Import(ctx context.Context, ins []Input) (int, error) {
	for i, in := range ins {
		if err := in.Validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	added, err := r.items.CreateMany(ctx, len(ins), func(i int, id int64) (Item, error) {
		return ins[i].item(id), nil
	})
	if err != nil {
		return 0, err
	}
	return len(added), nil
}
