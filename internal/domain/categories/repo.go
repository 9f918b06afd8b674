package categories

import (
	"context"

	"github.com/Spok95/techvault/internal/store"
)

type Repo struct {
	items *store.Collection[Category]
}

func NewRepo(kv store.KV) *Repo {
	return &Repo{items: store.NewCollection(kv, store.KeyCategories, Defaults)}
}

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) Get(ctx context.Context, id int64) (Category, error) {
	return r.items.Find(ctx, id)
}

func (r *Repo) Create(ctx context.Context, in Input) (Category, error) {
	if err := in.Validate(); err != nil {
		return Category{}, err
	}
	return r.items.Create(ctx, func(id int64) (Category, error) {
		return in.category(id), nil
	})
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (Category, error) {
	if err := in.Validate(); err != nil {
		return Category{}, err
	}
	return r.items.Update(ctx, id, func(Category) (Category, error) {
		return in.category(id), nil
	})
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}

// TotalItems — сумма itemCount по категориям (карточка на дашборде).
func TotalItems(cs []Category) int {
	total := 0
	for _, c := range cs {
		total += c.ItemCount
	}
	return total
}
