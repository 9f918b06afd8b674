package cables

import (
	"context"

	"github.com/Spok95/techvault/internal/store"
)

type Repo struct {
	items *store.Collection[Cable]
}

func NewRepo(kv store.KV) *Repo {
	return &Repo{items: store.NewCollection(kv, store.KeyCables, Defaults)}
}

func (r *Repo) List(ctx context.Context) ([]Cable, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) Get(ctx context.Context, id int64) (Cable, error) {
	return r.items.Find(ctx, id)
}

func (r *Repo) Create(ctx context.Context, in Input) (Cable, error) {
	if err := in.Validate(); err != nil {
		return Cable{}, err
	}
	return r.items.Create(ctx, func(id int64) (Cable, error) {
		return in.cable(id), nil
	})
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (Cable, error) {
	if err := in.Validate(); err != nil {
		return Cable{}, err
	}
	return r.items.Update(ctx, id, func(Cable) (Cable, error) {
		return in.cable(id), nil
	})
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}
