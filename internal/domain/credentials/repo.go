package credentials

import (
	"context"
	"time"

	"github.com/Spok95/techvault/internal/store"
)

type Repo struct {
	items *store.Collection[Credential]
	now   func() time.Time
}

func NewRepo(kv store.KV, now func() time.Time) *Repo {
	if now == nil {
		now = time.Now
	}
	return &Repo{items: store.NewCollection(kv, store.KeyCredentials, Defaults), now: now}
}

func view(c Credential) View {
	return View{Credential: c, Strength: StrengthOf(c.Password)}
}

// List отдаёт записи с открытыми паролями; маскирование — дело вызывающего.
func (r *Repo) List(ctx context.Context) ([]View, error) {
	items, err := r.items.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, c := range items {
		out = append(out, view(c))
	}
	return out, nil
}

func (r *Repo) Items(ctx context.Context) ([]Credential, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) Get(ctx context.Context, id int64) (View, error) {
	c, err := r.items.Find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return view(c), nil
}

func (r *Repo) Create(ctx context.Context, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	c, err := r.items.Create(ctx, func(id int64) (Credential, error) {
		return in.credential(id, r.today()), nil
	})
	if err != nil {
		return View{}, err
	}
	return view(c), nil
}

// Update сохраняет старый пароль, если пришла маска; дата обновления
// сдвигается только при смене пароля.
func (r *Repo) Update(ctx context.Context, id int64, in Input) (View, error) {
	c, err := r.items.Update(ctx, id, func(cur Credential) (Credential, error) {
		if in.Password == Mask || in.Password == "" {
			in.Password = cur.Password
		}
		if err := in.Validate(); err != nil {
			return Credential{}, err
		}
		next := in.credential(id, r.today())
		if in.LastUpdated == "" {
			next.LastUpdated = cur.LastUpdated
			if next.Password != cur.Password {
				next.LastUpdated = r.today()
			}
		}
		return next, nil
	})
	if err != nil {
		return View{}, err
	}
	return view(c), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}

func (r *Repo) today() string {
	return r.now().Format(time.DateOnly)
}
