package subscriptions

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

type Repo struct {
	items *store.Collection[Subscription]
	clf   expiry.Classifier
	now   func() time.Time
}

func NewRepo(kv store.KV, clf expiry.Classifier, now func() time.Time) *Repo {
	if now == nil {
		now = time.Now
	}
	return &Repo{
		items: store.NewCollection(kv, store.KeySubscriptions, Defaults),
		clf:   clf,
		now:   now,
	}
}

func (r *Repo) view(s Subscription) View {
	res := r.clf.Evaluate(r.now(), s.NextBilling)
	return View{Subscription: s, RenewalStatus: res.Status, DaysRemaining: res.DaysRemaining}
}

func (r *Repo) Items(ctx context.Context) ([]Subscription, error) {
	return r.items.LoadAll(ctx)
}

func (r *Repo) List(ctx context.Context) ([]View, error) {
	items, err := r.items.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(items))
	for _, s := range items {
		out = append(out, r.view(s))
	}
	return out, nil
}

// Expiring — активные подписки, которые продлеваются в ближайшее окно.
func (r *Repo) Expiring(ctx context.Context) ([]View, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []View
	for _, v := range all {
		if v.Status == StatusActive && v.RenewalStatus == expiry.ExpiringSoon {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b View) int {
		return cmp.Compare(*a.DaysRemaining, *b.DaysRemaining)
	})
	return out, nil
}

// MonthlyCost — сумма активных подписок в месяц, годовые делятся на 12,
// итог округляется до копеек.
func MonthlyCost(subs []Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		if s.Status != StatusActive {
			continue
		}
		total = total.Add(s.Monthly())
	}
	return total.Round(2)
}

func (r *Repo) MonthlyCost(ctx context.Context) (decimal.Decimal, error) {
	items, err := r.items.LoadAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return MonthlyCost(items), nil
}

func (r *Repo) Get(ctx context.Context, id int64) (View, error) {
	s, err := r.items.Find(ctx, id)
	if err != nil {
		return View{}, err
	}
	return r.view(s), nil
}

func (r *Repo) Create(ctx context.Context, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	s, err := r.items.Create(ctx, func(id int64) (Subscription, error) {
		return in.subscription(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(s), nil
}

func (r *Repo) Update(ctx context.Context, id int64, in Input) (View, error) {
	if err := in.Validate(); err != nil {
		return View{}, err
	}
	s, err := r.items.Update(ctx, id, func(Subscription) (Subscription, error) {
		return in.subscription(id), nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(s), nil
}

// SetStatus — отмена или возобновление подписки.
func (r *Repo) SetStatus(ctx context.Context, id int64, status string) (View, error) {
	if msg := validate.OneOf(Statuses...)(status); msg != "" {
		return View{}, validate.Errors{"status": msg}
	}
	s, err := r.items.Update(ctx, id, func(cur Subscription) (Subscription, error) {
		cur.Status = Status(status)
		return cur, nil
	})
	if err != nil {
		return View{}, err
	}
	return r.view(s), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.items.Delete(ctx, id)
}
