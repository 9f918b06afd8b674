// Package report собирает сводку для дашборда и для дайджеста в Telegram.
package report

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Spok95/techvault/internal/domain/cables"
	"github.com/Spok95/techvault/internal/domain/categories"
	"github.com/Spok95/techvault/internal/domain/credentials"
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/filter"
	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/domain/subscriptions"
	"github.com/Spok95/techvault/internal/domain/tech"
	"github.com/Spok95/techvault/internal/domain/warranties"
)

// Kinds записей в списке "скоро истекает".
const (
	KindWarranty     = "warranty"
	KindSubscription = "subscription"
	KindHardware     = "hardware"
)

type Expiring struct {
	Kind          string `json:"kind"`
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	DaysRemaining int    `json:"daysRemaining"`
}

type Summary struct {
	Totals              map[string]int  `json:"totals"`
	CategoryItems       int             `json:"categoryItems"`
	Warranties          map[string]int  `json:"warranties"`
	HardwareByStatus    map[string]int  `json:"hardwareByStatus"`
	CablesByStatus      map[string]int  `json:"cablesByStatus"`
	ActiveSubscriptions int             `json:"activeSubscriptions"`
	MonthlyCost         decimal.Decimal `json:"monthlyCost"`
	WeakCredentials     int             `json:"weakCredentials"`
	Expiring            []Expiring      `json:"expiring"`
	GeneratedAt         time.Time       `json:"generatedAt"`
}

type Service struct {
	inv *inventory.Inventory
}

func NewService(inv *inventory.Inventory) *Service { return &Service{inv: inv} }

// Build читает все коллекции параллельно; первая ошибка отменяет остальные.
func (s *Service) Build(ctx context.Context) (Summary, error) {
	var (
		cats  []categories.Category
		hw    []hardware.View
		techs []tech.View
		cbl   []cables.Cable
		wr    []warranties.View
		subs  []subscriptions.View
		creds []credentials.View
	)
	inv := s.inv
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { cats, err = inv.Categories.List(gctx); return })
	g.Go(func() (err error) { hw, err = inv.Hardware.List(gctx); return })
	g.Go(func() (err error) { techs, err = inv.Tech.List(gctx); return })
	g.Go(func() (err error) { cbl, err = inv.Cables.List(gctx); return })
	g.Go(func() (err error) { wr, err = inv.Warranties.List(gctx); return })
	g.Go(func() (err error) { subs, err = inv.Subscriptions.List(gctx); return })
	g.Go(func() (err error) { creds, err = inv.Credentials.List(gctx); return })
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Totals: map[string]int{
			"categories":    len(cats),
			"hardware":      len(hw),
			"tech":          len(techs),
			"cables":        len(cbl),
			"warranties":    len(wr),
			"subscriptions": len(subs),
			"credentials":   len(creds),
		},
		Warranties: map[string]int{
			string(expiry.Active):       0,
			string(expiry.ExpiringSoon): 0,
			string(expiry.Expired):      0,
		},
		HardwareByStatus: filter.CountBy(hw, "status"),
		CablesByStatus:   filter.CountBy(cbl, "status"),
		Expiring:         []Expiring{},
		CategoryItems:    categories.TotalItems(cats),
		GeneratedAt:      inv.Now(),
	}
	for st, n := range filter.CountBy(wr, "status") {
		sum.Warranties[st] = n
	}

	raw := make([]subscriptions.Subscription, 0, len(subs))
	for _, v := range subs {
		raw = append(raw, v.Subscription)
		if v.Status == subscriptions.StatusActive {
			sum.ActiveSubscriptions++
		}
	}
	sum.MonthlyCost = subscriptions.MonthlyCost(raw)

	for _, c := range creds {
		if c.Strength == credentials.Weak {
			sum.WeakCredentials++
		}
	}

	for _, w := range wr {
		if w.Status == expiry.ExpiringSoon {
			sum.Expiring = append(sum.Expiring, Expiring{KindWarranty, w.ID, w.Item, w.ExpirationDate, *w.DaysRemaining})
		}
	}
	for _, v := range subs {
		if v.Status == subscriptions.StatusActive && v.RenewalStatus == expiry.ExpiringSoon {
			sum.Expiring = append(sum.Expiring, Expiring{KindSubscription, v.ID, v.Name, v.NextBilling, *v.DaysRemaining})
		}
	}
	for _, h := range hw {
		if h.WarrantyStatus == expiry.ExpiringSoon {
			sum.Expiring = append(sum.Expiring, Expiring{KindHardware, h.ID, h.Name, h.Warranty, *h.WarrantyDaysRemaining})
		}
	}
	slices.SortStableFunc(sum.Expiring, func(a, b Expiring) int {
		return cmp.Compare(a.DaysRemaining, b.DaysRemaining)
	})
	return sum, nil
}
