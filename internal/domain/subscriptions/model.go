package subscriptions

import (
	"github.com/shopspring/decimal"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/validate"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusCanceled Status = "Canceled"
)

type Cycle string

const (
	Monthly Cycle = "Monthly"
	Yearly  Cycle = "Yearly"
)

var (
	Statuses = []string{string(StatusActive), string(StatusCanceled)}
	Cycles   = []string{string(Monthly), string(Yearly)}
)

// Subscription — платная подписка. Status задаёт пользователь,
// срок продления считается от NextBilling.
type Subscription struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Provider     string          `json:"provider,omitempty"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle Cycle           `json:"billingCycle"`
	StartDate    string          `json:"startDate,omitempty"`
	NextBilling  string          `json:"nextBilling"`
	Status       Status          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
}

func (s Subscription) RecordID() int64 { return s.ID }

// Monthly — стоимость в пересчёте на месяц.
func (s Subscription) Monthly() decimal.Decimal {
	if s.BillingCycle == Yearly {
		return s.Price.Div(decimal.NewFromInt(12))
	}
	return s.Price
}

type View struct {
	Subscription
	RenewalStatus expiry.Status `json:"renewalStatus"`
	DaysRemaining *int          `json:"daysRemaining"`
}

var Facets = []string{"category", "status", "billingCycle"}

func (v View) SearchName() string { return v.Name }

func (v View) FacetValue(f string) (string, bool) {
	switch f {
	case "category":
		return v.Category, true
	case "status":
		return string(v.Status), true
	case "billingCycle":
		return string(v.BillingCycle), true
	case "renewalStatus":
		return string(v.RenewalStatus), true
	}
	return "", false
}

type Input struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Provider     string          `json:"provider"`
	Price        decimal.Decimal `json:"price"`
	BillingCycle string          `json:"billingCycle"`
	StartDate    string          `json:"startDate"`
	NextBilling  string          `json:"nextBilling"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

func (in Input) Validate() error {
	errs := validate.Form(map[string]string{
		"name":         in.Name,
		"category":     in.Category,
		"provider":     in.Provider,
		"billingCycle": in.BillingCycle,
		"startDate":    in.StartDate,
		"nextBilling":  in.NextBilling,
		"status":       in.Status,
		"notes":        in.Notes,
	}, map[string]validate.Rule{
		"name":         {Required: true, MaxLength: 200},
		"category":     {Required: true, MaxLength: 100},
		"provider":     {MaxLength: 200},
		"billingCycle": {Required: true, Check: validate.OneOf(Cycles...)},
		"startDate":    {Check: validate.Date},
		"nextBilling":  {Required: true, Check: validate.Date},
		"status":       {Check: validate.OneOf(Statuses...)},
		"notes":        {MaxLength: 2000},
	})
	if in.Price.IsNegative() {
		errs["price"] = "price must not be negative"
	} else if !in.Price.Equal(in.Price.Round(2)) {
		errs["price"] = "price must have at most 2 decimal places"
	}
	return errs.Err()
}

func (in Input) subscription(id int64) Subscription {
	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	return Subscription{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		Provider:     in.Provider,
		Price:        in.Price,
		BillingCycle: Cycle(in.BillingCycle),
		StartDate:    in.StartDate,
		NextBilling:  in.NextBilling,
		Status:       st,
		Notes:        in.Notes,
	}
}

func Defaults() []Subscription {
	return []Subscription{
		{ID: 1, Name: "Netflix Premium", Category: "Streaming", Price: decimal.RequireFromString("19.99"), BillingCycle: Monthly, NextBilling: "2023-06-15", Status: StatusActive},
		{ID: 2, Name: "Adobe Creative Cloud", Category: "Software", Price: decimal.RequireFromString("52.99"), BillingCycle: Monthly, NextBilling: "2023-06-22", Status: StatusActive},
		{ID: 3, Name: "Spotify Family", Category: "Streaming", Price: decimal.RequireFromString("14.99"), BillingCycle: Monthly, NextBilling: "2023-06-05", Status: StatusActive},
		{ID: 4, Name: "Microsoft 365", Category: "Software", Price: decimal.RequireFromString("99.99"), BillingCycle: Yearly, NextBilling: "2023-10-12", Status: StatusActive},
		{ID: 5, Name: "iCloud+ 2TB", Category: "Cloud Storage", Price: decimal.RequireFromString("9.99"), BillingCycle: Monthly, NextBilling: "2023-06-18", Status: StatusActive},
		{ID: 6, Name: "New York Times", Category: "News", Price: decimal.RequireFromString("4.99"), BillingCycle: Monthly, NextBilling: "2023-06-30", Status: StatusCanceled},
	}
}
