package warranties

import (
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/validate"
)

// Warranty хранится без статуса: статус считается от даты окончания.
type Warranty struct {
	ID             int64  `json:"id"`
	Item           string `json:"item"`
	Provider       string `json:"provider"`
	Details        string `json:"details,omitempty"`
	DocumentName   string `json:"documentName,omitempty"`
	PurchaseDate   string `json:"purchaseDate"`
	ExpirationDate string `json:"expirationDate"`
	Notes          string `json:"notes,omitempty"`
}

func (w Warranty) RecordID() int64 { return w.ID }

type View struct {
	Warranty
	Status        expiry.Status `json:"status"`
	DaysRemaining *int          `json:"daysRemaining"`
}

var Facets = []string{"status", "provider"}

func (v View) SearchName() string { return v.Item }

func (v View) FacetValue(f string) (string, bool) {
	switch f {
	case "status":
		return string(v.Status), true
	case "provider":
		return v.Provider, true
	}
	return "", false
}

type Input struct {
	Item           string `json:"item"`
	Provider       string `json:"provider"`
	Details        string `json:"details"`
	DocumentName   string `json:"documentName"`
	PurchaseDate   string `json:"purchaseDate"`
	ExpirationDate string `json:"expirationDate"`
	Notes          string `json:"notes"`
}

func (in Input) Validate() error {
	return validate.Form(map[string]string{
		"item":           in.Item,
		"provider":       in.Provider,
		"details":        in.Details,
		"documentName":   in.DocumentName,
		"purchaseDate":   in.PurchaseDate,
		"expirationDate": in.ExpirationDate,
		"notes":          in.Notes,
	}, map[string]validate.Rule{
		"item":           {Required: true, MaxLength: 200},
		"provider":       {Required: true, MaxLength: 200},
		"details":        {MaxLength: 1000},
		"documentName":   {MaxLength: 255},
		"purchaseDate":   {Check: validate.Date},
		"expirationDate": {Required: true, Check: validate.Date},
		"notes":          {MaxLength: 2000},
	}).Err()
}

func (in Input) warranty(id int64) Warranty {
	return Warranty{
		ID:             id,
		Item:           in.Item,
		Provider:       in.Provider,
		Details:        in.Details,
		DocumentName:   in.DocumentName,
		PurchaseDate:   in.PurchaseDate,
		ExpirationDate: in.ExpirationDate,
		Notes:          in.Notes,
	}
}

func Defaults() []Warranty {
	return []Warranty{
		{ID: 1, Item: "Dell XPS 15 Laptop", Provider: "Dell Premium Support", Details: "Covers hardware and technical support", PurchaseDate: "2023-06-15", ExpirationDate: "2025-06-15"},
		{ID: 2, Item: "iPhone 13 Pro", Provider: "AppleCare+", Details: "Covers hardware and accidental damage", PurchaseDate: "2022-07-22", ExpirationDate: "2023-07-22"},
		{ID: 3, Item: "LG OLED TV", Provider: "LG Extended Warranty", Details: "Covers panel and electronic components", PurchaseDate: "2022-01-10", ExpirationDate: "2024-01-10"},
		{ID: 4, Item: "Sony WH-1000XM4 Headphones", Provider: "Sony Warranty", Details: "Standard manufacturer warranty", PurchaseDate: "2022-08-05", ExpirationDate: "2023-08-05"},
		{ID: 5, Item: "Samsung Galaxy S21", Provider: "Samsung Care", Details: "Covered hardware issues and technical support", PurchaseDate: "2022-03-15", ExpirationDate: "2023-03-15"},
	}
}
