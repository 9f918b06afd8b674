package tech

import (
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/validate"
)

type Status string

const (
	StatusActive      Status = "Active"
	StatusMaintenance Status = "Maintenance"
	StatusInactive    Status = "Inactive"
)

var Statuses = []string{string(StatusActive), string(StatusMaintenance), string(StatusInactive)}

// Item — техника; в разделе категории показываются записи с её именем в Category.
type Item struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Status       Status `json:"status"`
	Location     string `json:"location"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
	Warranty     string `json:"warranty,omitempty"`
	LastChecked  string `json:"lastChecked,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (i Item) RecordID() int64 { return i.ID }

type View struct {
	Item
	WarrantyStatus        expiry.Status `json:"warrantyStatus"`
	WarrantyDaysRemaining *int          `json:"warrantyDaysRemaining"`
}

var Facets = []string{"category", "status", "location"}

func (v View) SearchName() string { return v.Name }

func (v View) FacetValue(f string) (string, bool) {
	switch f {
	case "category":
		return v.Category, true
	case "status":
		return string(v.Status), true
	case "location":
		return v.Location, true
	case "warrantyStatus":
		return string(v.WarrantyStatus), true
	}
	return "", false
}

type Input struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	AssignedTo   string `json:"assignedTo"`
	SerialNumber string `json:"serialNumber"`
	PurchaseDate string `json:"purchaseDate"`
	Warranty     string `json:"warranty"`
	LastChecked  string `json:"lastChecked"`
	Notes        string `json:"notes"`
}

func (in Input) Validate() error {
	return validate.Form(map[string]string{
		"name":         in.Name,
		"category":     in.Category,
		"status":       in.Status,
		"location":     in.Location,
		"serialNumber": in.SerialNumber,
		"purchaseDate": in.PurchaseDate,
		"warranty":     in.Warranty,
		"lastChecked":  in.LastChecked,
		"notes":        in.Notes,
	}, map[string]validate.Rule{
		"name":         {Required: true, MaxLength: 200},
		"category":     {Required: true, MaxLength: 100},
		"status":       {Check: validate.OneOf(Statuses...)},
		"location":     {MaxLength: 200},
		"serialNumber": {MaxLength: 100},
		"purchaseDate": {Check: validate.Date},
		"warranty":     {Check: validate.Date},
		"lastChecked":  {Check: validate.Date},
		"notes":        {MaxLength: 2000},
	}).Err()
}

func (in Input) item(id int64) Item {
	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	return Item{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		Status:       st,
		Location:     in.Location,
		AssignedTo:   in.AssignedTo,
		SerialNumber: in.SerialNumber,
		PurchaseDate: in.PurchaseDate,
		Warranty:     in.Warranty,
		LastChecked:  in.LastChecked,
		Notes:        in.Notes,
	}
}

func Defaults() []Item {
	return []Item{
		{ID: 1, Name: "Dell XPS 15 Laptop", Category: "Computers", Status: StatusActive, LastChecked: "2023-05-10", Location: "Office"},
		{ID: 2, Name: "iPhone 13 Pro", Category: "Mobile Devices", Status: StatusActive, LastChecked: "2023-05-12", Location: "Personal"},
		{ID: 3, Name: "Samsung T5 SSD 1TB", Category: "Storage", Status: StatusActive, LastChecked: "2023-04-22", Location: "Office"},
		{ID: 4, Name: "Logitech MX Master 3", Category: "Peripherals", Status: StatusActive, LastChecked: "2023-05-05", Location: "Office"},
		{ID: 5, Name: `iPad Pro 12.9"`, Category: "Mobile Devices", Status: StatusMaintenance, LastChecked: "2023-05-01", Location: "Personal"},
		{ID: 6, Name: "Raspberry Pi 4", Category: "Computers", Status: StatusInactive, LastChecked: "2023-03-15", Location: "Lab"},
	}
}
