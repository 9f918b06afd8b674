package hardware

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

type Item struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Status       Status `json:"status"`
	Location     string `json:"location"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Model        string `json:"model,omitempty"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	PurchaseDate string `json:"purchaseDate"`
	Warranty     string `json:"warranty"` // дата окончания гарантии
	Notes        string `json:"notes,omitempty"`
}

func (i Item) RecordID() int64 { return i.ID }

// View — запись с производным статусом гарантии.
type View struct {
	Item
	WarrantyStatus        expiry.Status `json:"warrantyStatus"`
	WarrantyDaysRemaining *int          `json:"warrantyDaysRemaining"`
}

// Facets, по которым фильтруется список.
var Facets = []string{"category", "status", "location", "warrantyStatus"}

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

// Input — форма добавления/редактирования.
type Input struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	SerialNumber string `json:"serialNumber"`
	Model        string `json:"model"`
	AssignedTo   string `json:"assignedTo"`
	PurchaseDate string `json:"purchaseDate"`
	Warranty     string `json:"warranty"`
	Notes        string `json:"notes"`
}

func (in Input) Validate() error {
	return validate.Form(map[string]string{
		"name":         in.Name,
		"category":     in.Category,
		"status":       in.Status,
		"location":     in.Location,
		"purchaseDate": in.PurchaseDate,
		"warranty":     in.Warranty,
		"notes":        in.Notes,
	}, map[string]validate.Rule{
		"name":         {Required: true, MaxLength: 200},
		"category":     {Required: true, MaxLength: 100},
		"status":       {Check: validate.OneOf(Statuses...)},
		"location":     {MaxLength: 200},
		"purchaseDate": {Check: validate.Date},
		"warranty":     {Check: validate.Date},
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
		SerialNumber: in.SerialNumber,
		Model:        in.Model,
		AssignedTo:   in.AssignedTo,
		PurchaseDate: in.PurchaseDate,
		Warranty:     in.Warranty,
		Notes:        in.Notes,
	}
}

// Defaults — коллекция при первом запуске.
func Defaults() []Item {
	return []Item{
		{ID: 1, Name: "Dell XPS 15 Laptop", Category: "Computer", Status: StatusActive, Location: "Office", PurchaseDate: "2022-05-15", Warranty: "2025-05-15"},
		{ID: 2, Name: "Corsair K70 Keyboard", Category: "Peripheral", Status: StatusActive, Location: "Office", PurchaseDate: "2021-11-03", Warranty: "2023-11-03"},
		{ID: 3, Name: "Cisco Router 2900", Category: "Network", Status: StatusActive, Location: "Server Room", PurchaseDate: "2020-07-22", Warranty: "2023-07-22"},
		{ID: 4, Name: "HP LaserJet Printer", Category: "Printer", Status: StatusMaintenance, Location: "Office", PurchaseDate: "2019-03-10", Warranty: "2022-03-10"},
		{ID: 5, Name: "Logitech MX Master Mouse", Category: "Peripheral", Status: StatusActive, Location: "Office", PurchaseDate: "2022-01-05", Warranty: "2024-01-05"},
		{ID: 6, Name: "Raspberry Pi 4", Category: "Computer", Status: StatusInactive, Location: "Lab", PurchaseDate: "2021-09-18", Warranty: "2023-09-18"},
		{ID: 7, Name: "Netgear Switch 24-Port", Category: "Network", Status: StatusActive, Location: "Server Room", PurchaseDate: "2020-11-30", Warranty: "2023-11-30"},
		{ID: 8, Name: "Dell U2720Q Monitor", Category: "Display", Status: StatusActive, Location: "Office", PurchaseDate: "2021-06-14", Warranty: "2024-06-14"},
	}
}
