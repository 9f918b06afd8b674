package cables

import "github.com/Spok95/techvault/internal/validate"

type Status string

const (
	StatusAvailable Status = "Available"
	StatusInUse     Status = "In Use"
	StatusArchived  Status = "Archived"
)

var Statuses = []string{string(StatusAvailable), string(StatusInUse), string(StatusArchived)}

type Cable struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Status    Status `json:"status"`
	Location  string `json:"location"`
	Length    string `json:"length"`
	Connector string `json:"connector"`
	Notes     string `json:"notes,omitempty"`
}

func (c Cable) RecordID() int64 { return c.ID }

var Facets = []string{"category", "status", "connector"}

func (c Cable) SearchName() string { return c.Name }

func (c Cable) FacetValue(f string) (string, bool) {
	switch f {
	case "category":
		return c.Category, true
	case "status":
		return string(c.Status), true
	case "location":
		return c.Location, true
	case "connector":
		return c.Connector, true
	}
	return "", false
}

type Input struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Location  string `json:"location"`
	Length    string `json:"length"`
	Connector string `json:"connector"`
	Notes     string `json:"notes"`
}

func (in Input) Validate() error {
	return validate.Form(map[string]string{
		"name":      in.Name,
		"category":  in.Category,
		"status":    in.Status,
		"location":  in.Location,
		"length":    in.Length,
		"connector": in.Connector,
		"notes":     in.Notes,
	}, map[string]validate.Rule{
		"name":      {Required: true, MaxLength: 200},
		"category":  {Required: true, MaxLength: 100},
		"status":    {Check: validate.OneOf(Statuses...)},
		"location":  {MaxLength: 200},
		"length":    {MaxLength: 20},
		"connector": {MaxLength: 100},
		"notes":     {MaxLength: 2000},
	}).Err()
}

func (in Input) cable(id int64) Cable {
	st := Status(in.Status)
	if st == "" {
		st = StatusAvailable
	}
	return Cable{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Status:    st,
		Location:  in.Location,
		Length:    in.Length,
		Connector: in.Connector,
		Notes:     in.Notes,
	}
}

func Defaults() []Cable {
	return []Cable{
		{ID: 1, Name: "HDMI Cable 6ft", Category: "Video", Status: StatusAvailable, Location: "Office Drawer", Length: "6ft", Connector: "HDMI"},
		{ID: 2, Name: "USB-C to USB-A Cable", Category: "Data", Status: StatusInUse, Location: "Desk Setup", Length: "3ft", Connector: "USB-C to USB-A"},
		{ID: 3, Name: "Ethernet Cable CAT6", Category: "Network", Status: StatusAvailable, Location: "Storage Box", Length: "25ft", Connector: "RJ45"},
		{ID: 4, Name: "DisplayPort Cable", Category: "Video", Status: StatusInUse, Location: "Monitor Setup", Length: "6ft", Connector: "DisplayPort"},
		{ID: 5, Name: "Micro USB Cable", Category: "Charging", Status: StatusAvailable, Location: "Cable Bin", Length: "4ft", Connector: "Micro USB"},
		{ID: 6, Name: "Lightning Cable", Category: "Charging", Status: StatusInUse, Location: "Nightstand", Length: "3ft", Connector: "Lightning"},
		{ID: 7, Name: "HDMI to DVI Adapter", Category: "Adapter", Status: StatusAvailable, Location: "Office Drawer", Length: "N/A", Connector: "HDMI to DVI"},
		{ID: 8, Name: "RCA Audio Cables", Category: "Audio", Status: StatusArchived, Location: "Storage Box", Length: "6ft", Connector: "RCA"},
	}
}
