package credentials

import (
	"unicode"
	"unicode/utf8"

	"github.com/Spok95/techvault/internal/validate"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusExpired  Status = "Expired"
)

var Statuses = []string{string(StatusActive), string(StatusInactive), string(StatusExpired)}

type Strength string

const (
	Strong Strength = "Strong"
	Medium Strength = "Medium"
	Weak   Strength = "Weak"
)

// Mask подставляется вместо пароля в ответах.
const Mask = "********"

type Credential struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Website     string `json:"website,omitempty"`
	Category    string `json:"category"`
	Status      Status `json:"status"`
	LastUpdated string `json:"lastUpdated"`
	Notes       string `json:"notes,omitempty"`
}

func (c Credential) RecordID() int64 { return c.ID }

type View struct {
	Credential
	Strength Strength `json:"strength"`
}

var Facets = []string{"category", "status", "strength"}

// SearchName — поиск идёт и по имени, и по логину.
func (v View) SearchName() string { return v.Name + "\x00" + v.Username }

func (v View) FacetValue(f string) (string, bool) {
	switch f {
	case "category":
		return v.Category, true
	case "status":
		return string(v.Status), true
	case "strength":
		return string(v.Strength), true
	}
	return "", false
}

// Masked возвращает копию со скрытым паролем; сила считается до маскировки.
func (v View) Masked() View {
	if v.Password != "" {
		v.Password = Mask
	}
	return v
}

// StrengthOf: Strong — от 12 символов и 3+ классов, Medium — от 8 и 2+, иначе Weak.
// Классы: строчные, прописные, цифры, прочие.
func StrengthOf(password string) Strength {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}
	classes := 0
	for _, ok := range []bool{lower, upper, digit, other} {
		if ok {
			classes++
		}
	}
	n := utf8.RuneCountInString(password)
	switch {
	case n >= 12 && classes >= 3:
		return Strong
	case n >= 8 && classes >= 2:
		return Medium
	default:
		return Weak
	}
}

type Input struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Website     string `json:"website"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
	Notes       string `json:"notes"`
}

func (in Input) Validate() error {
	return validate.Form(map[string]string{
		"name":        in.Name,
		"username":    in.Username,
		"password":    in.Password,
		"website":     in.Website,
		"category":    in.Category,
		"status":      in.Status,
		"lastUpdated": in.LastUpdated,
		"notes":       in.Notes,
	}, map[string]validate.Rule{
		"name":        {Required: true, MaxLength: 200},
		"username":    {Required: true, MaxLength: 200},
		"password":    {Required: true, MaxLength: 256},
		"website":     {Pattern: validate.URL, Message: "website must be a valid URL"},
		"category":    {Required: true, MaxLength: 100},
		"status":      {Check: validate.OneOf(Statuses...)},
		"lastUpdated": {Check: validate.Date},
		"notes":       {MaxLength: 2000},
	}).Err()
}

func (in Input) credential(id int64, today string) Credential {
	st := Status(in.Status)
	if st == "" {
		st = StatusActive
	}
	updated := in.LastUpdated
	if updated == "" {
		updated = today
	}
	return Credential{
		ID:          id,
		Name:        in.Name,
		Username:    in.Username,
		Password:    in.Password,
		Website:     in.Website,
		Category:    in.Category,
		Status:      st,
		LastUpdated: updated,
		Notes:       in.Notes,
	}
}

func Defaults() []Credential {
	return []Credential{
		{ID: 1, Name: "AWS Admin Access", Username: "admin@company.com", Password: "Kx9#mQ2$vL7pR4", LastUpdated: "2023-05-15", Category: "Cloud", Status: StatusActive},
		{ID: 2, Name: "GitHub Organization", Username: "devteam", Password: "Gh-Org!2023-secure", LastUpdated: "2023-06-22", Category: "Development", Status: StatusActive},
		{ID: 3, Name: "Internal Wiki", Username: "wikiadmin", Password: "wiki2022admin", LastUpdated: "2022-12-10", Category: "Internal", Status: StatusActive},
		{ID: 4, Name: "Database Access", Username: "dbadmin", Password: "dbadmin", LastUpdated: "2022-09-30", Category: "Database", Status: StatusExpired},
		{ID: 5, Name: "Office 365", Username: "admin@company.com", Password: "Office365", LastUpdated: "2023-01-15", Category: "Office", Status: StatusActive},
		{ID: 6, Name: "VPN Access", Username: "vpn.user", Password: "Vpn_Tunnel_8842", LastUpdated: "2023-03-28", Category: "Network", Status: StatusActive},
		{ID: 7, Name: "Analytics Platform", Username: "analyst", Password: "analytics42", LastUpdated: "2023-02-14", Category: "Analytics", Status: StatusInactive},
		{ID: 8, Name: "Social Media", Username: "social.media", Password: "S0cial&Media#Team", LastUpdated: "2022-11-05", Category: "Marketing", Status: StatusActive},
	}
}
