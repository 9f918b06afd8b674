package categories

import (
	"strconv"

	"github.com/Spok95/techvault/internal/validate"
)

// Category — раздел инвентаря. ItemCount только для отображения и сам не пересчитывается.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"itemCount"`
	Icon        string `json:"icon,omitempty"`
}

func (c Category) RecordID() int64 { return c.ID }

var Facets = []string{"icon"}

func (c Category) SearchName() string { return c.Name }

func (c Category) FacetValue(f string) (string, bool) {
	if f == "icon" {
		return c.Icon, true
	}
	return "", false
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ItemCount   int    `json:"itemCount"`
	Icon        string `json:"icon"`
}

func (in Input) Validate() error {
	errs := validate.Form(map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"icon":        in.Icon,
	}, map[string]validate.Rule{
		"name":        {Required: true, MinLength: 2, MaxLength: 100},
		"description": {MaxLength: 500},
		"icon":        {MaxLength: 50},
	})
	if in.ItemCount < 0 {
		errs["itemCount"] = "itemCount must not be negative, got " + strconv.Itoa(in.ItemCount)
	}
	return errs.Err()
}

func (in Input) category(id int64) Category {
	return Category{ID: id, Name: in.Name, Description: in.Description, ItemCount: in.ItemCount, Icon: in.Icon}
}

func Defaults() []Category {
	return []Category{
		{ID: 1, Name: "Computers", Description: "Laptops, desktops, and servers", ItemCount: 12, Icon: "computer"},
		{ID: 2, Name: "Mobile Devices", Description: "Smartphones, tablets, and wearables", ItemCount: 8, Icon: "phone"},
		{ID: 3, Name: "Peripherals", Description: "Keyboards, mice, webcams", ItemCount: 15, Icon: "keyboard"},
		{ID: 4, Name: "Storage", Description: "External drives, SSDs, NAS", ItemCount: 6, Icon: "storage"},
		{ID: 5, Name: "Networking", Description: "Routers, switches, access points", ItemCount: 7, Icon: "network"},
		{ID: 6, Name: "Accessories", Description: "Cables, adapters, cases", ItemCount: 21, Icon: "cable"},
		{ID: 7, Name: "Software", Description: "Purchased applications and licenses", ItemCount: 18, Icon: "software"},
		{ID: 8, Name: "Cloud Services", Description: "Hosting, storage, and SaaS", ItemCount: 5, Icon: "cloud"},
		{ID: 9, Name: "Entertainment", Description: "Gaming consoles, media players", ItemCount: 9, Icon: "media"},
	}
}
