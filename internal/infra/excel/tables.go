package excel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/domain/warranties"
)

var ErrUnknownEntity = errors.New("excel: unknown entity")

// Exporter строит таблицу для выгрузки любой сущности.
type Exporter struct {
	inv *inventory.Inventory
}

func NewExporter(inv *inventory.Inventory) *Exporter { return &Exporter{inv: inv} }

func (e *Exporter) Table(ctx context.Context, entity string) (Table, error) {
	switch entity {
	case "categories":
		cs, err := e.inv.Categories.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Categories", Header: []string{"id", "name", "description", "itemCount", "icon"}}
		for _, c := range cs {
			t.Rows = append(t.Rows, []any{c.ID, c.Name, c.Description, c.ItemCount, c.Icon})
		}
		return t, nil

	case "hardware":
		vs, err := e.inv.Hardware.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Hardware", Header: []string{
			"id", "name", "category", "status", "location", "serialNumber", "model",
			"assignedTo", "purchaseDate", "warranty", "warrantyStatus", "notes",
		}}
		for _, v := range vs {
			t.Rows = append(t.Rows, []any{
				v.ID, v.Name, v.Category, string(v.Status), v.Location, v.SerialNumber, v.Model,
				v.AssignedTo, v.PurchaseDate, v.Warranty, string(v.WarrantyStatus), v.Notes,
			})
		}
		return t, nil

	case "tech":
		vs, err := e.inv.Tech.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Tech", Header: []string{
			"id", "name", "category", "status", "location", "assignedTo", "serialNumber",
			"purchaseDate", "warranty", "lastChecked", "notes",
		}}
		for _, v := range vs {
			t.Rows = append(t.Rows, []any{
				v.ID, v.Name, v.Category, string(v.Status), v.Location, v.AssignedTo, v.SerialNumber,
				v.PurchaseDate, v.Warranty, v.LastChecked, v.Notes,
			})
		}
		return t, nil

	case "cables":
		cs, err := e.inv.Cables.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Cables", Header: []string{"id", "name", "category", "status", "location", "length", "connector", "notes"}}
		for _, c := range cs {
			t.Rows = append(t.Rows, []any{c.ID, c.Name, c.Category, string(c.Status), c.Location, c.Length, c.Connector, c.Notes})
		}
		return t, nil

	case "warranties":
		vs, err := e.inv.Warranties.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Warranties", Header: []string{
			"id", "item", "provider", "details", "documentName", "purchaseDate",
			"expirationDate", "status", "daysRemaining", "notes",
		}}
		for _, v := range vs {
			var days any = ""
			if v.DaysRemaining != nil {
				days = *v.DaysRemaining
			}
			t.Rows = append(t.Rows, []any{
				v.ID, v.Item, v.Provider, v.Details, v.DocumentName, v.PurchaseDate,
				v.ExpirationDate, string(v.Status), days, v.Notes,
			})
		}
		return t, nil

	case "subscriptions":
		vs, err := e.inv.Subscriptions.List(ctx)
		if err != nil {
			return Table{}, err
		}
		t := Table{Sheet: "Subscriptions", Header: []string{
			"id", "name", "category", "provider", "price", "billingCycle",
			"startDate", "nextBilling", "status", "renewalStatus", "notes",
		}}
		for _, v := range vs {
			t.Rows = append(t.Rows, []any{
				v.ID, v.Name, v.Category, v.Provider, v.Price.InexactFloat64(), string(v.BillingCycle),
				v.StartDate, v.NextBilling, string(v.Status), string(v.RenewalStatus), v.Notes,
			})
		}
		return t, nil

	case "credentials":
		vs, err := e.inv.Credentials.List(ctx)
		if err != nil {
			return Table{}, err
		}
		// пароли в файл не попадают
		t := Table{Sheet: "Credentials", Header: []string{
			"id", "name", "username", "website", "category", "status", "strength", "lastUpdated", "notes",
		}}
		for _, v := range vs {
			t.Rows = append(t.Rows, []any{
				v.ID, v.Name, v.Username, v.Website, v.Category, string(v.Status), string(v.Strength), v.LastUpdated, v.Notes,
			})
		}
		return t, nil
	}
	return Table{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
}

// HardwareInputs разбирает строки импорта; id и производные колонки игнорируются.
func HardwareInputs(rows []map[string]string) []hardware.Input {
	out := make([]hardware.Input, 0, len(rows))
	for _, r := range rows {
		out = append(out, hardware.Input{
			Name:         r["name"],
			Category:     r["category"],
			Status:       r["status"],
			Location:     r["location"],
			SerialNumber: r["serialNumber"],
			Model:        r["model"],
			AssignedTo:   r["assignedTo"],
			PurchaseDate: r["purchaseDate"],
			Warranty:     r["warranty"],
			Notes:        r["notes"],
		})
	}
	return out
}

func WarrantyInputs(rows []map[string]string) []warranties.Input {
	out := make([]warranties.Input, 0, len(rows))
	for _, r := range rows {
		out = append(out, warranties.Input{
			Item:           r["item"],
			Provider:       r["provider"],
			Details:        r["details"],
			DocumentName:   r["documentName"],
			PurchaseDate:   r["purchaseDate"],
			ExpirationDate: r["expirationDate"],
			Notes:          r["notes"],
		})
	}
	return out
}

