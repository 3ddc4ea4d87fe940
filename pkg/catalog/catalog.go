// Package catalog holds the records and settings the seeder writes.
package catalog

import (
	"strings"

	"github.com/hellofresh/catalog-seeder/pkg/database"
)

// Record is implemented by everything that can be written as a table row.
type Record interface {
	TableName() string
	Columns() []string
	Row() database.Row
}

type (
	// Country is a country with its ISO codes.
	Country struct {
		Name               string
		TwoLetterISOCode   string
		ThreeLetterISOCode string
		NumericISOCode     int
		AllowsBilling      bool
		AllowsShipping     bool
		SubjectToVAT       bool
		Published          bool
		DisplayOrder       int
	}

	// Category is a catalog category. ParentName is empty for root categories.
	Category struct {
		Name           string
		ParentName     string
		Description    string
		Published      bool
		ShowOnHomePage bool
		DisplayOrder   int
	}

	// Manufacturer is a brand products can be attached to.
	Manufacturer struct {
		Name         string
		Description  string
		Published    bool
		DisplayOrder int
	}

	// Product is a sellable catalog item.
	Product struct {
		SKU              string
		Name             string
		ShortDescription string
		CategoryName     string
		ManufacturerName string
		Price            float64
		StockQuantity    int
		Published        bool
	}

	// ActivityLogType is a localized label for an activity log entry.
	ActivityLogType struct {
		SystemKeyword string
		Name          string
		Enabled       bool
	}

	// SpecificationAttribute is a product attribute with its predefined options.
	SpecificationAttribute struct {
		Name         string
		DisplayOrder int
		Options      []string
	}
)

func (c *Country) TableName() string { return "countries" }
func (c *Country) Columns() []string {
	return []string{"name", "two_letter_iso_code", "three_letter_iso_code", "numeric_iso_code",
		"allows_billing", "allows_shipping", "subject_to_vat", "published", "display_order"}
}
func (c *Country) Row() database.Row {
	return database.Row{
		"name":                  c.Name,
		"two_letter_iso_code":   c.TwoLetterISOCode,
		"three_letter_iso_code": c.ThreeLetterISOCode,
		"numeric_iso_code":      c.NumericISOCode,
		"allows_billing":        c.AllowsBilling,
		"allows_shipping":       c.AllowsShipping,
		"subject_to_vat":        c.SubjectToVAT,
		"published":             c.Published,
		"display_order":         c.DisplayOrder,
	}
}

func (c *Category) TableName() string { return "categories" }
func (c *Category) Columns() []string {
	return []string{"name", "parent_name", "description", "published", "show_on_home_page", "display_order"}
}
func (c *Category) Row() database.Row {
	return database.Row{
		"name":              c.Name,
		"parent_name":       c.ParentName,
		"description":       c.Description,
		"published":         c.Published,
		"show_on_home_page": c.ShowOnHomePage,
		"display_order":     c.DisplayOrder,
	}
}

func (m *Manufacturer) TableName() string { return "manufacturers" }
func (m *Manufacturer) Columns() []string {
	return []string{"name", "description", "published", "display_order"}
}
func (m *Manufacturer) Row() database.Row {
	return database.Row{
		"name":          m.Name,
		"description":   m.Description,
		"published":     m.Published,
		"display_order": m.DisplayOrder,
	}
}

func (p *Product) TableName() string { return "products" }
func (p *Product) Columns() []string {
	return []string{"sku", "name", "short_description", "category_name", "manufacturer_name",
		"price", "stock_quantity", "published"}
}
func (p *Product) Row() database.Row {
	return database.Row{
		"sku":               p.SKU,
		"name":              p.Name,
		"short_description": p.ShortDescription,
		"category_name":     p.CategoryName,
		"manufacturer_name": p.ManufacturerName,
		"price":             p.Price,
		"stock_quantity":    p.StockQuantity,
		"published":         p.Published,
	}
}

func (a *ActivityLogType) TableName() string { return "activity_log_types" }
func (a *ActivityLogType) Columns() []string {
	return []string{"system_keyword", "name", "enabled"}
}
func (a *ActivityLogType) Row() database.Row {
	return database.Row{
		"system_keyword": a.SystemKeyword,
		"name":           a.Name,
		"enabled":        a.Enabled,
	}
}

func (s *SpecificationAttribute) TableName() string { return "specification_attributes" }
func (s *SpecificationAttribute) Columns() []string {
	return []string{"name", "display_order", "options"}
}
func (s *SpecificationAttribute) Row() database.Row {
	return database.Row{
		"name":          s.Name,
		"display_order": s.DisplayOrder,
		"options":       strings.Join(s.Options, ","),
	}
}

// ToSet converts records of one kind into a database set.
// It returns nil for an empty slice since there is no table name to take.
func ToSet[R Record](records []R) *database.Set {
	if len(records) == 0 {
		return nil
	}

	set := database.NewSet(records[0].TableName(), records[0].Columns()...)
	for _, r := range records {
		set.Add(r.Row())
	}

	return set
}
