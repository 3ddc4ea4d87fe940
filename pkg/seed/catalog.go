package seed

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
)

func categoryKey(c *catalog.Category) string         { return c.Name }
func manufacturerKey(m *catalog.Manufacturer) string { return m.Name }
func productKey(p *catalog.Product) string           { return p.SKU }

// Categories returns the seeded category tree, parents first.
func Categories(p Profile) ([]*catalog.Category, error) {
	categories := []*catalog.Category{
		{Name: "Computers", Description: "Desktops, notebooks and software", Published: true, ShowOnHomePage: true, DisplayOrder: 1},
		{Name: "Desktops", ParentName: "Computers", Published: true, DisplayOrder: 1},
		{Name: "Notebooks", ParentName: "Computers", Published: true, DisplayOrder: 2},
		{Name: "Software", ParentName: "Computers", Published: true, DisplayOrder: 3},
		{Name: "Electronics", Description: "Cameras and phones", Published: true, ShowOnHomePage: true, DisplayOrder: 2},
		{Name: "Camera & photo", ParentName: "Electronics", Published: true, DisplayOrder: 1},
		{Name: "Cell phones", ParentName: "Electronics", Published: true, DisplayOrder: 2},
		{Name: "Apparel", Published: true, ShowOnHomePage: true, DisplayOrder: 3},
		{Name: "Shoes", ParentName: "Apparel", Published: true, DisplayOrder: 1},
		{Name: "Clothing", ParentName: "Apparel", Published: true, DisplayOrder: 2},
		{Name: "Books", Published: true, DisplayOrder: 4},
		{Name: "Gift Cards", Published: true, DisplayOrder: 5},
	}

	idx, err := alterer.NewEntities(&categories, categoryKey, p.options("categories")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index categories")
	}

	if p.minimal() {
		idx.Remove("Gift Cards").Remove("Software")
	}

	return categories, errors.Wrap(idx.Err(), "could not alter categories")
}

// Manufacturers returns the seeded manufacturers.
func Manufacturers(p Profile) ([]*catalog.Manufacturer, error) {
	manufacturers := []*catalog.Manufacturer{
		{Name: "Apple", Published: true, DisplayOrder: 1},
		{Name: "HP", Published: true, DisplayOrder: 2},
		{Name: "Nike", Published: true, DisplayOrder: 3},
		{Name: "Lenovo", Published: true, DisplayOrder: 4},
		{Name: "Nikon", Published: true, DisplayOrder: 5},
		{Name: "Penguin Books", Published: true, DisplayOrder: 6},
	}

	idx, err := alterer.NewEntities(&manufacturers, manufacturerKey, p.options("manufacturers")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index manufacturers")
	}

	if p.Locale == "de" {
		idx.Alter("Penguin Books", func(m *catalog.Manufacturer) {
			m.Description = "Bücher und Hörbücher"
		})
	}

	if p.minimal() {
		idx.Remove("Penguin Books")
	}

	return manufacturers, errors.Wrap(idx.Err(), "could not alter manufacturers")
}

// Products returns the seeded products.
func Products(p Profile) ([]*catalog.Product, error) {
	products := []*catalog.Product{
		{SKU: "COMP-CUST-01", Name: "Build your own computer", CategoryName: "Desktops", ManufacturerName: "HP", Price: 1200, StockQuantity: 10000, Published: true},
		{SKU: "AP-MBP-13", Name: "Apple MacBook Pro 13-inch", CategoryName: "Notebooks", ManufacturerName: "Apple", Price: 1800, StockQuantity: 10000, Published: true},
		{SKU: "LE-IC-15", Name: "Lenovo IdeaCentre 600", CategoryName: "Desktops", ManufacturerName: "Lenovo", Price: 500, StockQuantity: 10000, Published: true},
		{SKU: "WIN-PRO-11", Name: "Windows 11 Pro", CategoryName: "Software", Price: 199, StockQuantity: 10000, Published: true},
		{SKU: "NK-D5500", Name: "Nikon D5500 DSLR", CategoryName: "Camera & photo", ManufacturerName: "Nikon", Price: 670, StockQuantity: 10000, Published: true},
		{SKU: "AP-IP-15", Name: "Apple iPhone 15", CategoryName: "Cell phones", ManufacturerName: "Apple", Price: 799, StockQuantity: 10000, Published: true},
		{SKU: "NK-ZOOM", Name: "Nike Zoom Pegasus", CategoryName: "Shoes", ManufacturerName: "Nike", Price: 120, StockQuantity: 10000, Published: true},
		{SKU: "NK-TEE-01", Name: "Nike Running Tee", CategoryName: "Clothing", ManufacturerName: "Nike", Price: 25, StockQuantity: 10000, Published: true},
		{SKU: "BK-PRIDE", Name: "Pride and Prejudice", CategoryName: "Books", ManufacturerName: "Penguin Books", Price: 24, StockQuantity: 10000, Published: true},
		{SKU: "GIFT-25", Name: "$25 Virtual Gift Card", CategoryName: "Gift Cards", Price: 25, StockQuantity: 10000, Published: true},
		{SKU: "GIFT-100", Name: "$100 Physical Gift Card", CategoryName: "Gift Cards", Price: 100, StockQuantity: 10000, Published: true},
	}

	idx, err := alterer.NewEntities(&products, productKey, p.options("products")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index products")
	}

	if p.Locale == "de" {
		idx.
			Alter("GIFT-25", func(pr *catalog.Product) { pr.Name = "25 € Geschenkgutschein (digital)" }).
			Alter("GIFT-100", func(pr *catalog.Product) { pr.Name = "100 € Geschenkgutschein" }).
			Alter("BK-PRIDE", func(pr *catalog.Product) { pr.Name = "Stolz und Vorurteil" })
	}

	if p.minimal() {
		idx.
			Remove("GIFT-25").
			Remove("GIFT-100").
			Remove("WIN-PRO-11").
			Remove("BK-PRIDE")
	}

	return products, errors.Wrap(idx.Err(), "could not alter products")
}
