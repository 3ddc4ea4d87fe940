package seed

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
)

var germanActivityLogNames = map[string]string{
	"AddNewCategory":          "Neue Kategorie hinzugefügt",
	"AddNewManufacturer":      "Neuer Hersteller hinzugefügt",
	"AddNewProduct":           "Neues Produkt hinzugefügt",
	"DeleteCategory":          "Kategorie gelöscht",
	"DeleteManufacturer":      "Hersteller gelöscht",
	"DeleteProduct":           "Produkt gelöscht",
	"EditCategory":            "Kategorie bearbeitet",
	"EditManufacturer":        "Hersteller bearbeitet",
	"EditProduct":             "Produkt bearbeitet",
	"EditSettings":            "Einstellungen bearbeitet",
	"PublicStore.Login":       "Shop: Anmeldung",
	"PublicStore.Logout":      "Shop: Abmeldung",
	"PublicStore.PlaceOrder":  "Shop: Bestellung aufgegeben",
	"PublicStore.ViewProduct": "Shop: Produkt angesehen",
}

func activityLogKey(a *catalog.ActivityLogType) string { return a.SystemKeyword }

// ActivityLogTypes returns the activity log labels for the profile locale.
func ActivityLogTypes(p Profile) ([]*catalog.ActivityLogType, error) {
	types := []*catalog.ActivityLogType{
		{SystemKeyword: "AddNewCategory", Name: "Add a new category", Enabled: true},
		{SystemKeyword: "AddNewManufacturer", Name: "Add a new manufacturer", Enabled: true},
		{SystemKeyword: "AddNewProduct", Name: "Add a new product", Enabled: true},
		{SystemKeyword: "DeleteCategory", Name: "Delete category", Enabled: true},
		{SystemKeyword: "DeleteManufacturer", Name: "Delete manufacturer", Enabled: true},
		{SystemKeyword: "DeleteProduct", Name: "Delete product", Enabled: true},
		{SystemKeyword: "EditCategory", Name: "Edit category", Enabled: true},
		{SystemKeyword: "EditManufacturer", Name: "Edit manufacturer", Enabled: true},
		{SystemKeyword: "EditProduct", Name: "Edit product", Enabled: true},
		{SystemKeyword: "EditSettings", Name: "Edit setting(s)", Enabled: true},
		{SystemKeyword: "PublicStore.Login", Name: "Public store. Login"},
		{SystemKeyword: "PublicStore.Logout", Name: "Public store. Logout"},
		{SystemKeyword: "PublicStore.PlaceOrder", Name: "Public store. Place an order"},
		{SystemKeyword: "PublicStore.ViewProduct", Name: "Public store. View a product"},
	}

	idx, err := alterer.NewEntities(&types, activityLogKey, p.options("activity_log_types")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index activity log types")
	}

	if p.Locale == "de" {
		for keyword, name := range germanActivityLogNames {
			name := name
			idx.Alter(keyword, func(a *catalog.ActivityLogType) { a.Name = name })
		}
	}

	if p.minimal() {
		idx.
			Remove("PublicStore.Login").
			Remove("PublicStore.Logout").
			Remove("PublicStore.ViewProduct")
	}

	return types, errors.Wrap(idx.Err(), "could not alter activity log types")
}
