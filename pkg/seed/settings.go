package seed

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
)

// DefaultSettings returns one instance of every settings type with the profile defaults applied.
func DefaultSettings(p Profile) ([]alterer.Settings, error) {
	settings := []alterer.Settings{
		&catalog.StoreInformationSettings{
			StoreName:         "Your store name",
			DefaultStoreTheme: "DefaultClean",
		},
		&catalog.CatalogSettings{
			ProductsPageSize:        6,
			AllowProductSorting:     true,
			NewProductsNumber:       6,
			RecentlyViewedProducts:  true,
			SearchPageProductsLimit: 20,
		},
		&catalog.MediaSettings{
			AvatarPictureSize:   120,
			ProductThumbSize:    415,
			CategoryThumbSize:   450,
			MaximumImageSize:    1980,
			DefaultImageQuality: 80,
		},
		&catalog.LocalizationSettings{
			DefaultLanguage:   "en",
			CurrencyCode:      "USD",
			WeightUnit:        "lb",
			DimensionUnit:     "inches",
			UseImperialSystem: true,
		},
		&catalog.SeoSettings{
			PageTitleSeparator: ". ",
			DefaultTitle:       "Your store",
			GenerateSlugs:      true,
		},
	}

	a, err := alterer.NewSettings(settings, p.options("settings")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index settings")
	}

	if p.Locale == "de" {
		alterer.AlterSettings(a, func(s *catalog.LocalizationSettings) {
			s.DefaultLanguage = "de"
			s.CurrencyCode = "EUR"
			s.WeightUnit = "kg"
			s.DimensionUnit = "cm"
			s.UseImperialSystem = false
		})
		alterer.AlterSettings(a, func(s *catalog.SeoSettings) {
			s.DefaultTitle = "Ihr Shop"
		})
	}

	if p.minimal() {
		alterer.AlterSettings(a, func(s *catalog.CatalogSettings) {
			s.NewProductsNumber = 0
			s.RecentlyViewedProducts = false
		})
	}

	return settings, errors.Wrap(a.Err(), "could not alter settings")
}
