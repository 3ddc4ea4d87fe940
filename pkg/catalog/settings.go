package catalog

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/hellofresh/catalog-seeder/pkg/database"
)

type (
	// StoreInformationSettings describe the storefront itself.
	StoreInformationSettings struct {
		StoreName         string
		StoreClosed       bool
		DefaultStoreTheme string
	}

	// CatalogSettings control catalog browsing.
	CatalogSettings struct {
		ProductsPageSize        int
		ShowManufacturerPartNo  bool
		AllowProductSorting     bool
		NewProductsNumber       int
		RecentlyViewedProducts  bool
		SearchPageProductsLimit int
	}

	// MediaSettings control picture sizes.
	MediaSettings struct {
		AvatarPictureSize   int
		ProductThumbSize    int
		CategoryThumbSize   int
		MaximumImageSize    int
		DefaultImageQuality int
	}

	// LocalizationSettings control languages and units.
	LocalizationSettings struct {
		DefaultLanguage   string
		CurrencyCode      string
		WeightUnit        string
		DimensionUnit     string
		UseImperialSystem bool
	}

	// SeoSettings control page titles and urls.
	SeoSettings struct {
		PageTitleSeparator string
		DefaultTitle       string
		GenerateSlugs      bool
	}
)

func (s *StoreInformationSettings) SettingsName() string { return "StoreInformationSettings" }
func (s *CatalogSettings) SettingsName() string          { return "CatalogSettings" }
func (s *MediaSettings) SettingsName() string            { return "MediaSettings" }
func (s *LocalizationSettings) SettingsName() string     { return "LocalizationSettings" }
func (s *SeoSettings) SettingsName() string              { return "SeoSettings" }

// SettingsNamer is the part of alterer.Settings the persistence side needs.
type SettingsNamer interface {
	SettingsName() string
}

// SettingsSet flattens settings into key/value rows, one per exported field,
// keyed as "<SettingsName>.<Field>". It returns nil when there are no settings.
func SettingsSet[S SettingsNamer](settings []S) *database.Set {
	if len(settings) == 0 {
		return nil
	}

	set := database.NewSet("settings", "name", "value")
	for _, s := range settings {
		v := reflect.Indirect(reflect.ValueOf(s))
		t := v.Type()

		names := make([]string, 0, t.NumField())
		values := make(map[string]interface{}, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			name := fmt.Sprintf("%s.%s", s.SettingsName(), field.Name)
			names = append(names, name)
			values[name] = v.Field(i).Interface()
		}
		sort.Strings(names)

		for _, name := range names {
			set.Add(database.Row{"name": name, "value": fmt.Sprint(values[name])})
		}
	}

	return set
}
