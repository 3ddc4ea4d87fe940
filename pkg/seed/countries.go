package seed

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
)

func countryKey(c *catalog.Country) string { return c.TwoLetterISOCode }

// Countries returns the seeded countries for the profile.
func Countries(p Profile) ([]*catalog.Country, error) {
	countries := []*catalog.Country{
		{Name: "United States", TwoLetterISOCode: "US", ThreeLetterISOCode: "USA", NumericISOCode: 840, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 1},
		{Name: "Canada", TwoLetterISOCode: "CA", ThreeLetterISOCode: "CAN", NumericISOCode: 124, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Argentina", TwoLetterISOCode: "AR", ThreeLetterISOCode: "ARG", NumericISOCode: 32, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Australia", TwoLetterISOCode: "AU", ThreeLetterISOCode: "AUS", NumericISOCode: 36, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Austria", TwoLetterISOCode: "AT", ThreeLetterISOCode: "AUT", NumericISOCode: 40, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Belgium", TwoLetterISOCode: "BE", ThreeLetterISOCode: "BEL", NumericISOCode: 56, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Brazil", TwoLetterISOCode: "BR", ThreeLetterISOCode: "BRA", NumericISOCode: 76, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "China", TwoLetterISOCode: "CN", ThreeLetterISOCode: "CHN", NumericISOCode: 156, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Denmark", TwoLetterISOCode: "DK", ThreeLetterISOCode: "DNK", NumericISOCode: 208, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "France", TwoLetterISOCode: "FR", ThreeLetterISOCode: "FRA", NumericISOCode: 250, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Germany", TwoLetterISOCode: "DE", ThreeLetterISOCode: "DEU", NumericISOCode: 276, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "India", TwoLetterISOCode: "IN", ThreeLetterISOCode: "IND", NumericISOCode: 356, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Italy", TwoLetterISOCode: "IT", ThreeLetterISOCode: "ITA", NumericISOCode: 380, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Japan", TwoLetterISOCode: "JP", ThreeLetterISOCode: "JPN", NumericISOCode: 392, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Netherlands", TwoLetterISOCode: "NL", ThreeLetterISOCode: "NLD", NumericISOCode: 528, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Spain", TwoLetterISOCode: "ES", ThreeLetterISOCode: "ESP", NumericISOCode: 724, AllowsBilling: true, AllowsShipping: true, SubjectToVAT: true, Published: true, DisplayOrder: 100},
		{Name: "Switzerland", TwoLetterISOCode: "CH", ThreeLetterISOCode: "CHE", NumericISOCode: 756, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "United Kingdom", TwoLetterISOCode: "GB", ThreeLetterISOCode: "GBR", NumericISOCode: 826, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Antarctica", TwoLetterISOCode: "AQ", ThreeLetterISOCode: "ATA", NumericISOCode: 10, Published: true, DisplayOrder: 100},
		{Name: "United States Minor Outlying Islands", TwoLetterISOCode: "UM", ThreeLetterISOCode: "UMI", NumericISOCode: 581, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
	}

	idx, err := alterer.NewEntities(&countries, countryKey, p.options("countries")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index countries")
	}

	if p.Locale == "de" {
		idx.
			Alter("US", func(c *catalog.Country) { c.DisplayOrder = 100 }).
			Alter("DE", func(c *catalog.Country) { c.DisplayOrder = 1 }).
			Alter("AT", func(c *catalog.Country) { c.DisplayOrder = 2 }).
			Alter("CH", func(c *catalog.Country) { c.DisplayOrder = 3 })
	}

	if p.minimal() {
		idx.Remove("AQ").Remove("UM")
	}

	return countries, errors.Wrap(idx.Err(), "could not alter countries")
}
