package seed

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
)

func specificationAttributeKey(s *catalog.SpecificationAttribute) string { return s.Name }

// SpecificationAttributes returns the seeded specification attribute taxonomy.
func SpecificationAttributes(p Profile) ([]*catalog.SpecificationAttribute, error) {
	attributes := []*catalog.SpecificationAttribute{
		{Name: "Screensize", DisplayOrder: 1, Options: []string{"13.0''", "13.3''", "14.0''", "15.0''", "15.6''"}},
		{Name: "CPU Type", DisplayOrder: 2, Options: []string{"Intel Core i5", "Intel Core i7", "AMD Ryzen 7"}},
		{Name: "Memory", DisplayOrder: 3, Options: []string{"4 GB", "8 GB", "16 GB"}},
		{Name: "Hard drive", DisplayOrder: 5, Options: []string{"128 GB", "500 GB", "1 TB"}},
		{Name: "Color", DisplayOrder: 1, Options: []string{"Grey", "Red", "Blue"}},
	}

	idx, err := alterer.NewEntities(&attributes, specificationAttributeKey, p.options("specification_attributes")...)
	if err != nil {
		return nil, errors.Wrap(err, "could not index specification attributes")
	}

	if p.Locale == "de" {
		idx.
			Alter("Screensize", func(s *catalog.SpecificationAttribute) { s.Name = "Bildschirmgröße" }).
			Alter("Memory", func(s *catalog.SpecificationAttribute) { s.Name = "Arbeitsspeicher" }).
			Alter("Hard drive", func(s *catalog.SpecificationAttribute) { s.Name = "Festplatte" }).
			Alter("Color", func(s *catalog.SpecificationAttribute) {
				s.Name = "Farbe"
				s.Options = []string{"Grau", "Rot", "Blau"}
			})
	}

	if p.minimal() {
		idx.Remove("Hard drive")
	}

	return attributes, errors.Wrap(idx.Err(), "could not alter specification attributes")
}
