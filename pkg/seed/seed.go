package seed

import (
	"fmt"

	"github.com/icrowley/fake"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
	"github.com/hellofresh/catalog-seeder/pkg/catalog"
	"github.com/hellofresh/catalog-seeder/pkg/config"
	"github.com/hellofresh/catalog-seeder/pkg/database"
)

// fakeSeed keeps generated demo products stable between runs.
const fakeSeed = 20180101

// Catalog is the complete seed data set, ready to be persisted.
type Catalog struct {
	Countries               []*catalog.Country
	Categories              []*catalog.Category
	Manufacturers           []*catalog.Manufacturer
	Products                []*catalog.Product
	ActivityLogTypes        []*catalog.ActivityLogType
	SpecificationAttributes []*catalog.SpecificationAttribute
	Settings                []alterer.Settings
}

// ProfileFromConfig extracts the profile from the configuration.
func ProfileFromConfig(cfg *config.Spec) Profile {
	return Profile{Locale: cfg.Locale, Edition: cfg.Edition, Strict: cfg.Strict}
}

// Build produces every collection for the configured profile and applies the
// configured overrides on top.
func Build(cfg *config.Spec) (*Catalog, error) {
	p := ProfileFromConfig(cfg)
	logger := log.WithFields(log.Fields{"locale": p.Locale, "edition": p.Edition})
	logger.Debug("building catalog")

	var (
		c   = new(Catalog)
		err error
	)

	if c.Countries, err = Countries(p); err != nil {
		return nil, err
	}
	if c.Categories, err = Categories(p); err != nil {
		return nil, err
	}
	if c.Manufacturers, err = Manufacturers(p); err != nil {
		return nil, err
	}
	if c.Products, err = Products(p); err != nil {
		return nil, err
	}
	if c.ActivityLogTypes, err = ActivityLogTypes(p); err != nil {
		return nil, err
	}
	if c.SpecificationAttributes, err = SpecificationAttributes(p); err != nil {
		return nil, err
	}
	if c.Settings, err = DefaultSettings(p); err != nil {
		return nil, err
	}

	if cfg.FakeProducts > 0 {
		c.Products = append(c.Products, FakeProducts(cfg.FakeProducts, c.Categories, c.Manufacturers)...)
	}

	if err := c.applyOverrides(cfg, p); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"countries": len(c.Countries),
		"products":  len(c.Products),
	}).Debug("catalog built")

	return c, nil
}

// Sets converts the catalog into database sets, one per table.
func (c *Catalog) Sets() []*database.Set {
	sets := []*database.Set{
		catalog.ToSet(c.Countries),
		catalog.ToSet(c.Categories),
		catalog.ToSet(c.Manufacturers),
		catalog.ToSet(c.Products),
		catalog.ToSet(c.ActivityLogTypes),
		catalog.ToSet(c.SpecificationAttributes),
		catalog.SettingsSet(c.Settings),
	}

	nonEmpty := sets[:0]
	for _, s := range sets {
		if s != nil {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return nonEmpty
}

// FakeProducts generates n demo products spread over the given categories and manufacturers.
func FakeProducts(n int, categories []*catalog.Category, manufacturers []*catalog.Manufacturer) []*catalog.Product {
	fake.Seed(fakeSeed)

	products := make([]*catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		product := &catalog.Product{
			SKU:              fmt.Sprintf("FAKE-%04d", i+1),
			Name:             fake.ProductName(),
			ShortDescription: fake.Sentence(),
			Price:            float64(10+(i*7)%490) + 0.99,
			StockQuantity:    100,
			Published:        true,
		}
		if len(categories) > 0 {
			product.CategoryName = categories[i%len(categories)].Name
		}
		if len(manufacturers) > 0 {
			product.ManufacturerName = manufacturers[i%len(manufacturers)].Name
		}

		products = append(products, product)
	}

	return products
}

func (c *Catalog) applyOverrides(cfg *config.Spec, p Profile) error {
	var err error
	for _, entity := range cfg.Entities {
		switch entity.Name {
		case "countries":
			err = multierr.Append(err, override(&c.Countries, countryKey, entity, p))
		case "categories":
			err = multierr.Append(err, override(&c.Categories, categoryKey, entity, p))
		case "manufacturers":
			err = multierr.Append(err, override(&c.Manufacturers, manufacturerKey, entity, p))
		case "products":
			err = multierr.Append(err, override(&c.Products, productKey, entity, p))
		case "activity_log_types":
			err = multierr.Append(err, override(&c.ActivityLogTypes, activityLogKey, entity, p))
		case "specification_attributes":
			err = multierr.Append(err, override(&c.SpecificationAttributes, specificationAttributeKey, entity, p))
		default:
			err = multierr.Append(err, errors.Errorf("unknown collection %q", entity.Name))
		}
	}

	if len(cfg.Settings) > 0 {
		err = multierr.Append(err, c.overrideSettings(cfg.Settings, p))
	}

	return errors.Wrap(err, "could not apply overrides")
}

func override[T any](records *[]*T, keyOf func(*T) string, entity *config.Entity, p Profile) error {
	idx, err := alterer.NewEntities(records, keyOf, p.options(entity.Name)...)
	if err != nil {
		return errors.Wrapf(err, "could not index %s", entity.Name)
	}

	for _, alteration := range entity.Alter {
		alteration := alteration
		idx.Alter(alteration.Key, func(record *T) {
			err = multierr.Append(err, decode(alteration.Set, record))
		})
	}

	for _, key := range entity.Remove {
		idx.Remove(key)
	}

	return errors.Wrapf(multierr.Append(err, idx.Err()), "could not override %s", entity.Name)
}

func (c *Catalog) overrideSettings(overrides []*config.SettingsOverride, p Profile) error {
	a, err := alterer.NewSettings(c.Settings, p.options("settings")...)
	if err != nil {
		return errors.Wrap(err, "could not index settings")
	}

	for _, o := range overrides {
		o := o
		a.AlterNamed(o.Name, func(s alterer.Settings) {
			err = multierr.Append(err, decode(o.Set, s))
		})
	}

	return errors.Wrap(multierr.Append(err, a.Err()), "could not override settings")
}

// decode writes the given fields onto target, leaving every other field untouched.
func decode(fields map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(fields)
}
