package config

import (
	"io"

	"github.com/BurntSushi/toml"
	wErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config-related defaults
const (
	DefaultConfigFileName = ".seeder.toml"
	DefaultLocale         = "en"
	DefaultEdition        = "full"
)

type (
	// Spec represents the global app configuration.
	Spec struct {
		// Locale selects the localized seed data, for example "en" or "de".
		Locale string
		// Edition selects the edition profile, "full" or "minimal".
		Edition string
		// Strict turns overrides that target missing records into errors.
		Strict bool
		// FakeProducts is the amount of generated demo products appended to the catalog.
		FakeProducts int
		// Entities are per collection overrides.
		Entities Entities
		// Settings are per settings type overrides.
		Settings []*SettingsOverride
	}

	// Entities are an array of collection overrides.
	Entities []*Entity

	// Entity represents the overrides for one seeded collection.
	Entity struct {
		// Name is the collection name, for example "countries".
		Name string
		// Remove lists the keys of the records to drop.
		Remove []string
		// Alter lists field changes for single records.
		Alter []*Alteration
	}

	// Alteration sets fields of the record identified by Key.
	Alteration struct {
		// Key identifies the record, for example an ISO code or a SKU.
		Key string
		// Set maps field names to their new values.
		Set map[string]interface{}
	}

	// SettingsOverride sets fields of the settings object named Name.
	SettingsOverride struct {
		// Name is the settings type name, for example "CatalogSettings".
		Name string
		// Set maps field names to their new values.
		Set map[string]interface{}
	}
)

// FindByName find an entity override by its collection name.
func (e Entities) FindByName(name string) *Entity {
	for _, entity := range e {
		if entity.Name == name {
			return entity
		}
	}

	return nil
}

// LoadFromFile loads seeder config from file
func LoadFromFile(configPath string) (*Spec, error) {
	if configPath == "" {
		return nil, wErrors.New("config file path can not be empty")
	}

	log.Debugf("Reading config from %s ...", configPath)
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetDefault("Locale", DefaultLocale)
	v.SetDefault("Edition", DefaultEdition)

	err := v.ReadInConfig()
	if err != nil {
		return nil, wErrors.Wrap(err, "could not read configurations")
	}

	cfgSpec := new(Spec)
	err = v.Unmarshal(cfgSpec)
	if err != nil {
		return nil, wErrors.Wrap(err, "could not unmarshal config file")
	}

	return cfgSpec, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Spec {
	return &Spec{
		Locale:  DefaultLocale,
		Edition: DefaultEdition,
	}
}

// WriteSample generates and writes sample config to a writer
func WriteSample(w io.Writer) error {
	e := toml.NewEncoder(w)
	return e.Encode(Spec{
		Locale:  DefaultLocale,
		Edition: DefaultEdition,
		Entities: Entities{
			{
				Name:   "countries",
				Remove: []string{"AQ"},
				Alter: []*Alteration{
					{Key: "DE", Set: map[string]interface{}{"DisplayOrder": 1}},
				},
			},
			{
				Name:   "products",
				Remove: []string{"GIFT-25"},
			},
		},
		Settings: []*SettingsOverride{
			{Name: "CatalogSettings", Set: map[string]interface{}{"ProductsPageSize": 12}},
		},
	})
}
