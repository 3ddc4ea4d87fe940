// Package seed builds the default catalog data and applies locale, edition and
// user supplied overrides to it before it is persisted.
package seed

import (
	log "github.com/sirupsen/logrus"

	"github.com/hellofresh/catalog-seeder/pkg/alterer"
)

// Editions
const (
	EditionFull    = "full"
	EditionMinimal = "minimal"
)

// Profile selects which flavour of seed data is produced.
type Profile struct {
	Locale  string
	Edition string
	Strict  bool
}

func (p Profile) options(collection string) []alterer.Option {
	opts := []alterer.Option{
		alterer.WithLogger(log.WithField("collection", collection)),
	}
	if p.Strict {
		opts = append(opts, alterer.Strict())
	}

	return opts
}

func (p Profile) minimal() bool {
	return p.Edition == EditionMinimal
}
