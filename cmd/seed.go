package cmd

import (
	"context"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hellofresh/catalog-seeder/pkg/seed"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
	"github.com/hellofresh/catalog-seeder/pkg/storage/engine"

	// imports storage drivers
	_ "github.com/hellofresh/catalog-seeder/pkg/storage/mysql"
	_ "github.com/hellofresh/catalog-seeder/pkg/storage/postgres"
	_ "github.com/hellofresh/catalog-seeder/pkg/storage/query"
)

type (
	// SeedOptions represents the command options
	SeedOptions struct {
		to           string
		locale       string
		edition      string
		strict       bool
		fakeProducts int
		concurrency  int
		batchSize    int
		writeOpts    connOpts
	}
	connOpts struct {
		timeout         string
		maxConnLifetime string
		maxConns        int
		maxIdleConns    int
	}
)

// NewSeedCmd creates a new seed command
func NewSeedCmd() *cobra.Command {
	opts := new(SeedOptions)
	cmd := &cobra.Command{
		Use:     "seed",
		Short:   "Builds the catalog seed data and writes it to a database",
		PreRunE: initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSeed(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.to, "to", "t", "os://stdout/", "Database to write to (default writes INSERT statements to stdOut)")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "Locale of the seed data, overrides the config file")
	cmd.PersistentFlags().StringVar(&opts.edition, "edition", "", "Edition of the seed data (full or minimal), overrides the config file")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Fail when an override targets a record that does not exist")
	cmd.PersistentFlags().IntVar(&opts.fakeProducts, "fake-products", 0, "Number of generated demo products to add")
	cmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", runtime.NumCPU(), "Sets the amount of tables to be written concurrently, default to number of available cpus")
	cmd.PersistentFlags().IntVar(&opts.batchSize, "batch-size", storage.DefaultBatchSize, "Sets the amount of rows written per statement")
	cmd.PersistentFlags().StringVar(&opts.writeOpts.timeout, "write-timeout", "30s", "Sets the timeout for all write operations")
	cmd.PersistentFlags().StringVar(&opts.writeOpts.maxConnLifetime, "write-conn-lifetime", "0", "Sets the maximum amount of time a connection may be reused on the write database")
	cmd.PersistentFlags().IntVar(&opts.writeOpts.maxConns, "write-max-conns", 5, "Sets the maximum number of open connections to the write database")
	cmd.PersistentFlags().IntVar(&opts.writeOpts.maxIdleConns, "write-max-idle-conns", 0, "Sets the maximum number of connections in the idle connection pool for the write database")
	return cmd
}

// RunSeed is the handler for the seed command.
func RunSeed(cmd *cobra.Command, opts *SeedOptions) error {
	writeTimeout, err := time.ParseDuration(opts.writeOpts.timeout)
	failOnError(err, "Failed to parse write timeout duration")

	writeMaxConnLifetime, err := time.ParseDuration(opts.writeOpts.maxConnLifetime)
	failOnError(err, "Failed to parse the connection lifetime duration")

	flags := cmd.Flags()
	if flags.Changed("locale") {
		globalConfig.Locale = opts.locale
	}
	if flags.Changed("edition") {
		globalConfig.Edition = opts.edition
	}
	if flags.Changed("strict") {
		globalConfig.Strict = opts.strict
	}
	if flags.Changed("fake-products") {
		globalConfig.FakeProducts = opts.fakeProducts
	}

	catalog, err := seed.Build(globalConfig)
	failOnError(err, "Error building the catalog")

	target, err := storage.NewStore(storage.ConnOpts{
		DSN:             opts.to,
		Timeout:         writeTimeout,
		MaxConnLifetime: writeMaxConnLifetime,
		MaxConns:        opts.writeOpts.maxConns,
		MaxIdleConns:    opts.writeOpts.maxIdleConns,
		BatchSize:       opts.batchSize,
	})
	failOnError(err, "Error creating store")
	defer target.Close()

	log.WithFields(log.Fields{
		"locale":  globalConfig.Locale,
		"edition": globalConfig.Edition,
	}).Info("Seeding...")

	start := time.Now()
	failOnError(engine.New(target).Seed(context.Background(), catalog.Sets(), opts.concurrency), "Error while seeding")

	log.WithField("total_time", time.Since(start)).Info("Done!")

	return nil
}
