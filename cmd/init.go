package cmd

import (
	"bufio"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hellofresh/catalog-seeder/pkg/config"
)

// NewInitCmd creates a new init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a fresh config file",
		Run: func(cmd *cobra.Command, args []string) {
			RunInit()
		},
	}

	return cmd
}

// RunInit runs the init command
func RunInit() {
	log.Infof("Initializing %s", config.DefaultConfigFileName)

	_, err := os.Stat(config.DefaultConfigFileName)
	if !os.IsNotExist(err) {
		log.Fatal("Config file already exists, refusing to overwrite")
	}

	f, err := os.Create(config.DefaultConfigFileName)
	failOnError(err, "Could not create the file")
	defer f.Close()

	w := bufio.NewWriter(f)
	failOnError(config.WriteSample(w), "Could not encode config")
	failOnError(w.Flush(), "Could not write config")

	log.Infof("Created %s!", config.DefaultConfigFileName)
}
