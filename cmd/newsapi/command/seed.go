package command

import (
	"ncnews/database/seed"

	"github.com/spf13/cobra"
)

var fixturesFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop, recreate and populate the database",
	Long: `Drop every table, apply the schema and insert fixtures.

Without --fixtures the embedded development data set is used.

Examples:
  newsapi seed
  newsapi seed --fixtures ./fixtures/demo.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadFixtures()
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		return seed.Run(cmd.Context(), a.db, a.cfg.DatabaseURL, data, a.logger)
	},
}

func init() {
	seedCmd.Flags().StringVar(&fixturesFile, "fixtures", "", "YAML fixtures file (default: embedded development data)")
	rootCmd.AddCommand(seedCmd)
}

func loadFixtures() (*seed.Data, error) {
	if fixturesFile == "" {
		return seed.Development()
	}
	return seed.LoadFile(fixturesFile)
}
