package command

import (
	"ncnews/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		return database.Migrate(a.cfg.DatabaseURL, a.logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
