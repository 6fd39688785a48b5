package mailstat

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjzar/mailstat/internal/mailstat"
)

func init() {
	rootCmd.AddCommand(personsCmd)
}

var personsCmd = &cobra.Command{
	Use:   "persons",
	Short: "Resolve and print the deduplicated person table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		app, err := mailstat.New(cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		persons, err := app.ResolvePersons(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range persons {
			fmt.Printf("%d\t%d\t%s\n", p.RawID, p.UnifiedID, p.CanonicalName)
		}
		return nil
	},
}
