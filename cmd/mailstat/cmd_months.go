package mailstat

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjzar/mailstat/internal/mailstat"
	"github.com/sjzar/mailstat/internal/mailstat/conf"
)

func init() {
	rootCmd.AddCommand(monthsCmd)
	monthsCmd.Flags().Int64VarP(&threshold, "threshold", "t", conf.DefaultThreshold, "minimum monthly event count; months at or below are dropped")
}

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Print the calendar months whose event count exceeds the threshold",
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

		months, err := app.ActiveMonths(cmd.Context())
		if err != nil {
			return err
		}
		for _, m := range months {
			fmt.Printf("%s\t%d\n", time.UnixMilli(m.Stamp).UTC().Format("2006-01"), m.Count)
		}
		return nil
	},
}
