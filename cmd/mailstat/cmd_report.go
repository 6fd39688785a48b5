package mailstat

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/mailstat/internal/mailstat"
	"github.com/sjzar/mailstat/internal/mailstat/conf"
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&outputDir, "output", "o", conf.DefaultOutputDir, "directory for the CSV report files")
	reportCmd.Flags().Int64VarP(&threshold, "threshold", "t", conf.DefaultThreshold, "minimum monthly event count; months at or below are dropped")
	reportCmd.Flags().StringVar(&actors, "actors", "", "comma separated actor ids for monthly_activity.csv (default: all)")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full pipeline and write the CSV report",
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

		if err := app.Report(cmd.Context()); err != nil {
			log.Err(err).Msg("report failed")
			return err
		}
		return nil
	},
}
