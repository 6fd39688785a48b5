package mailstat

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/mailstat/internal/mailstat/conf"
)

var rootCmd = &cobra.Command{
	Use:   "mailstat",
	Short: "Activity and identity reports over a mail corpus database",
	Long: `mailstat reads a mail corpus from a local SQLite database and writes
CSV reports: per-month per-person sent/received activity, active-month
event counts, a global activity ranking, and a person table deduplicated
by canonicalized display name.`,
}

// Execute runs the root command. Errors are already printed by cobra.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	configFile string
	debug      bool

	dbPath    string
	outputDir string
	threshold int64
	actors    string
)

func init() {
	cobra.OnInitialize(initLog)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to the mail corpus sqlite database")
}

func initLog() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

// loadConfig merges the config file / environment with any flags the user
// set on cmd; flags win.
func loadConfig(cmd *cobra.Command) (*conf.Config, error) {
	cfg, err := conf.Load(configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") || cmd.InheritedFlags().Changed("db") {
		cfg.DBPath = dbPath
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}
	if cmd.Flags().Changed("actors") {
		cfg.Actors = actors
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}
