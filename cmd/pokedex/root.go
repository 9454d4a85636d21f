package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/kerbaras/pokedex/pkg/app"
	"github.com/kerbaras/pokedex/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config

	apiFlag         string
	maxFlag         int
	dbFlag          string
	logFileFlag     string
	logLevelFlag    string
	metricsAddrFlag string
	timeoutFlag     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A terminal Pokédex",
	Long:  "Browse, filter and favorite Pokémon from PokeAPI with a TUI and CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		s, err := openSession(cmd, true)
		cobra.CheckErr(err)
		defer s.Close()

		a := app.NewApp(s.ctrl)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", defaultConfigPath(), "config file (YAML)")
	flags.StringVar(&apiFlag, "api", config.DefaultAPIBase, "PokeAPI base URL")
	flags.IntVar(&maxFlag, "max", config.DefaultMax, "maximum number of records to load")
	flags.StringVar(&dbFlag, "db", "", "favorites database path")
	flags.StringVar(&logFileFlag, "log-file", "", "log file used by the TUI")
	flags.StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&metricsAddrFlag, "metrics-addr", "", "serve Prometheus metrics on this address")
	flags.DurationVar(&timeoutFlag, "timeout", 30*time.Second, "per-request timeout")

	// Add all subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(favCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pokedex.yaml"
	}
	return filepath.Join(home, ".pokedex", "config.yaml")
}

// loadConfig reads the configuration and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api") {
		loaded.APIBase = apiFlag
	}
	if flags.Changed("max") {
		loaded.Max = maxFlag
	}
	if flags.Changed("db") {
		loaded.DBPath = dbFlag
	}
	if flags.Changed("log-file") {
		loaded.LogFile = logFileFlag
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevelFlag
	}
	if flags.Changed("metrics-addr") {
		loaded.MetricsAddr = metricsAddrFlag
	}
	if flags.Changed("timeout") {
		loaded.RequestTimeout = timeoutFlag
	}

	cfg = loaded
	return cfg.Validate()
}
