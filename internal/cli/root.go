// Package cli holds the solidarmap command line: serve runs the API, seed fills the
// lookup tables.
package cli

import (
	"fmt"
	"os"

	"solidarmap/internal/config"
	"solidarmap/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg config.Config
	log *logrus.Logger
)

// flagKeys maps persistent flags to the configuration keys they override.
var flagKeys = map[string]string{
	"port":       "APP_PORT",
	"db-driver":  "DB_DRIVER",
	"dsn":        "DATABASE_DSN",
	"log-level":  "LOG_LEVEL",
	"log-format": "LOG_FORMAT",
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "solidarmap",
	Short: "SolidarMap - crisis relief coordination API",
	Long: `SolidarMap connects people who need help with volunteers and organisations
during a crisis: aid requests, ratings, locations and messages over a REST API.

Configuration is read from the environment (and a .env file when present).
Flags override the environment.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "", "HTTP listen address, e.g. :8080 (APP_PORT)")
	flags.String("db-driver", "", "Database driver: postgres or sqlite (DB_DRIVER)")
	flags.String("dsn", "", "Database connection string (DATABASE_DSN)")
	flags.String("log-level", "", "Log level (LOG_LEVEL)")
	flags.String("log-format", "", "Log format: json or text (LOG_FORMAT)")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v, err := config.New()
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err = config.Load(v)
	if err != nil {
		return err
	}
	log = logger.New(cfg.Log.Level, cfg.Log.Format)
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.Root().PersistentFlags().Lookup(name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}
