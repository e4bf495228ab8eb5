package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nounder/fsroute/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "fsroute",
	Short:   "Filesystem-convention HTTP router",
	Long: `fsroute serves a directory of route files as an HTTP API.

Files named +page.{ts,tsx,js,jsx} and +server.{ts,tsx,js,jsx} terminate
routes; directories named [param], [[param]], and [...param] become dynamic,
optional, and rest parameters.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if cf, _ := cmd.Flags().GetString("config"); cf != "" {
			files = []string{cf}
		}

		cfg, err := config.Load(files, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("routes-dir", "", "routes directory path (default: ./routes, env: FSROUTE_ROUTES_DIR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
