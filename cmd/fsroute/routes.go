package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nounder/fsroute"
	"github.com/nounder/fsroute/config"
	"github.com/nounder/fsroute/filesystem"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes discovered in the routes directory",
	Long: `List the routes discovered in the routes directory.

Prints one line per route file with its handle kind and the dispatch pattern
it registers under. Modules are not loaded, so this works for +server routes
whose handlers live in application code.`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	files, err := filesystem.NewLister().List(ctx, cfg.Routes.Dir)
	if err != nil {
		return fmt.Errorf("list routes dir: %w", err)
	}

	for _, rel := range files {
		route, ok := fsroute.ParseRoute(rel)
		if !ok {
			continue
		}

		kind := "page"
		if _, isServer := route.Handle.(fsroute.ServerHandle); isServer {
			kind = "server"
		}

		fmt.Printf("%-8s%-32s%s\n", kind, fsroute.DispatchPattern(route.Prefix), rel)
	}

	return nil
}
