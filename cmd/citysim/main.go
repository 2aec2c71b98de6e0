package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/citysim/internal/server"
	"github.com/ChicagoDave/citysim/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citysim",
		Short: "Procedural city generator and resident simulation",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Init()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// projectArg returns the optional project directory argument.
func projectArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a city and print its scene as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(projectArg(args))
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a city spec and the city it generates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(projectArg(args))
		},
	}
}

func simulateCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Run the resident simulation headless and print an occupancy summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(projectArg(args), ticks)
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 6000, "number of simulation ticks")
	return cmd
}

func previewCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview [project-path]",
		Short: "Render the density map, sites and roads to a PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPreview(projectArg(args), out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "city.png", "output PNG path")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve the city and stream the live simulation over websocket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			srv := server.New(projectArg(args), port)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
