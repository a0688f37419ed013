// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/app/client/config"
	"safetylog/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	log      *slog.Logger
	app      *client.App
	storeDir string
)

var rootCmd = &cobra.Command{
	Use:   "safetylog",
	Short: "Safetylog - incident logging for health, safety and environment",
	Long: `Safetylog keeps a local log of workplace HSE incidents.

Records are stored on this machine. Use the subcommands to log new
incidents, browse and update the log, and export it to CSV.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if storeDir != "" {
		os.Setenv("CONFIG_DIR", storeDir)
	}
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if app != nil {
		return app.Close()
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "data directory (default ~/.safetylog)")
}
