package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/assettrack/internal/application"
	"github.com/JonMunkholm/assettrack/internal/config"
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/logging"
)

// app holds what the subcommands share once the root command has run.
type app struct {
	envFile string
	svc     *core.Service
}

// newRootCmd builds the command tree. The returned func closes the store
// opened by whichever subcommand ran; it is safe to call when none did.
func newRootCmd() (*cobra.Command, func() error) {
	a := &app{}

	root := &cobra.Command{
		Use:           "assetctl",
		Short:         "Import and inspect IT asset records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file loaded before the configuration (missing is fine)")

	root.AddCommand(
		newImportCmd(a),
		newInspectCmd(a),
		newListCmd(a),
		newEntitiesCmd(a),
		newTemplateCmd(a),
	)
	return root, a.close
}

// open loads the configuration and the store. Variables already set in the
// environment take precedence over the env file.
func (a *app) open(cmd *cobra.Command) error {
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format))

	svc, err := application.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.svc = svc
	return nil
}

func (a *app) close() error {
	if a.svc == nil {
		return nil
	}
	err := a.svc.Close()
	a.svc = nil
	return err
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
