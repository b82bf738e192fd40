package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/waterbill/internal/client/client"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "waterbill-cli",
		Short:         "Water meter readings, bills and reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.connect()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.config.ServerEndpointAddr, "server", "a", app.config.ServerEndpointAddr, "gRPC server address")
	flags.StringVar(&app.config.TokenDir, "token-dir", app.config.TokenDir, "directory holding the access token")
	flags.DurationVar(&app.config.RequestTimeout, "timeout", app.config.RequestTimeout, "per-request timeout")
	// read earlier by config.LoadConfig; declared so cobra accepts it
	flags.StringVarP(&configFile, "config", "c", "", "path to JSON config file")

	root.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		registerCmd(app),
		readingsCmd(app),
		billsCmd(app),
		reportCmd(app),
	)
	return root
}

// Execute runs the CLI and prints errors in a readable form.
func Execute(ctx context.Context, app *App) error {
	root := NewRootCommand(app)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", client.Describe(err))
	}
	return err
}
