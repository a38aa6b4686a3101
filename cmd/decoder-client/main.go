package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oasislabs/decoder-client/config"
	"github.com/oasislabs/decoder-client/log"
	"github.com/spf13/cobra"
)

// App holds the resolved configuration and the services shared
// by all commands
type App struct {
	Config Config
	Logger log.Logger
}

func newRootCmd(app *App) (*cobra.Command, error) {
	var rootCmd = &cobra.Command{
		Use:   "decoder-client",
		Short: "send a decode request to a transaction decoder",
		Long: "Reads a contract source file and an ABI, posts them together " +
			"with a transaction hash to a decoder and prints the response.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	parser, err := config.Generate(rootCmd, app.Config.Binders()...)
	if err != nil {
		return nil, err
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := parser.Configure(); err != nil {
			return err
		}

		app.Logger = log.New(&app.Config.LogConfig)
		app.Logger.Debug(context.Background(), "configuration loaded", &app.Config)
		return nil
	}

	bindSend(rootCmd, app)
	bindMethods(rootCmd, app)
	return rootCmd, nil
}

func main() {
	rootCmd, err := newRootCmd(&App{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up command line arguments", err.Error())
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}
}
