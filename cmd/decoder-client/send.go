package main

import (
	"context"
	"io"

	"github.com/oasislabs/decoder-client/client"
	"github.com/oasislabs/decoder-client/log"
	"github.com/oasislabs/decoder-client/metrics"
	"github.com/oasislabs/decoder-client/payload"
	"github.com/oasislabs/decoder-client/sender"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func runSend(app *App, out io.Writer) error {
	ctx, _ := log.NewRequestID(context.Background())

	source, err := app.Config.ABIConfig.NewSource()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	publisher, err := metrics.New(&app.Config.MetricsConfig, registry, app.Logger)
	if err != nil {
		return err
	}

	s := sender.New(&sender.Deps{
		Logger: app.Logger,
		Builder: &payload.Builder{
			Logger:       app.Logger,
			ContractPath: app.Config.RequestConfig.ContractPath,
			Txn:          app.Config.RequestConfig.Txn,
			Source:       source,
		},
		Client: client.NewClient(&client.Services{
			Logger:     app.Logger,
			Registerer: registry,
		}, app.Config.ClientConfig.Props()),
	})

	err = s.Run(ctx, out)

	// a failed push is logged by the publisher and does not change
	// the outcome of the run
	_ = publisher.Publish(ctx)
	return err
}

func bindSend(cmd *cobra.Command, app *App) {
	run := func(cmd *cobra.Command, args []string) error {
		return runSend(app, cmd.OutOrStdout())
	}

	var sendCmd = &cobra.Command{
		Use:   "send",
		Short: "send the decode request",
		Long: "Posts the contract, the ABI and the transaction hash to the " +
			"decoder and prints the status code and body of the response. " +
			"This is also what runs when no subcommand is given.",
		Args: cobra.NoArgs,
		RunE: run,
	}

	cmd.RunE = run
	cmd.AddCommand(sendCmd)
}
