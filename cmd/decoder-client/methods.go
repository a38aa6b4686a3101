package main

import (
	"context"
	"fmt"
	"io"

	"github.com/oasislabs/decoder-client/abi"
	"github.com/oasislabs/decoder-client/errors"
	"github.com/spf13/cobra"
)

func runMethods(app *App, out io.Writer) error {
	ctx := context.Background()

	source, err := app.Config.ABIConfig.NewSource()
	if err != nil {
		return err
	}

	descriptors, err := source.Load(ctx)
	if err != nil {
		return err
	}

	functions, err := abi.Functions(descriptors)
	if err != nil {
		return errors.New(errors.ErrDeserializeABI, err)
	}

	for _, function := range functions {
		if _, err := fmt.Fprintf(out, "%s %s\n", function.SelectorHex(), function.Signature()); err != nil {
			return err
		}
	}

	return nil
}

func bindMethods(cmd *cobra.Command, app *App) {
	var methodsCmd = &cobra.Command{
		Use:   "methods",
		Short: "list the functions of the ABI",
		Long: "Prints the 4 byte selector and the signature of every " +
			"function in the configured ABI, one per line.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethods(app, cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(methodsCmd)
}
