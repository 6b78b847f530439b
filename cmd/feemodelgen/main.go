// Package main provides feemodelgen, the offline model compiler. It turns
// CBOR model containers into a generated Go source file of statically
// checked model constructors.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "feemodelgen",
		Short:         "Compile CBOR fee model containers into Go constructors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(cmd.Flag("log-level").Value.String())
		if err != nil {
			return fmt.Errorf("bad log level: %w", err)
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	}
	root.AddCommand(buildGenerateCmd(), buildInspectCmd())
	return root
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "feemodelgen: %v\n", err)
		os.Exit(1)
	}
}
