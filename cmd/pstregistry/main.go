package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "pstregistry",
		Short:         "Compliance registry for permissioned security tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (default: ./config.yaml or ./config/config.yaml)")

	root.AddCommand(serveCommand(&configPath))
	root.AddCommand(migrateCommand(&configPath))
	return root
}
