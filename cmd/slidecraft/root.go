package main

import (
	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "slidecraft",
		Short:         "Compile natural-language text into slide plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	loadConfig := func() (*config.Config, error) {
		return config.Load(configFlag)
	}

	rootCmd.AddCommand(newCompileCommand(loadConfig))
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}
