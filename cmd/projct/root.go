package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bethropolis/projct/internal/app"
	"github.com/bethropolis/projct/internal/config"
)

// newRootCmd creates the projct command and its init subcommand.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projct [path]",
		Short: "Dump a directory tree and its text files into one file",
		Long: `projct writes an ASCII tree of a directory followed by the contents of
every text file in it. Paths excluded by .gitignore files are left out,
and nested .gitignore files can re-include what their parents exclude.

Settings are read from projct.toml (see 'projct init'); flags win over it.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      config.Version,
		SilenceUsage: true,
		RunE:         runDump,
	}
	cmd.SetVersionTemplate("projct version {{.Version}}\n")

	cmd.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Config file path")
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newInitCmd())
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, loadErr := config.Load(configPath)
	if len(args) > 0 {
		cfg.General.Path = args[0]
	}
	if err := config.ApplyFlags(cfg, cmd.Flags()); err != nil {
		return err
	}

	application := app.New(cfg, cmd.ErrOrStderr())
	if loadErr != nil {
		application.Logger().Warn("Failed to load config: %v. Using defaults.", loadErr)
	}
	return application.Run()
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
