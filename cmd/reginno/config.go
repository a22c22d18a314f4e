package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/reginno/internal/config"
)

var configInitForce bool

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Long: `The init command writes the default configuration, with comments, to
path (default: reginno.toml). An existing file is kept unless --force is
given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(args)
		},
	}
	initCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	rootCmd.AddCommand(cmd)
}

func runConfigShow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(cfg)
	}
	return cfg.Encode(os.Stdout)
}

func runConfigInit(args []string) error {
	path := "reginno.toml"
	if len(args) > 0 {
		path = args[0]
	}

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	printInfo("Wrote sample configuration to %s\n", path)
	return nil
}
