/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijuttt/showcase/internal/config"
	"github.com/ijuttt/showcase/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range theme.All {
				mark := " "
				if id == theme.Default {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-22s %s\n", mark, id, id.Slug())
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Prints the configuration after defaults, the config file, environment
variables and flags have been applied. The search paths are, in order:

  $` + config.EnvConfig + `
  $XDG_CONFIG_HOME/showcase/config.toml (or ~/.config/showcase/config.toml)
  /etc/showcase/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.cfgPath != "" {
				fmt.Fprintf(out, "# loaded from %s\n", opts.cfgPath)
			} else {
				fmt.Fprintln(out, "# built-in defaults")
			}
			return opts.cfg.Encode(out)
		},
	}
}
