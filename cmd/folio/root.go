package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "folio",
		Short: "folio - a personal website built with Go, Echo, and templ",
		Long: `folio serves a blog read from markdown files, standalone pages,
a newsletter signup and a now playing indicator.

Configuration comes from folio.yaml (see --config) and FOLIO_* environment
variables, which take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "folio.yaml", "config file")

	load := func() (folio.SiteConfig, error) {
		return folio.LoadConfig(cfgFile)
	}

	root.AddCommand(
		newServeCmd(load),
		newNewCmd(),
		newPostsCmd(load),
		newSubscribersCmd(load),
		&cobra.Command{
			Use:   "version",
			Short: "Print the folio version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
			},
		},
	)
	return root
}

type configLoader func() (folio.SiteConfig, error)
