package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newSubscribersCmd(load configLoader) *cobra.Command {
	var count bool
	cmd := &cobra.Command{
		Use:   "subscribers",
		Short: "List newsletter subscribers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			store, err := folio.NewStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			if count {
				n, err := store.CountSubscribers()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}

			subs, err := store.ListSubscribers()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMAIL\tSUBSCRIBED\tUNSUBSCRIBE")
			for _, s := range subs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Email, s.CreatedAt.Format("2006-01-02"),
					views.BuildURL(cfg.URL, "unsubscribe", s.Token))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of subscribers")
	return cmd
}
