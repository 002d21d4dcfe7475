package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
)

func newPostsCmd(load configLoader) *cobra.Command {
	var drafts bool
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts with their resolved slugs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			loader := content.Loader{
				PostsDir: cfg.PostsDir(),
				PagesDir: cfg.PagesDir(),
				Logger:   zerolog.New(cmd.ErrOrStderr()).Level(zerolog.WarnLevel),
			}
			posts, err := loader.LoadPosts()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tPUBLISHED\tREADING\tTITLE")
			for _, p := range posts {
				if p.Meta.Draft && !drafts {
					continue
				}
				title := p.Meta.Title
				if p.Meta.Draft {
					title += " (draft)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Slug(), p.Meta.PublishedAt, p.Meta.ReadingTime.Text, title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&drafts, "drafts", false, "include drafts")
	return cmd
}
