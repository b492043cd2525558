package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tagscope/internal/catalog"
)

type tagsOptions struct {
	top  int
	json bool
}

// tagsReport is the JSON shape of the tags command
type tagsReport struct {
	Top []catalog.TagStat `json:"top"`
	All []catalog.TagStat `json:"all"`
}

func newTagsCmd(a *app) *cobra.Command {
	opts := &tagsOptions{}

	cmd := &cobra.Command{
		Use:   "tags [source]",
		Short: "Print the tag ranking and the full tag list",
		Long: `Print the most frequent tags, most frequent first with ties broken
alphabetically, followed by every tag in alphabetical order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("top") {
				opts.top = a.cfg.TopTags
			}
			return a.runTags(cmd, a.source(args), opts)
		},
	}

	cmd.Flags().IntVar(&opts.top, "top", catalog.DefaultTopTags, "number of ranked tags")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")

	return cmd
}

func (a *app) runTags(cmd *cobra.Command, source string, opts *tagsOptions) error {
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", opts.top)
	}

	index := catalog.BuildTagIndex(a.fetch(cmd.Context(), source))
	report := tagsReport{
		Top: stats(index, catalog.TopTags(index, opts.top)),
		All: stats(index, catalog.AllTagsSorted(index)),
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "Top %d:\n", len(report.Top))
	for i, s := range report.Top {
		fmt.Fprintf(out, "  %d. %-24s %d\n", i+1, s.Tag, s.Count)
	}
	fmt.Fprintf(out, "\nAll tags (%d):\n", len(report.All))
	for _, s := range report.All {
		fmt.Fprintf(out, "  %-27s %d\n", s.Tag, s.Count)
	}
	return nil
}

func stats(index catalog.TagIndex, tags []string) []catalog.TagStat {
	out := make([]catalog.TagStat, len(tags))
	for i, tag := range tags {
		out[i] = catalog.TagStat{Tag: tag, Count: index.Count(tag)}
	}
	return out
}
