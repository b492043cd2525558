package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tagscope/internal/domain"
	"tagscope/internal/ui/views"
)

type listOptions struct {
	search string
	tags   []string
	json   bool
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [source]",
		Short: "Print the projects matching a search and tags",
		Long: `Print the projects that contain the search text in their url, org or
tags and carry every selected tag.

Examples:
  # Projects tagged both ml and infra
  tagscope list -t ml -t infra

  # Search a remote catalog and emit JSON
  tagscope list https://example.com/data.json -s acme --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, a.source(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive search text")
	cmd.Flags().StringArrayVarP(&opts.tags, "tag", "t", nil, "required tag (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, source string, opts *listOptions) error {
	engine := a.newEngine()
	engine.SetDataset(a.fetch(cmd.Context(), source))
	engine.SetSearchTerm(opts.search)
	for _, tag := range opts.tags {
		if !engine.IsSelected(tag) {
			engine.ToggleTag(tag)
		}
	}

	view := engine.Snapshot()
	out := cmd.OutOrStdout()

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view.Projects)
	}

	if !view.Empty() {
		fmt.Fprintln(out, projectTable(view.Projects))
	}
	fmt.Fprintln(out, views.CountLine(len(view.Projects), view.Total))
	return nil
}

func projectTable(projects []domain.Project) string {
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{p.URL, p.Org, strconv.Itoa(p.Stars), p.Released, strings.Join(p.Tags, ", ")}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("URL", "ORG", "STARS", "RELEASED", "TAGS").
		Rows(rows...).
		String()
}

