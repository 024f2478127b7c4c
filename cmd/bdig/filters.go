package main

import (
	"github.com/spf13/cobra"

	"github.com/bdig/bdig/internal/query"
)

// filterFlags holds the search filters shared by the search and extract
// commands.
type filterFlags struct {
	domainExact    string
	domainContains string
	pathExact      string
	pathContains   string
	useOr          bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.domainExact, "domain-exact", "", "Match the owning domain exactly")
	cmd.Flags().StringVar(&f.domainContains, "domain-contains", "", "Match domains containing this substring")
	cmd.Flags().StringVar(&f.pathExact, "path-exact", "", "Match the relative path exactly")
	cmd.Flags().StringVar(&f.pathContains, "path-contains", "", "Match relative paths containing this substring")
	cmd.Flags().BoolVar(&f.useOr, "or", false, "Combine filters with OR instead of AND")
}

// params turns the flags into query parameters. A filter counts as present
// when its flag was passed on the command line, so an explicitly empty value
// still filters (for example --path-exact "" matches files at the backup's
// logical root).
func (f *filterFlags) params(cmd *cobra.Command) query.Params {
	params := query.Params{UseOr: f.useOr}

	if cmd.Flags().Changed("domain-exact") {
		params.DomainExact = &f.domainExact
	}
	if cmd.Flags().Changed("domain-contains") {
		params.DomainContains = &f.domainContains
	}
	if cmd.Flags().Changed("path-exact") {
		params.PathExact = &f.pathExact
	}
	if cmd.Flags().Changed("path-contains") {
		params.PathContains = &f.pathContains
	}

	return params
}
