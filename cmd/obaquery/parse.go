package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obaquery/internal/filter"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <filter>",
		Short:   "Print the structure of a search filter",
		Example: `  obaquery parse "(&(cn=Jo*)(|(mail=*acme*)))"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to parse %q", args[0])
			}
			a.logger.Debug("filter parsed", "filter", f.String())
			printTree(cmd.OutOrStdout(), f, 0)
			return nil
		},
	}
}

// printTree writes one line per node, children indented by two spaces.
func printTree(w io.Writer, f *filter.Filter, depth int) {
	indent := strings.Repeat("  ", depth)

	switch f.Type {
	case filter.FilterAnd, filter.FilterOr:
		fmt.Fprintf(w, "%s%s\n", indent, f.Type)
		for _, c := range f.Children {
			printTree(w, c, depth+1)
		}
	case filter.FilterNot:
		fmt.Fprintf(w, "%s%s\n", indent, f.Type)
		printTree(w, f.Child, depth+1)
	case filter.FilterPresent:
		fmt.Fprintf(w, "%s%s %s\n", indent, f.Type, f.Attribute)
	case filter.FilterSubstring:
		sf := f.Substring
		var parts []string
		if len(sf.Initial) > 0 {
			parts = append(parts, fmt.Sprintf("initial=%q", sf.Initial))
		}
		for _, a := range sf.Any {
			parts = append(parts, fmt.Sprintf("any=%q", a))
		}
		if len(sf.Final) > 0 {
			parts = append(parts, fmt.Sprintf("final=%q", sf.Final))
		}
		fmt.Fprintf(w, "%s%s %s %s\n", indent, f.Type, f.Attribute, strings.Join(parts, " "))
	default:
		fmt.Fprintf(w, "%s%s %s %q\n", indent, f.Type, f.Attribute, f.Value)
	}
}
