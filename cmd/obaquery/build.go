package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/obaquery/internal/filter"
	"github.com/KilimcininKorOglu/obaquery/internal/ldap"
)

// Output formats for the build command.
const (
	outputFilter = "filter"
	outputText   = "text"
	outputJSON   = "json"
	outputYAML   = "yaml"
)

type buildOptions struct {
	selects  []string
	wheres   []string
	orWheres []string
	output   string
	verify   bool
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a search filter from conditions",
		Long: `Build a search filter from conditions.

Conditions are written field:operator[:value]. Operators:
  ` + strings.Join(filter.Operators(), "  ") + `

Values are escaped before they are embedded in the filter.`,
		Example: `  obaquery build --where cn:starts_with:Jo --or-where mail:contains:acme
  obaquery build -s cn,mail -w uid:=:alice --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(a, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.selects, "select", "s", nil, "Attributes to return")
	f.StringArrayVarP(&opts.wheres, "where", "w", nil, "AND condition, field:operator[:value] (repeatable)")
	f.StringArrayVarP(&opts.orWheres, "or-where", "o", nil, "OR condition, field:operator[:value] (repeatable)")
	f.StringVar(&opts.output, "output", outputFilter, "Output: filter, text, json, yaml")
	f.BoolVar(&opts.verify, "verify", false, "Check the filter with an RFC 4515 compiler")

	return cmd
}

func runBuild(a *app, opts *buildOptions, w io.Writer) error {
	if len(opts.wheres) == 0 && len(opts.orWheres) == 0 {
		return errors.New("at least one --where or --or-where condition is required")
	}

	b := filter.NewBuilder().Select(opts.selects...)

	for _, s := range opts.wheres {
		field, op, value, err := parseCondition(s)
		if err != nil {
			return err
		}
		if _, err := b.Where(field, op, value); err != nil {
			return errors.Wrapf(err, "--where %q", s)
		}
	}
	for _, s := range opts.orWheres {
		field, op, value, err := parseCondition(s)
		if err != nil {
			return err
		}
		if _, err := b.OrWhere(field, op, value); err != nil {
			return errors.Wrapf(err, "--or-where %q", s)
		}
	}

	req, err := ldap.NewSearchRequest(a.cfg.Directory, b)
	if err != nil {
		return errors.Wrap(err, "failed to compose search request")
	}

	a.logger.Debug("filter built",
		"filter", req.Filter,
		"and_conditions", len(b.Wheres()),
		"or_conditions", len(b.OrWheres()),
	)

	if opts.verify {
		if err := req.Verify(); err != nil {
			return errors.Wrapf(err, "filter %s failed verification", req.Filter)
		}
	}

	return writeRequest(w, req, opts.output)
}

// parseCondition splits field:operator[:value]. The value may itself
// contain colons.
func parseCondition(s string) (field, op, value string, err error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", "", errors.Errorf("invalid condition %q, expected field:operator[:value]", s)
	}
	field = strings.TrimSpace(parts[0])
	op = parts[1]
	if len(parts) == 3 {
		value = parts[2]
	}
	return field, op, value, nil
}

func writeRequest(w io.Writer, req *ldap.SearchRequest, output string) error {
	switch output {
	case outputFilter:
		_, err := fmt.Fprintln(w, req.Filter)
		return err
	case outputText:
		fmt.Fprintf(w, "Base DN:       %s\n", req.BaseObject)
		fmt.Fprintf(w, "Scope:         %s\n", req.Scope)
		fmt.Fprintf(w, "Deref aliases: %s\n", req.DerefAliases)
		fmt.Fprintf(w, "Size limit:    %d\n", req.SizeLimit)
		fmt.Fprintf(w, "Time limit:    %d\n", req.TimeLimit)
		fmt.Fprintf(w, "Types only:    %v\n", req.TypesOnly)
		fmt.Fprintf(w, "Filter:        %s\n", req.Filter)
		_, err := fmt.Fprintf(w, "Attributes:    %s\n", strings.Join(req.Attributes, ", "))
		return err
	case outputJSON:
		data, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		data, err := yaml.Marshal(req)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output %q, expected filter, text, json or yaml", output)
	}
}
