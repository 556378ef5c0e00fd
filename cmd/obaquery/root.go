package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KilimcininKorOglu/obaquery/internal/config"
	"github.com/KilimcininKorOglu/obaquery/internal/logging"
)

// EnvPrefix is prepended to environment variables bound to flags,
// e.g. OBAQUERY_DIRECTORY_BASE_DN.
const EnvPrefix = "OBAQUERY"

// Flag names double as viper keys.
const (
	flagConfig      = "config"
	flagDebug       = "debug"
	flagLogLevel    = "log.level"
	flagLogFormat   = "log.format"
	flagLogOutput   = "log.output"
	flagBaseDN      = "directory.base-dn"
	flagScope       = "directory.scope"
	flagDeref       = "directory.deref-aliases"
	flagSizeLimit   = "directory.size-limit"
	flagTimeLimit   = "directory.time-limit"
	flagTypesOnly   = "directory.types-only"
	flagDefaultAttr = "directory.attributes"
)

// Command annotations consulted before configuration is loaded.
const (
	// annotationSkipValidate marks commands that report configuration
	// errors themselves.
	annotationSkipValidate = "obaquery/skip-validate"
	// annotationNoConfig marks commands that never read configuration.
	annotationNoConfig = "obaquery/no-config"
)

// app carries state shared by subcommands for one invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger logging.Logger
}

func newApp() *app {
	return &app{v: viper.New()}
}

// close releases the logger output, if one was opened.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "obaquery",
		Short:         "Build and inspect LDAP search filters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoConfig] == "true" {
				return nil
			}
			return a.init(cmd.Annotations[annotationSkipValidate] == "true")
		},
	}

	flags := root.PersistentFlags()
	flags.String(flagConfig, "", "Path to a YAML configuration file")
	flags.Bool(flagDebug, false, `Shorthand for --log.level=debug`)
	flags.String(flagLogLevel, "", "Log level: debug, info, warn, error")
	flags.String(flagLogFormat, "", "Log format: text, json")
	flags.String(flagLogOutput, "", "Log output: stdout, stderr or an absolute file path")
	flags.String(flagBaseDN, "", `Search base, e.g. "dc=example,dc=com"`)
	flags.String(flagScope, "", "Search scope: base, one, sub")
	flags.String(flagDeref, "", "Alias dereferencing: never, searching, finding, always")
	flags.Int(flagSizeLimit, 0, "Maximum entries to return (0 = no limit)")
	flags.Duration(flagTimeLimit, 0, "Maximum search time (0 = no limit)")
	flags.Bool(flagTypesOnly, false, "Return attribute types only")
	flags.StringSlice(flagDefaultAttr, nil, "Attributes always added to the selection")

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		a.v.BindPFlag(f.Name, f) //nolint:errcheck
	})

	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newParseCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// init loads configuration and creates the logger. With skipValidate
// an unusable log output falls back to a no-op logger.
func (a *app) init(skipValidate bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if !skipValidate {
		if errs := config.ValidateConfig(cfg); len(errs) > 0 {
			return errors.Wrap(errs[0], "invalid configuration")
		}
	}

	l, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		if !skipValidate {
			return err
		}
		l = logging.NewNop()
	}

	a.cfg = cfg
	a.logger = l.WithRequestID(logging.GenerateRequestID())
	return nil
}

// loadConfig reads the configuration file, if any, and applies flag and
// environment overrides on top of it.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := a.v.GetString(flagConfig); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if a.v.IsSet(flagLogLevel) {
		cfg.Logging.Level = a.v.GetString(flagLogLevel)
	}
	if a.v.GetBool(flagDebug) {
		cfg.Logging.Level = "debug"
	}
	if a.v.IsSet(flagLogFormat) {
		cfg.Logging.Format = a.v.GetString(flagLogFormat)
	}
	if a.v.IsSet(flagLogOutput) {
		cfg.Logging.Output = a.v.GetString(flagLogOutput)
	}

	d := &cfg.Directory
	if a.v.IsSet(flagBaseDN) {
		d.BaseDN = a.v.GetString(flagBaseDN)
	}
	if a.v.IsSet(flagScope) {
		d.Scope = a.v.GetString(flagScope)
	}
	if a.v.IsSet(flagDeref) {
		d.DerefAliases = a.v.GetString(flagDeref)
	}
	if a.v.IsSet(flagSizeLimit) {
		d.SizeLimit = a.v.GetInt(flagSizeLimit)
	}
	if a.v.IsSet(flagTimeLimit) {
		d.TimeLimit = config.Duration(a.v.GetDuration(flagTimeLimit))
	}
	if a.v.IsSet(flagTypesOnly) {
		d.TypesOnly = a.v.GetBool(flagTypesOnly)
	}
	if a.v.IsSet(flagDefaultAttr) {
		d.Attributes = a.v.GetStringSlice(flagDefaultAttr)
	}

	return cfg, nil
}
