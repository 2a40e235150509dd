package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/atomicstack/datepop/internal/app"
	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Dates   Dates
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Dates holds the date flags as they were given, before parsing.
type Dates struct {
	Selected string
	Min      string
	Max      string
}

const (
	envDate         = "DATEPOP_DATE"
	envMin          = "DATEPOP_MIN"
	envMax          = "DATEPOP_MAX"
	envStrictRange  = "DATEPOP_STRICT_RANGE"
	envShowFooter   = "DATEPOP_FOOTER"
	envTrace        = "DATEPOP_TRACE"
	envLogFile      = "DATEPOP_LOG_FILE"
	envConfigFile   = "DATEPOP_CONFIG"
	envPrintInitial = "DATEPOP_PRINT_INITIAL"
)

// Loader binds the CLI flags to a flag set and resolves them against the
// environment and an optional config file. Precedence is flag, then
// environment, then file, then default.
type Loader struct {
	fs  *pflag.FlagSet
	env map[string]string

	date         *string
	min          *string
	max          *string
	strictRange  *bool
	footer       *bool
	trace        *bool
	logFile      *string
	configFile   *string
	printInitial *bool
}

// Bind registers the flags on fs with environment-derived defaults.
func Bind(fs *pflag.FlagSet, environ []string) *Loader {
	env := parseEnv(environ)
	return &Loader{
		fs:           fs,
		env:          env,
		date:         fs.String("date", envOrDefault(env, envDate, ""), "initial date as YYYY-MM-DD (defaults to today)"),
		min:          fs.String("min", envOrDefault(env, envMin, ""), "earliest selectable date, inclusive"),
		max:          fs.String("max", envOrDefault(env, envMax, ""), "latest selectable date, inclusive"),
		strictRange:  fs.Bool("strict-range", envOrBool(env, envStrictRange, false), "refuse calendar clicks outside the range"),
		footer:       fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:        fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:      fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		configFile:   fs.String("config", envOrDefault(env, envConfigFile, ""), "optional config file (yaml, toml or json)"),
		printInitial: fs.Bool("print-initial", envOrBool(env, envPrintInitial, false), "print the date on exit even without a commit"),
	}
}

// Load resolves the parsed flags into a Config. args is recorded verbatim
// for tracing.
func (l *Loader) Load(args []string) (Config, error) {
	file, err := l.readFile()
	if err != nil {
		return Config{}, err
	}
	r := resolver{fs: l.fs, env: l.env, file: file}

	dates := Dates{
		Selected: r.str("date", envDate, *l.date),
		Min:      r.str("min", envMin, *l.min),
		Max:      r.str("max", envMax, *l.max),
	}
	strict := r.boolean("strict-range", envStrictRange, *l.strictRange)
	footer := r.boolean("footer", envShowFooter, *l.footer)
	trace := r.boolean("trace", envTrace, *l.trace)
	logFile := r.str("log-file", envLogFile, *l.logFile)
	printInitial := r.boolean("print-initial", envPrintInitial, *l.printInitial)

	errs := errors.M{}
	selected, err := parseOptional("date", dates.Selected)
	errs.Append(err)
	lo, err := parseOptional("min", dates.Min)
	errs.Append(err)
	hi, err := parseOptional("max", dates.Max)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Selected:     selected,
			Min:          lo,
			Max:          hi,
			StrictRange:  strict,
			ShowFooter:   footer,
			PrintInitial: printInitial,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Dates: dates,
		Flags: map[string]string{
			"date":         dates.Selected,
			"min":          dates.Min,
			"max":          dates.Max,
			"strictRange":  strconv.FormatBool(strict),
			"footer":       strconv.FormatBool(footer),
			"trace":        strconv.FormatBool(trace),
			"logFile":      logFile,
			"config":       *l.configFile,
			"printInitial": strconv.FormatBool(printInitial),
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

func (l *Loader) readFile() (*viper.Viper, error) {
	path := strings.TrimSpace(*l.configFile)
	if path == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

type resolver struct {
	fs   *pflag.FlagSet
	env  map[string]string
	file *viper.Viper
}

// fromFile reports whether the file supplies name: only when neither the
// command line nor a non-blank environment variable did.
func (r resolver) fromFile(name, envKey string) bool {
	if r.file == nil || r.fs.Changed(name) {
		return false
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		return false
	}
	return r.file.IsSet(name)
}

func (r resolver) str(name, envKey, current string) string {
	if r.fromFile(name, envKey) {
		return r.file.GetString(name)
	}
	return current
}

func (r resolver) boolean(name, envKey string, current bool) bool {
	if r.fromFile(name, envKey) {
		return r.file.GetBool(name)
	}
	return current
}

func parseOptional(flag, text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	t, err := calendar.Parse(text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --%s: %w", flag, err)
	}
	return t, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("datepop", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	loader := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return loader.Load(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks relationships between options that parse individually.
func Validate(cfg Config) error {
	errs := errors.M{}
	lo, hi := cfg.App.Min, cfg.App.Max
	if !lo.IsZero() && !hi.IsZero() && lo.After(hi) {
		errs.Append(fmt.Errorf("min %s is after max %s", calendar.Format(lo), calendar.Format(hi)))
	}
	if cfg.Logging.Trace && strings.HasSuffix(cfg.Logging.FilePath, string(os.PathSeparator)) {
		errs.Append(fmt.Errorf("log file %q names a directory", cfg.Logging.FilePath))
	}
	return errs.Err()
}
