package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quornian/envy/internal/model"
)

// EnvPrefix is the prefix of the environment variables that configure envy.
const EnvPrefix = "ENVY"

// Configuration keys. Each is a flag name and, upper-cased with '-' replaced
// by '_' and prefixed by [EnvPrefix], an environment variable.
const (
	KeyRegex        = "regex"
	KeyIgnoreCase   = "ignore-case"
	KeySearch       = "search"
	KeyOnlyMatching = "only-matching"
	KeyMissing      = "missing"
	KeyColor        = "color"
	KeyColors       = "colors"
	KeySeparators   = "sep"
	KeyVerbose      = "verbose"
)

// Config is the configuration of a run.
type Config struct {
	// Pattern selects variables by name.
	Pattern string
	// Regex makes Pattern a regular expression instead of a glob.
	Regex bool
	// IgnoreCase makes regular expressions case insensitive.
	IgnoreCase bool
	// Search is the value search pattern; empty disables the search.
	Search string
	// OnlyMatching elides segments not matching Search.
	OnlyMatching bool
	// CheckPaths flags segments naming missing paths.
	CheckPaths bool
	// Color decides when to colorize.
	Color model.ColorMode
	// Colors is the list of style overrides.
	Colors string
	// Separators overrides the OS default separator characters when not
	// empty.
	Separators string
	// Verbose enables debug logs.
	Verbose bool
}

// RegisterFlags defines the flags of every configuration key.
func RegisterFlags(flags *pflag.FlagSet) {
	color := model.ColorAuto

	flags.BoolP(KeyRegex, "r", false, "Match PATTERN as a regular expression instead of a glob")
	flags.BoolP(KeyIgnoreCase, "i", false, "Match regular expressions case insensitively")
	flags.StringP(KeySearch, "s", "", "Highlight values matching a regular expression, hiding variables without matches")
	flags.BoolP(KeyOnlyMatching, "o", false, "Elide value segments not matching --search")
	flags.BoolP(KeyMissing, "m", false, "Flag value segments naming paths that do not exist")
	flags.VarP(&color, KeyColor, "c", "Colorize output: always, never or auto")
	flags.Lookup(KeyColor).NoOptDefVal = string(model.ColorAlways)
	flags.String(KeyColors, "", "Style overrides, e.g. \"var=1;34:mat=4\" (keys: var val mat unm mis spe sep)")
	flags.String(KeySeparators, "", "Characters separating the parts of a value (default OS specific)")
	flags.BoolP(KeyVerbose, "v", false, "Print debug logs to stderr")
}

// NewViper creates a viper instance layering the given flags over the
// environment: a flag passed on the command line wins over its environment
// variable, which wins over the flag default.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return v, nil
}

// Load reads the configuration from viper and the positional arguments. It
// returns an error if the color mode is not valid.
func Load(v *viper.Viper, args []string) (Config, error) {
	cfg := Config{
		Regex:        v.GetBool(KeyRegex),
		IgnoreCase:   v.GetBool(KeyIgnoreCase),
		Search:       v.GetString(KeySearch),
		OnlyMatching: v.GetBool(KeyOnlyMatching),
		CheckPaths:   v.GetBool(KeyMissing),
		Colors:       v.GetString(KeyColors),
		Separators:   v.GetString(KeySeparators),
		Verbose:      v.GetBool(KeyVerbose),
	}

	if len(args) > 0 {
		cfg.Pattern = args[0]
	}

	if err := cfg.Color.Set(v.GetString(KeyColor)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyColor, err)
	}

	return cfg, nil
}
