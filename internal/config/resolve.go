// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/xml2json/pkg/types"
)

// Recognised keys.
const (
	KeyMaxIntValue         = "converter.max.int.value"
	KeyMaxLongValue        = "converter.max.long.value"
	KeyScoreDataType       = "converter.score.data.type"
	KeyMatchSummaryEnabled = "feature.match.summary.enabled"
	KeyOverrideSecondScore = "override.second.match.score"
	KeyFixedSecondScore    = "fixed.second.match.score"

	// MappingPrefix starts every field rename key, e.g.
	// field.mapping.MatchDetails.Entity=Name.
	MappingPrefix = "field.mapping."

	envPrefix = "XML2JSON"
)

// ConfigError reports a configuration value that could not be used.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Source is the layered key-value source Settings are resolved from.
type Source struct {
	v     *viper.Viper
	props *properties.Properties
}

// NewSource layers props (may be nil) over the defaults and under the
// environment.
func NewSource(props *properties.Properties) (*Source, error) {
	// Keys are dotted names, not paths.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))

	d := types.DefaultSettings()
	v.SetDefault(KeyMaxIntValue, strconv.FormatInt(d.MaxIntValue, 10))
	v.SetDefault(KeyMaxLongValue, strconv.FormatInt(d.MaxLongValue, 10))
	v.SetDefault(KeyScoreDataType, string(d.ScoreDataType))
	v.SetDefault(KeyMatchSummaryEnabled, strconv.FormatBool(d.MatchSummaryEnabled))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if props == nil {
		props = properties.NewProperties()
	}
	values := make(map[string]any, props.Len())
	for _, k := range props.Keys() {
		if strings.HasPrefix(k, MappingPrefix) {
			continue
		}
		values[k], _ = props.Get(k)
	}
	if err := v.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("merging properties: %w", err)
	}

	return &Source{v: v, props: props}, nil
}

// BindFlag lets a command-line flag override key when the flag is set.
func (s *Source) BindFlag(key string, flag *pflag.Flag) error {
	return s.v.BindPFlag(key, flag)
}

// Get returns the raw value for key and whether any layer set it.
func (s *Source) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// FieldMappings returns every field.mapping.* entry, keyed by the path after
// the prefix, with case preserved.
func (s *Source) FieldMappings() map[string]string {
	out := make(map[string]string)
	for _, k := range s.props.Keys() {
		if path, ok := strings.CutPrefix(k, MappingPrefix); ok && path != "" {
			out[path], _ = s.props.Get(k)
		}
	}
	return out
}

// Options controls Resolve.
type Options struct {
	// Strict turns malformed values into a *ConfigError instead of a
	// logged fallback to the default.
	Strict bool

	// Logger receives fallback warnings. Nil discards them.
	Logger *slog.Logger
}

// Resolve builds Settings from src. In the default lenient mode it never
// fails: malformed values fall back to their defaults with a warning.
func Resolve(src *Source, opts Options) (types.Settings, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := types.DefaultSettings()
	var problems []error
	fallback := func(key, value string, err error) {
		problems = append(problems, &ConfigError{Key: key, Value: value, Err: err})
		logger.Warn("invalid config value, using default", "key", key, "value", value, "err", err)
	}

	if raw, ok := src.Get(KeyMaxIntValue); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32); err != nil {
			fallback(KeyMaxIntValue, raw, err)
		} else {
			s.MaxIntValue = n
		}
	}

	if raw, ok := src.Get(KeyMaxLongValue); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err != nil {
			fallback(KeyMaxLongValue, raw, err)
		} else {
			s.MaxLongValue = n
		}
	}

	if raw, ok := src.Get(KeyScoreDataType); ok {
		if t, valid := types.ParseScoreDataType(raw); valid {
			s.ScoreDataType = t
		} else {
			fallback(KeyScoreDataType, raw, errors.New("want integer or long"))
		}
	}

	if raw, ok := src.Get(KeyMatchSummaryEnabled); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err != nil {
			fallback(KeyMatchSummaryEnabled, raw, err)
		} else {
			s.MatchSummaryEnabled = b
		}
	}

	if raw, ok := src.Get(KeyOverrideSecondScore); ok {
		s.OverrideSecondMatchScore = raw
	}

	if raw, ok := src.Get(KeyFixedSecondScore); ok {
		if b, err := parseFixedToggle(raw); err != nil {
			fallback(KeyFixedSecondScore, raw, err)
		} else {
			s.FixedSecondMatch = b
		}
	}

	for path, name := range src.FieldMappings() {
		s.FieldMappings[path] = name
	}
	if _, ok := s.FieldMappings[types.DefaultScoreMapping]; !ok {
		s.FieldMappings[types.DefaultScoreMapping] = "Score"
	}

	if opts.Strict && len(problems) > 0 {
		return types.Settings{}, errors.Join(problems...)
	}
	return s, nil
}

// parseFixedToggle accepts a boolean, the legacy literal "40" (true), or an
// empty value (false).
func parseFixedToggle(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return false, nil
	case types.FixedSecondMatchScore:
		return true, nil
	}
	return strconv.ParseBool(raw)
}

// Open builds a Source from the properties file at path, or from DefaultFile
// in the working directory when path is empty and the file exists. It also
// returns the file actually used, empty when none was.
func Open(path string) (*Source, string, error) {
	var (
		props *properties.Properties
		used  string
		err   error
	)
	if path != "" {
		props, err = LoadFile(path)
		used = path
	} else {
		props, used, err = Discover("")
	}
	if err != nil {
		return nil, "", err
	}

	src, err := NewSource(props)
	if err != nil {
		return nil, "", err
	}
	return src, used, nil
}

// Load is Open followed by Resolve.
func Load(path string, opts Options) (types.Settings, string, error) {
	src, used, err := Open(path)
	if err != nil {
		return types.Settings{}, "", err
	}
	s, err := Resolve(src, opts)
	return s, used, err
}

// WriteYAML writes s as YAML.
func WriteYAML(w io.Writer, s types.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}
