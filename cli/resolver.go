package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML configuration
// file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Top-level scalar keys are matched against flag names, spelled either with
// hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//	log-pretty: false
//
// Mappings and sequences (the unit and constant definitions) are not flags
// and are ignored here. Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return resolver{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	res := make(resolver, len(doc))

	for key, value := range doc {
		switch v := value.(type) {
		case map[string]any, []any, nil:
			continue

		// Kong requires numbers as strings for parsing
		case int:
			res[key] = strconv.Itoa(v)
		case int64:
			res[key] = strconv.FormatInt(v, 10)
		case uint64:
			res[key] = strconv.FormatUint(v, 10)
		case float64:
			res[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			res[key] = v
		}
	}

	return res, nil
}

// resolver implements [kong.Resolver] for flat YAML configs.
type resolver map[string]any

// Validate implements [kong.Resolver].
func (resolver) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r resolver) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
