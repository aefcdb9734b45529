package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/ardnew/unitcalc/config"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// encode writes v to w in the given machine-readable format.
func encode(ctx context.Context, w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

	case formatYAML:
		if err := config.Encode(ctx, w, v); err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		return ErrJSONMarshal.With(slog.String("format", format))
	}

	return nil
}
