package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Units lists the known units.
type Units struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format"`
}

// unitRecord is the machine-readable form of a unit.
type unitRecord struct {
	Symbol     string  `json:"symbol"     yaml:"symbol"`
	Factor     float64 `json:"factor"     yaml:"factor"`
	Base       string  `json:"base"       yaml:"base"`
	Prefixable bool    `json:"prefixable" yaml:"prefixable"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Run executes the units command.
func (u *Units) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	session, err := newSession(ctx)
	if err != nil {
		return err
	}

	units := session.Registry().Units()

	records := make([]unitRecord, len(units))
	for i, unit := range units {
		records[i] = unitRecord{
			Symbol:     unit.Symbol,
			Factor:     unit.Factor,
			Base:       unit.Base(),
			Prefixable: unit.Prefixable,
		}
	}

	if u.Format != formatText {
		return encode(ctx, stdout(ctx), u.Format, records)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SYMBOL", "FACTOR", "BASE", "PREFIX").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, r := range records {
		base := r.Base
		if base == "" {
			base = "1"
		}

		t.Row(r.Symbol, strconv.FormatFloat(r.Factor, 'g', -1, 64), base,
			strconv.FormatBool(r.Prefixable))
	}

	_, err = fmt.Fprintln(stdout(ctx), t.Render())

	return err
}
