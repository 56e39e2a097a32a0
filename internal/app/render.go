package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/beer-inventory-client/internal/config"
	"github.com/samvad-hq/beer-inventory-client/pkg/beerclient"
)

// Render writes v to w as json, yaml or a table.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.OutputTable:
		return renderTable(w, v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func renderTable(w io.Writer, v any) error {
	var (
		beers  []beerclient.Beer
		footer string
	)
	switch val := v.(type) {
	case *beerclient.Beer:
		beers = []beerclient.Beer{*val}
	case beerclient.Beer:
		beers = []beerclient.Beer{val}
	case *beerclient.Page[beerclient.Beer]:
		beers = val.Content
		footer = fmt.Sprintf("page %d (size %d) of %d beers\n", val.PageNumber()+1, val.PageSize(), val.Total())
	default:
		return fmt.Errorf("table output not supported for %T", v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTYLE\tUPC\tQUANTITY\tPRICE")
	for _, b := range beers {
		qty := "-"
		if b.QuantityOnHand != nil {
			qty = fmt.Sprintf("%d", *b.QuantityOnHand)
		}
		price := "-"
		if b.Price != nil {
			price = b.Price.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			b.Name,
			b.Style,
			b.UPC,
			qty,
			price,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	if footer != "" {
		_, err := io.WriteString(w, footer)
		return err
	}
	return nil
}
