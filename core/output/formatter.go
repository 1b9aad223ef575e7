// Package output renders quotes and single prices for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"copyshop-pricing/core/pricing"
	"copyshop-pricing/core/quote"
	"copyshop-pricing/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// PriceReport is the result of pricing one record
type PriceReport struct {
	Record   types.PricingRecord   `json:"record"`
	Currency types.Currency        `json:"currency"`
	Result   types.PriceResult     `json:"result"`
	Options  []pricing.CoverOption `json:"cover_options,omitempty"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote writes a priced reservation
	RenderQuote(w io.Writer, q *quote.Quote, details bool) error

	// RenderPrice writes a single-record price
	RenderPrice(w io.Writer, r *PriceReport) error
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(CLIFormatter{})
	r.Register(JSONFormatter{Indent: "  "})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[Format(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return f, nil
}

// JSONFormatter writes results as JSON
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (JSONFormatter) Format() Format { return FormatJSON }

// RenderQuote writes the quote as JSON
func (f JSONFormatter) RenderQuote(w io.Writer, q *quote.Quote, _ bool) error {
	return f.encode(w, q)
}

// RenderPrice writes the price report as JSON
func (f JSONFormatter) RenderPrice(w io.Writer, r *PriceReport) error {
	return f.encode(w, r)
}

func (f JSONFormatter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(v)
}
