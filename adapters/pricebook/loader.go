package pricebook

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
	"copyshop-pricing/internal/logging"
)

// Format is a price book file format
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from a file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unsupported price book extension %q (use .hcl or .json)", filepath.Ext(path))
	}
}

// ParseJSON decodes a JSON price book with the same shape as the HCL one:
// a settings object plus papers and covers arrays.
func ParseJSON(data []byte) (*types.PriceSettings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Parsing("invalid JSON price book", err)
	}
	return doc.settings(), nil
}

// Parse decodes a price book in the given format
func Parse(data []byte, filename string, format Format) (*types.PriceSettings, error) {
	switch format {
	case FormatHCL:
		return ParseHCL(data, filename)
	case FormatJSON:
		return ParseJSON(data)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported price book format %q", format)
	}
}

// Load reads, decodes and validates a price book file
func Load(path string) (*types.PriceSettings, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("price book", path)
		}
		return nil, errors.Wrap(errors.TypeInput, "failed to read price book", err)
	}

	settings, err := Parse(data, path, format)
	if err != nil {
		return nil, err
	}
	if err := Validate(settings); err != nil {
		return nil, err
	}

	logging.Debug("price book loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("papers", len(settings.PaperPrices)),
		zap.Int("covers", len(settings.Covers)),
		zap.Int("available_covers", len(settings.AvailableCoverIDs)),
	)
	return settings, nil
}
