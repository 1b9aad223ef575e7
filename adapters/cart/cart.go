// Package cart reads reservation files into pricing lines.
package cart

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"copyshop-pricing/core/grouping"
	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
	"copyshop-pricing/internal/logging"
)

// File is the on-disk reservation format
type File struct {
	Reference string `json:"reference,omitempty"`
	Lines     []Line `json:"lines" validate:"required,min=1,dive"`
}

// Line is one publication in a reservation
type Line struct {
	ID            string      `json:"id" validate:"required"`
	Quantity      int64       `json:"quantity" validate:"gte=1"`
	Pages         int64       `json:"pages"`
	PaperTypeID   string      `json:"paper_type_id,omitempty"`
	CoverTypeID   string      `json:"cover_type_id,omitempty"`
	Coverless     bool        `json:"coverless,omitempty"`
	TwoFacesCover bool        `json:"two_faces_cover,omitempty"`
	DoRound       bool        `json:"do_round,omitempty"`
	ChangePrice   types.Sides `json:"change_price"`
	RelatedIDs    []string    `json:"related_publication_ids,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes and validates a reservation.
// Lines without a paper type get the price book's default paper.
func Parse(data []byte, settings *types.PriceSettings) ([]types.LineItem, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Parsing("invalid reservation file", err)
	}
	if err := check(&f); err != nil {
		return nil, err
	}

	defaultPaper := ""
	if settings != nil {
		defaultPaper = settings.DefaultPaperTypeID
	}

	items := make([]types.LineItem, 0, len(f.Lines))
	for _, l := range f.Lines {
		if l.Pages < 0 {
			logging.Warn("negative page count is priced as given",
				zap.String("line_id", l.ID), zap.Int64("pages", l.Pages))
		}
		paper := l.PaperTypeID
		if paper == "" {
			paper = defaultPaper
		}
		items = append(items, types.LineItem{
			Quantity: l.Quantity,
			Record: types.PricingRecord{
				ID:                    l.ID,
				Pages:                 l.Pages,
				PaperTypeID:           paper,
				CoverTypeID:           l.CoverTypeID,
				Coverless:             l.Coverless,
				TwoFacesCover:         l.TwoFacesCover,
				DoRound:               l.DoRound,
				ChangePrice:           l.ChangePrice,
				RelatedPublicationIDs: l.RelatedIDs,
			},
		})
	}
	return items, nil
}

// Load reads a reservation file from disk
func Load(path string, settings *types.PriceSettings) ([]types.LineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("reservation", path)
		}
		return nil, errors.Wrap(errors.TypeInput, "failed to read reservation", err)
	}
	return Parse(data, settings)
}

func check(f *File) error {
	var problems []string
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return errors.Internal("reservation validation failed", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
	}

	// Grouping keys on line ids, so a repeated id would silently drop a line.
	seen := make(map[string]bool, len(f.Lines))
	for _, l := range f.Lines {
		if l.ID != "" && seen[l.ID] {
			problems = append(problems, fmt.Sprintf("line %q appears twice", l.ID))
		}
		if strings.Contains(l.ID, grouping.IDSeparator) {
			problems = append(problems, fmt.Sprintf("line %q: id must not contain %q", l.ID, grouping.IDSeparator))
		}
		seen[l.ID] = true
	}

	if len(problems) > 0 {
		return errors.Input("reservation is invalid").WithContext("problems", problems)
	}
	return nil
}
