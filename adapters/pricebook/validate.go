package pricebook

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(types.Money); ok {
			return m.Float64()
		}
		return nil
	}, types.Money{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a price book for completeness.
// The pricing core never calls this; it prices incomplete books as zero.
// Callers run it before a book is used to persist transactions.
func Validate(settings *types.PriceSettings) error {
	if settings == nil {
		return errors.Input("price book is empty")
	}

	var problems []string
	if err := validate.Struct(settings); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return errors.Internal("price book validation failed", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	problems = append(problems, crossCheck(settings)...)

	if len(problems) > 0 {
		return errors.Input("price book is invalid").WithContext("problems", problems)
	}
	return nil
}

func crossCheck(s *types.PriceSettings) []string {
	var problems []string

	papers := make(map[string]bool, len(s.PaperTypes))
	for _, p := range s.PaperTypes {
		if papers[p.ID] {
			problems = append(problems, fmt.Sprintf("paper %q is defined twice", p.ID))
		}
		papers[p.ID] = true
	}

	covers := make(map[string]bool, len(s.Covers))
	for _, c := range s.Covers {
		if covers[c.ID] {
			problems = append(problems, fmt.Sprintf("cover %q is defined twice", c.ID))
		}
		covers[c.ID] = true
		if len(c.CompatiblePaperTypes) == 0 {
			problems = append(problems, fmt.Sprintf("cover %q fits no paper type", c.ID))
		}
		for _, pid := range c.CompatiblePaperTypes {
			if !papers[pid] {
				problems = append(problems, fmt.Sprintf("cover %q refers to unknown paper %q", c.ID, pid))
			}
		}
	}

	for _, id := range s.AvailableCoverIDs {
		if !covers[id] {
			problems = append(problems, fmt.Sprintf("available cover %q is not in the catalog", id))
		}
	}

	if s.DefaultPaperTypeID != "" && !papers[s.DefaultPaperTypeID] {
		problems = append(problems, fmt.Sprintf("default paper %q is not in the catalog", s.DefaultPaperTypeID))
	}
	return problems
}

// Problems extracts the list of validation problems from a Validate error
func Problems(err error) []string {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return nil
	}
	problems, _ := e.Context["problems"].([]string)
	return problems
}
