package pricebook

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"copyshop-pricing/core/types"
	"copyshop-pricing/internal/errors"
)

var bookSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "settings"},
		{Type: "paper", LabelNames: []string{"id"}},
		{Type: "cover", LabelNames: []string{"id"}},
	},
}

var settingsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "currency"},
		{Name: "round_to"},
		{Name: "default_paper"},
	},
}

var paperSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "one_face_price", Required: true},
		{Name: "two_faces_price", Required: true},
	},
}

var coverSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "compatible_paper", Required: true},
		{Name: "one_face_price", Required: true},
		{Name: "two_faces_price", Required: true},
		{Name: "available"},
	},
}

// ParseHCL decodes an HCL price book.
//
//	settings {
//	  currency      = "EGP"
//	  round_to      = 5
//	  default_paper = "A4"
//	}
//
//	paper "A4" {
//	  name            = "A4 80gsm"
//	  one_face_price  = 50
//	  two_faces_price = 80
//	}
//
//	cover "spiral" {
//	  compatible_paper = ["A4", "A5"]
//	  one_face_price   = 10
//	  two_faces_price  = 15
//	  available        = true
//	}
func ParseHCL(src []byte, filename string) (*types.PriceSettings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, diags := file.Body.Content(bookSchema)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var doc document
	seenSettings := false
	for _, block := range content.Blocks {
		var blockDiags hcl.Diagnostics
		switch block.Type {
		case "settings":
			if seenSettings {
				blockDiags = append(blockDiags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate settings block",
					Detail:   "A price book may contain only one settings block.",
					Subject:  block.DefRange.Ptr(),
				})
				break
			}
			seenSettings = true
			blockDiags = decodeSettings(block, &doc.Settings)
		case "paper":
			var p paperBlock
			blockDiags = decodePaper(block, &p)
			doc.Papers = append(doc.Papers, p)
		case "cover":
			var c coverBlock
			blockDiags = decodeCover(block, &c)
			doc.Covers = append(doc.Covers, c)
		}
		diags = append(diags, blockDiags...)
	}
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	return doc.settings(), nil
}

func decodeSettings(block *hcl.Block, out *settingsBlock) hcl.Diagnostics {
	content, diags := block.Body.Content(settingsSchema)
	if diags.HasErrors() {
		return diags
	}
	if attr, ok := content.Attributes["currency"]; ok {
		out.Currency, diags = stringAttr(attr, diags)
	}
	if attr, ok := content.Attributes["round_to"]; ok {
		out.RoundTo, diags = moneyAttr(attr, diags)
	}
	if attr, ok := content.Attributes["default_paper"]; ok {
		out.DefaultPaper, diags = stringAttr(attr, diags)
	}
	return diags
}

func decodePaper(block *hcl.Block, out *paperBlock) hcl.Diagnostics {
	out.ID = block.Labels[0]
	content, diags := block.Body.Content(paperSchema)
	if diags.HasErrors() {
		return diags
	}
	if attr, ok := content.Attributes["name"]; ok {
		out.Name, diags = stringAttr(attr, diags)
	}
	out.OneFacePrice, diags = moneyAttr(content.Attributes["one_face_price"], diags)
	out.TwoFacesPrice, diags = moneyAttr(content.Attributes["two_faces_price"], diags)
	return diags
}

func decodeCover(block *hcl.Block, out *coverBlock) hcl.Diagnostics {
	out.ID = block.Labels[0]
	content, diags := block.Body.Content(coverSchema)
	if diags.HasErrors() {
		return diags
	}
	if attr, ok := content.Attributes["name"]; ok {
		out.Name, diags = stringAttr(attr, diags)
	}
	out.CompatiblePaper, diags = stringListAttr(content.Attributes["compatible_paper"], diags)
	out.OneFacePrice, diags = moneyAttr(content.Attributes["one_face_price"], diags)
	out.TwoFacesPrice, diags = moneyAttr(content.Attributes["two_faces_price"], diags)
	if attr, ok := content.Attributes["available"]; ok {
		var available bool
		available, diags = boolAttr(attr, diags)
		out.Available = &available
	}
	return diags
}

// attrValue evaluates a literal attribute and converts it to want.
// Price books have no variables or functions, so a nil eval context is used.
func attrValue(attr *hcl.Attribute, want cty.Type, diags hcl.Diagnostics) (cty.Value, bool, hcl.Diagnostics) {
	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return cty.NilVal, false, append(diags, typeDiag(attr, want, "a null or unknown value"))
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, false, append(diags, typeDiag(attr, want, val.Type().FriendlyName()))
	}
	return converted, true, diags
}

func stringAttr(attr *hcl.Attribute, diags hcl.Diagnostics) (string, hcl.Diagnostics) {
	val, ok, diags := attrValue(attr, cty.String, diags)
	if !ok {
		return "", diags
	}
	return val.AsString(), diags
}

func boolAttr(attr *hcl.Attribute, diags hcl.Diagnostics) (bool, hcl.Diagnostics) {
	val, ok, diags := attrValue(attr, cty.Bool, diags)
	if !ok {
		return false, diags
	}
	return val.True(), diags
}

func moneyAttr(attr *hcl.Attribute, diags hcl.Diagnostics) (types.Money, hcl.Diagnostics) {
	val, ok, diags := attrValue(attr, cty.Number, diags)
	if !ok {
		return types.Zero, diags
	}
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return types.Zero, append(diags, typeDiag(attr, cty.Number, "an unrepresentable number"))
	}
	return types.MoneyFromDecimal(d), diags
}

func stringListAttr(attr *hcl.Attribute, diags hcl.Diagnostics) ([]string, hcl.Diagnostics) {
	val, ok, diags := attrValue(attr, cty.List(cty.String), diags)
	if !ok {
		return nil, diags
	}
	out := make([]string, 0, val.LengthInt())
	for _, v := range val.AsValueSlice() {
		if v.IsNull() {
			return nil, append(diags, typeDiag(attr, cty.List(cty.String), "a list with a null element"))
		}
		out = append(out, v.AsString())
	}
	return out, diags
}

func typeDiag(attr *hcl.Attribute, want cty.Type, got string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid attribute value",
		Detail:   fmt.Sprintf("Attribute %q must be %s, got %s.", attr.Name, want.FriendlyName(), got),
		Subject:  attr.Expr.Range().Ptr(),
	}
}

func diagError(filename string, diags hcl.Diagnostics) error {
	err := errors.Parsing("invalid price book "+filename, diags)
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError && diag.Subject != nil {
			return err.WithContext("line", diag.Subject.Start.Line)
		}
	}
	return err
}
