// Package quote prices a whole reservation: lines are grouped into bundles,
// every bundle is priced with one rounding step, and the results are summed.
package quote

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"copyshop-pricing/core/determinism"
	"copyshop-pricing/core/grouping"
	"copyshop-pricing/core/types"
)

// DiagnosticKind classifies a degraded price
type DiagnosticKind string

const (
	// MissingPaperPrice means the print cost of a line fell back to zero
	MissingPaperPrice DiagnosticKind = "missing_paper_price"

	// MissingCover means a requested cover was not compatible or not offered
	MissingCover DiagnosticKind = "missing_cover"

	// DuplicateLine means a line repeated an earlier line id and was not priced
	DuplicateLine DiagnosticKind = "duplicate_line"
)

// Diagnostic points at a line whose price silently degraded or was dropped
type Diagnostic struct {
	LineID  string         `json:"line_id"`
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
}

// PaperAggregate totals the lines printed on one paper type
type PaperAggregate struct {
	PaperTypeID string      `json:"paper_type_id"`
	Label       string      `json:"label"`
	Quantity    int64       `json:"quantity"`
	Pages       int64       `json:"pages"`
	Total       types.Sides `json:"total"`
}

// Quote is the priced reservation
type Quote struct {
	ID       string         `json:"id"`
	Currency types.Currency `json:"currency"`
	Mode     grouping.Mode  `json:"grouping_mode"`

	// PriceBook fingerprints the settings the quote was priced with
	PriceBook string `json:"price_book"`

	Groups []grouping.PricedGroup `json:"groups"`

	// Total is the sum of group totals
	Total types.Sides `json:"total"`

	// ByPaperType breaks unrounded line totals down by paper type
	ByPaperType map[string]*PaperAggregate `json:"by_paper_type"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// LineCount counts priced lines; dropped duplicates are not included
	LineCount int   `json:"line_count"`
	ItemCount int64 `json:"item_count"`
}

// Side returns the amount charged for one-sided or double-sided printing
func (q *Quote) Side(twoFaces bool) types.Money {
	return q.Total.Side(twoFaces)
}

// PaperTypes returns the paper aggregates sorted by paper type id
func (q *Quote) PaperTypes() []*PaperAggregate {
	out := make([]*PaperAggregate, 0, len(q.ByPaperType))
	for _, id := range determinism.SortedKeys(q.ByPaperType) {
		out = append(out, q.ByPaperType[id])
	}
	return out
}

// HasDiagnostics reports whether any line degraded to a zero contribution
func (q *Quote) HasDiagnostics() bool {
	return len(q.Diagnostics) > 0
}

// Quoter builds quotes
type Quoter struct {
	mode   grouping.Mode
	logger *zap.Logger
	newID  func() string
}

// Option configures a Quoter
type Option func(*Quoter)

// WithMode selects the grouping mode
func WithMode(mode grouping.Mode) Option {
	return func(q *Quoter) {
		q.mode = mode
	}
}

// WithLogger sets the logger used to report degraded prices
func WithLogger(logger *zap.Logger) Option {
	return func(q *Quoter) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithIDFunc replaces the quote id generator
func WithIDFunc(fn func() string) Option {
	return func(q *Quoter) {
		if fn != nil {
			q.newID = fn
		}
	}
}

// NewQuoter creates a quoter. Defaults: transitive grouping, no logging,
// random quote ids.
func NewQuoter(opts ...Option) *Quoter {
	q := &Quoter{
		mode:   grouping.Transitive,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Mode returns the grouping mode in use
func (q *Quoter) Mode() grouping.Mode {
	return q.mode
}

// Quote prices the given reservation lines against a settings snapshot
func (q *Quoter) Quote(lines []types.LineItem, settings *types.PriceSettings) *Quote {
	result := &Quote{
		ID:          q.newID(),
		Mode:        q.mode,
		ByPaperType: make(map[string]*PaperAggregate),
	}
	if settings != nil {
		result.Currency = settings.Currency
		if hash, err := determinism.HashJSON(settings); err == nil {
			result.PriceBook = hash.Short()
		} else {
			q.logger.Warn("price book fingerprint failed", zap.Error(err))
		}
	}

	for _, id := range grouping.DuplicateIDs(lines) {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			LineID:  id,
			Kind:    DuplicateLine,
			Message: "line id " + quoted(id) + " repeats an earlier line; only the first is priced",
		})
		q.logger.Warn("duplicate line dropped", zap.String("line_id", id))
	}

	groups := grouping.GroupRelatedItems(lines, q.mode)
	result.Groups = grouping.PriceGroups(groups, settings)

	for _, g := range result.Groups {
		result.Total = result.Total.Add(g.GroupTotal)
		for _, item := range g.ItemPrices {
			result.LineCount++
			result.ItemCount += item.Quantity
			q.index(result, item, settings)
			result.Diagnostics = append(result.Diagnostics, q.diagnose(item)...)
		}
	}

	q.logger.Debug("quote priced",
		zap.String("quote_id", result.ID),
		zap.String("price_book", result.PriceBook),
		zap.Int("lines", result.LineCount),
		zap.Int("groups", len(result.Groups)),
		zap.String("total_one_face", result.Total.OneFace.String()),
		zap.String("total_two_faces", result.Total.TwoFaces.String()),
	)
	return result
}

func (q *Quoter) index(result *Quote, item grouping.ItemPrice, settings *types.PriceSettings) {
	paperID := item.Breakdown.PaperTypeID
	agg, ok := result.ByPaperType[paperID]
	if !ok {
		agg = &PaperAggregate{PaperTypeID: paperID, Label: paperID}
		if paper, found := settings.PaperType(paperID); found && paper.Name != "" {
			agg.Label = paper.Name
		}
		result.ByPaperType[paperID] = agg
	}
	agg.Quantity += item.Quantity
	agg.Pages += item.Pages * item.Quantity
	agg.Total = agg.Total.Add(item.Total)
}

func (q *Quoter) diagnose(item grouping.ItemPrice) []Diagnostic {
	var out []Diagnostic
	if !item.Breakdown.PaperPriceFound {
		d := Diagnostic{
			LineID:  item.ID,
			Kind:    MissingPaperPrice,
			Message: "no price for paper type " + quoted(item.Breakdown.PaperTypeID) + "; print cost counted as zero",
		}
		q.logger.Warn("paper price missing",
			zap.String("line_id", item.ID),
			zap.String("paper_type_id", item.Breakdown.PaperTypeID))
		out = append(out, d)
	}
	if item.Breakdown.CoverMissing {
		d := Diagnostic{
			LineID:  item.ID,
			Kind:    MissingCover,
			Message: "requested cover is not available for paper type " + quoted(item.Breakdown.PaperTypeID) + "; cover counted as zero",
		}
		q.logger.Warn("cover unavailable",
			zap.String("line_id", item.ID),
			zap.String("paper_type_id", item.Breakdown.PaperTypeID))
		out = append(out, d)
	}
	return out
}

func quoted(id string) string {
	if id == "" {
		return "(none)"
	}
	return `"` + id + `"`
}
