// Package parser converts noisy OCR-derived receipt text into a structured
// receipt. There is no grammar to parse against: line breaks come from OCR
// layout, digits and currency symbols are frequently misread, and real items
// are interleaved with headers, footers, modifiers and translations. The
// engine is a multi-pass heuristic classifier that favors precision over
// recall, cross-validates its own output against the stated total, and flags
// disagreement instead of silently fixing it.
package parser

import (
	"log/slog"
	"strings"
)

// Config holds the tunable thresholds of the engine. The defaults mirror the
// behavior the heuristics were calibrated against; they are named here rather
// than inlined because none of them is obviously principled.
type Config struct {
	// MinItemPrice / MaxItemPrice bound the plausible per-item price band.
	// Zero is always allowed (comped items). Prices outside the band are
	// treated as totals, subtotals or misreads, never as items.
	MinItemPrice float64
	MaxItemPrice float64

	// MatchEpsilon is the calculated-vs-stated tolerance treated as a match.
	MatchEpsilon float64
	// MinorDiscrepancyLimit is the band reported as a minor discrepancy.
	MinorDiscrepancyLimit float64

	// SubtotalProximity rejects a candidate price that lands within this
	// distance of the running item sum; such a line is almost certainly a
	// cumulative subtotal, not a new item.
	SubtotalProximity float64

	// AdvisorTolerance is how close a single-digit substitution's delta must
	// come to the unsigned discrepancy before it is surfaced as a candidate
	// OCR-misread explanation.
	AdvisorTolerance float64

	// ModifierLookahead bounds the multi-line collection window and
	// PriceSearchLookahead the trailing price search past it. Together they
	// keep per-line work O(window) instead of O(remaining document).
	ModifierLookahead    int
	PriceSearchLookahead int

	// DefaultConfidence (0..1) is used when a line has no aligned text block.
	DefaultConfidence float64
}

// DefaultConfig returns the calibrated thresholds.
func DefaultConfig() Config {
	return Config{
		MinItemPrice:          0.10,
		MaxItemPrice:          200.00,
		MatchEpsilon:          0.01,
		MinorDiscrepancyLimit: 1.00,
		SubtotalProximity:     0.11,
		AdvisorTolerance:      0.05,
		ModifierLookahead:     10,
		PriceSearchLookahead:  3,
		DefaultConfidence:     0.7,
	}
}

// Parser is a pure function of its inputs: no I/O, no cross-call state. One
// instance is safe for concurrent use across independent receipts.
type Parser struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	d := DefaultConfig()
	if cfg.MaxItemPrice <= 0 {
		cfg.MaxItemPrice = d.MaxItemPrice
	}
	if cfg.MinItemPrice <= 0 {
		cfg.MinItemPrice = d.MinItemPrice
	}
	if cfg.MatchEpsilon <= 0 {
		cfg.MatchEpsilon = d.MatchEpsilon
	}
	if cfg.MinorDiscrepancyLimit <= 0 {
		cfg.MinorDiscrepancyLimit = d.MinorDiscrepancyLimit
	}
	if cfg.SubtotalProximity <= 0 {
		cfg.SubtotalProximity = d.SubtotalProximity
	}
	if cfg.AdvisorTolerance <= 0 {
		cfg.AdvisorTolerance = d.AdvisorTolerance
	}
	if cfg.ModifierLookahead <= 0 {
		cfg.ModifierLookahead = d.ModifierLookahead
	}
	if cfg.PriceSearchLookahead <= 0 {
		cfg.PriceSearchLookahead = d.PriceSearchLookahead
	}
	if cfg.DefaultConfidence <= 0 {
		cfg.DefaultConfidence = d.DefaultConfidence
	}
	return &Parser{cfg: cfg, logger: logger}
}

// Parse runs the full pipeline: normalize lines, extract metadata, extract
// items, deduplicate, verify. It always returns a complete (possibly empty)
// receipt; the only fast-fail path is a failed or empty OCR result.
func (p *Parser) Parse(res OCRResult) *Receipt {
	rec := &Receipt{Items: []Item{}}
	if !res.Success || strings.TrimSpace(res.Text) == "" {
		rec.Verification = Verification{Status: VerifyUnverified}
		return rec
	}

	lines := splitLines(res.Text)

	rec.MerchantName = extractMerchant(lines)
	rec.ReceiptDate = extractDate(lines)
	rec.TotalAmount = extractTotal(lines)

	items := p.extractItems(lines, res.TextBlocks)
	rec.Items = dedupeItems(items)

	var sum float64
	for _, it := range rec.Items {
		sum += it.TotalPrice
	}
	rec.CalculatedTotal = round2(sum)
	rec.Verification = p.verify(rec)

	p.logger.Debug("receipt parsed",
		"lines", len(lines),
		"items", len(rec.Items),
		"calculated_total", rec.CalculatedTotal,
		"verification", rec.Verification.Status,
	)
	return rec
}

// splitLines breaks raw OCR text into trimmed, non-empty lines, preserving
// relative order. No line is invented or reordered.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
