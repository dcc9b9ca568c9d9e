package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VerificationStatus summarizes how the computed item sum relates to the
// receipt's declared total.
type VerificationStatus string

const (
	// VerifyUnverified means the receipt never stated a total.
	VerifyUnverified VerificationStatus = "UNVERIFIED"
	// VerifyMatch means the sums agree within the match epsilon.
	VerifyMatch VerificationStatus = "MATCH"
	// VerifyMinorDiscrepancy means they disagree by less than a dollar.
	VerifyMinorDiscrepancy VerificationStatus = "MINOR_DISCREPANCY"
	// VerifyMissingItems means the item sum falls short of the total.
	VerifyMissingItems VerificationStatus = "LIKELY_MISSING_ITEMS"
	// VerifyExtraItems means the item sum exceeds the total, suggesting a
	// false-positive extraction.
	VerifyExtraItems VerificationStatus = "POSSIBLE_FALSE_POSITIVES"
)

// DigitFix is one candidate explanation from the OCR-error advisor: a single
// misread digit in one item's price that would reconcile the stated total.
// It is advisory only and never mutates the parsed item.
type DigitFix struct {
	ItemName       string  `json:"item_name"`
	LineNumber     int     `json:"line_number"`
	OriginalPrice  float64 `json:"original_price"`
	CorrectedPrice float64 `json:"corrected_price"`
	// Position counts digits of the two-decimal price left to right; the
	// decimal point is not a position.
	Position      int    `json:"position"`
	OriginalDigit string `json:"original_digit"`
	SuggestedDigit string  `json:"suggested_digit"`
}

// Verification is the observational output of the total verifier. It is
// never an error: disagreement is reported as data.
type Verification struct {
	Status      VerificationStatus `json:"status"`
	Discrepancy *float64           `json:"discrepancy,omitempty"`
	DigitFixes  []DigitFix         `json:"digit_fixes,omitempty"`
}

// ocrDigitConfusions maps each digit to the glyphs OCR most often mistakes
// it for. The table is intentionally symmetric around the common pairs.
var ocrDigitConfusions = map[byte]string{
	'0': "986",
	'1': "74",
	'2': "7",
	'3': "85",
	'4': "19",
	'5': "63",
	'6': "850",
	'7': "12",
	'8': "3069",
	'9': "047",
}

// verify compares the deduplicated item sum against the declared total. On a
// shortfall it additionally runs the digit-substitution advisor.
func (p *Parser) verify(rec *Receipt) Verification {
	if rec.TotalAmount == nil {
		return Verification{Status: VerifyUnverified}
	}
	d := round2(rec.CalculatedTotal - *rec.TotalAmount)
	v := Verification{Discrepancy: &d}

	switch {
	case math.Abs(d) < p.cfg.MatchEpsilon:
		v.Status = VerifyMatch
	case math.Abs(d) < p.cfg.MinorDiscrepancyLimit:
		v.Status = VerifyMinorDiscrepancy
	case d < 0:
		v.Status = VerifyMissingItems
		v.DigitFixes = p.suggestDigitFixes(rec.Items, math.Abs(d))
	default:
		v.Status = VerifyExtraItems
	}
	return v
}

// suggestDigitFixes is a bounded brute-force search: for every digit
// position of every item's two-decimal price string, try each confusion
// alternative and keep substitutions whose delta lands within the advisor
// tolerance of the unsigned discrepancy.
func (p *Parser) suggestDigitFixes(items []Item, absDiscrepancy float64) []DigitFix {
	var fixes []DigitFix
	for _, it := range items {
		s := fmt.Sprintf("%.2f", it.TotalPrice)
		dot := strings.IndexByte(s, '.')
		for pos := 0; pos < len(s); pos++ {
			orig := s[pos]
			alts, ok := ocrDigitConfusions[orig]
			if !ok {
				continue
			}
			digitPos := pos
			if dot >= 0 && pos > dot {
				digitPos = pos - 1
			}
			for k := 0; k < len(alts); k++ {
				candidate := s[:pos] + string(alts[k]) + s[pos+1:]
				corrected, err := strconv.ParseFloat(candidate, 64)
				if err != nil || corrected < 0 {
					continue
				}
				delta := math.Abs(corrected - it.TotalPrice)
				if math.Abs(delta-absDiscrepancy) <= p.cfg.AdvisorTolerance {
					fixes = append(fixes, DigitFix{
						ItemName:       it.Name,
						LineNumber:     it.LineNumber,
						OriginalPrice:  it.TotalPrice,
						CorrectedPrice: round2(corrected),
						Position:       digitPos,
						OriginalDigit:  string(orig),
						SuggestedDigit: string(alts[k]),
					})
				}
			}
		}
	}
	return fixes
}
