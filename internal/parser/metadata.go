package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const merchantScanLimit = 5

var (
	reISODate     = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	reLabeledDate = regexp.MustCompile(`(?i)\bDATE\b[:\s]+(\d{1,2}[./-]\d{1,2}[./-]\d{2,4})`)
	reTotalAmount = regexp.MustCompile(`(?i)\b(?:ORDER\s+)?TOTAL\b[:\s]*\$?\s*(\d{1,5}[.,]\d{2})`)
	reTotalWord   = regexp.MustCompile(`(?i)\btotal\b`)
)

// labeledDateLayouts covers the dd/MM/yyyy family once separators are
// normalized to "/".
var labeledDateLayouts = []string{
	"02/01/2006", "2/1/2006", "02/01/06", "2/1/06",
}

// extractMerchant scans the top of the receipt for the first line that looks
// like a store name: longer than three characters, no currency symbol, not
// digit-led, and containing at least one letter.
func extractMerchant(lines []string) string {
	limit := merchantScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		l := lines[i]
		if utf8.RuneCountInString(l) <= 3 {
			continue
		}
		if strings.ContainsRune(l, '$') {
			continue
		}
		r, _ := utf8.DecodeRuneInString(l)
		if unicode.IsDigit(r) {
			continue
		}
		if !hasLetterOrIdeograph(l) {
			continue
		}
		return l
	}
	return ""
}

// extractDate tries ISO-shaped dates across all lines first, then labeled
// "DATE: dd/MM/yyyy" forms. The extracted calendar date becomes midnight UTC;
// no timezone inference is attempted.
func extractDate(lines []string) *time.Time {
	for _, l := range lines {
		if m := reISODate.FindStringSubmatch(l); m != nil {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			if mo >= 1 && mo <= 12 && d >= 1 && d <= 31 {
				t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
				return &t
			}
		}
	}
	for _, l := range lines {
		m := reLabeledDate.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		raw := strings.NewReplacer(".", "/", "-", "/").Replace(m[1])
		for _, layout := range labeledDateLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
				t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
				return &t
			}
		}
	}
	return nil
}

// extractTotal scans in order for a "TOTAL $x.xx" (or "ORDER TOTAL") line;
// a line that merely says "total" is allowed to carry its amount on the very
// next line. The first successful parse wins, and no total is ever invented.
func extractTotal(lines []string) *float64 {
	for i, l := range lines {
		if m := reTotalAmount.FindStringSubmatch(l); m != nil {
			if v, err := parseAmount(m[1]); err == nil {
				v = round2(v)
				return &v
			}
		}
		if reTotalWord.MatchString(l) && i+1 < len(lines) {
			if m := reBarePrice.FindStringSubmatch(lines[i+1]); m != nil {
				if v, err := parseAmount(m[1]); err == nil {
					v = round2(v)
					return &v
				}
			}
		}
	}
	return nil
}
