package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line-shape regexes. Prices tolerate either "." or "," as the decimal
// separator; both are normalized before parsing.
var (
	rePriceToken  = regexp.MustCompile(`\$?\s?\d{1,4}[.,]\d{2}`)
	rePriceAtEnd  = regexp.MustCompile(`\$?\s?(\d{1,4}[.,]\d{2})\s*$`)
	reBarePrice   = regexp.MustCompile(`^\$?\s*(\d{1,5}[.,]\d{2})\s*$`)
	reBareNumber  = regexp.MustCompile(`^\$?\d+([.,]\d+)?$`)
	reParenRef    = regexp.MustCompile(`^\(.{0,14}\)$`)
	reParenCount  = regexp.MustCompile(`^\(\d+\)\s*`)
	reIndent      = regexp.MustCompile(`^( {2,}|\t)`)
	reBullet      = regexp.MustCompile(`^[-+•*>○·\[]`)
	reModWord     = regexp.MustCompile(`(?i)^(no|extra|less|with|without|more|con|sin|copa)\b`)
	reSideDish    = regexp.MustCompile(`(?i)^(w/|side of|add on|topping)`)
	reSeparator   = regexp.MustCompile(`^[-=*_~.·•\s]{3,}$`)
	reSlashDate   = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b`)
	reClockTime   = regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\s*(AM|PM|am|pm)?\b`)
	reRefNumber   = regexp.MustCompile(`(?i)^(order|table|tbl|chk|check|receipt|invoice|bill|trans|txn)\s*(no\.?|num|#|:)?\s*\d+`)
	rePhoneDigits = regexp.MustCompile(`\d{3,4}[- ]\d{4}`)
	reStoreDash   = regexp.MustCompile(`^[A-Za-z'&.@ ]{3,}\s[-–—]\s[A-Za-z'&.@ ]{3,}$`)

	// OCR turns a leading "1" into I, l, i or ":" often enough that all of
	// them count as a quantity of one.
	reLeadingQtyStart = regexp.MustCompile(`^[1-9Il:]\s`)
	reLeadingQty      = regexp.MustCompile(`^(\d{1,2}|[Ili:])\s*[xX×]?\s+`)

	// Single-line item: optional quantity, name, price at end of line.
	reSingleLineItem = regexp.MustCompile(`^(?:(\d{1,2}|[Ili:])\s*[xX×]?\s+)?(.+?)\s+\$?(\d{1,4}[.,]\d{2})\s*$`)
)

var columnHeaderWords = map[string]bool{
	"price": true, "qty": true, "quantity": true, "item": true, "items": true,
	"description": true, "desc": true, "amount": true, "amt": true,
	"unit": true, "u/p": true, "no": true, "sn": true, "disc": true,
}

var deliveryUIPhrases = []string{
	"order placed", "order confirmed", "track your order", "rate your order",
	"your order from", "delivered by", "delivery by", "view receipt",
	"order details", "thank you for ordering",
	"grabfood", "foodpanda", "deliveroo", "uber eats", "ubereats", "doordash",
}

var feePhrases = []string{
	"delivery fee", "service fee", "platform fee", "small order fee",
	"packaging fee", "container fee", "takeaway charge", "booking fee",
}

var paymentWords = []string{
	"cash", "change", "tender", "payment", "paid", "visa", "mastercard",
	"amex", "american express", "nets", "paynow", "paylah", "paywave",
	"credit card", "debit card", "card no", "approval", "auth code",
	"cashier", "terminal",
}

var contactWords = []string{
	"tel", "phone", "fax", "www.", "http", ".com", "gst reg",
	"uen", "reg no",
}

// totalKeywords covers English and Chinese total/subtotal/surcharge wording.
var totalKeywords = []string{
	"total", "subtotal", "sub-total", "sub total", "tax", "gst", "vat",
	"service charge", "svc chg", "discount", "rounding",
	"总计", "小计", "合计", "总额", "服务费", "折扣", "税",
}

var modifierStopFood = []string{
	"rice", "noodle", "noodles", "mee", "chicken", "beef", "pork", "fish",
	"prawn", "shrimp", "duck", "tofu", "egg", "soup", "salad", "burger",
	"pizza", "pasta", "sandwich", "wrap", "curry", "bread", "toast", "cake",
	"roll", "dumpling", "bun", "fries", "coffee", "tea", "latte", "juice",
	"milk", "beer", "wine", "soda", "cola", "smoothie", "milkshake",
}

var dayMonthWords = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true,
	"sat": true, "sun": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "oct": true, "nov": true,
	"dec": true,
}

// isSubItemLine reports whether a line is an indented sub-item or a modifier
// of a preceding item rather than a purchasable item of its own.
func isSubItemLine(s string) bool {
	if reIndent.MatchString(s) {
		return true
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	if reBullet.MatchString(t) {
		return true
	}
	if reParenCount.MatchString(t) {
		return true
	}
	return reModWord.MatchString(t)
}

// isHeaderFooterLine classifies receipt chrome: column headers, store
// banners, delivery-app UI, fee lines, payment lines, separators, contact
// info and shouty taglines.
func isHeaderFooterLine(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return true
	}
	if reSeparator.MatchString(t) && !hasLetterOrIdeograph(t) {
		return true
	}
	if isColumnHeader(t) {
		return true
	}
	lower := strings.ToLower(t)
	for _, p := range deliveryUIPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, p := range feePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, w := range paymentWords {
		if containsWord(lower, w) {
			return true
		}
	}
	for _, w := range contactWords {
		if strings.ContainsAny(w, ". ") {
			if strings.Contains(lower, w) {
				return true
			}
		} else if containsWord(lower, w) {
			return true
		}
	}
	if rePhoneDigits.MatchString(t) && !rePriceToken.MatchString(t) {
		return true
	}
	if reStoreDash.MatchString(t) && !rePriceToken.MatchString(t) {
		return true
	}
	// e.g. "*** WELCOME ***" or "!!! GRAND OPENING !!!"
	if strings.Count(t, "!")+strings.Count(t, "*")+strings.Count(t, "#") >= 2 && hasLetterOrIdeograph(t) {
		return true
	}
	return false
}

// isTotalLine reports whether a line carries total/subtotal/surcharge
// wording in English or Chinese.
func isTotalLine(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range totalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isValidItemName accepts names of at least two characters containing at
// least one letter or ideograph. Bare symbol clusters like "×" are rejected.
func isValidItemName(s string) bool {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) < 2 {
		return false
	}
	return hasLetterOrIdeograph(t)
}

// isValidItemPrice allows zero (comped item) and otherwise requires the
// price to sit inside the plausible per-item band. Anything outside is a
// total, a subtotal or a misread.
func (p *Parser) isValidItemPrice(v float64) bool {
	if v == 0 {
		return true
	}
	return v > p.cfg.MinItemPrice && v <= p.cfg.MaxItemPrice
}

// looksLikeItemName is the admission test for the multi-line track: long
// enough, not a number, not a reference or date/time artifact, not chrome,
// and carrying at least one letter or CJK ideograph.
func looksLikeItemName(s string) bool {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) < 3 {
		return false
	}
	if reBareNumber.MatchString(t) {
		return false
	}
	if reParenRef.MatchString(t) {
		return false
	}
	if reSlashDate.MatchString(t) || reClockTime.MatchString(t) {
		return false
	}
	if reRefNumber.MatchString(t) {
		return false
	}
	fields := strings.Fields(strings.ToLower(t))
	if len(fields) > 0 && dayMonthWords[strings.Trim(fields[0], ",.")] {
		return false
	}
	if isSubItemLine(s) || isHeaderFooterLine(s) || isTotalLine(s) {
		return false
	}
	return hasLetterOrIdeograph(t)
}

// hasFoodKeyword gives borderline lines a second chance at starting an item:
// OCR often mangles everything around the dish name but not the dish itself.
func hasFoodKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range modifierStopFood {
		if containsWord(lower, w) {
			return true
		}
	}
	return false
}

// isModifierLine decides whether a lookahead line continues the item under
// collection: either short, letter-heavy, without a price of its own and
// not a dish name, or explicitly w/-prefixed, or (after a quantity-led
// start line) any short descriptive line.
func isModifierLine(s string, prevStartedWithQty bool) bool {
	t := strings.TrimSpace(s)
	if t == "" || !hasLetterOrIdeograph(t) {
		return false
	}
	if rePriceToken.MatchString(t) {
		return false
	}
	if reSideDish.MatchString(t) || reModWord.MatchString(t) {
		return true
	}
	short := utf8.RuneCountInString(t) <= 24
	if !short {
		return false
	}
	if prevStartedWithQty {
		return true
	}
	return !hasFoodKeyword(t)
}

// hasPrice reports whether the line contains any price-shaped token.
func hasPrice(s string) bool {
	return rePriceToken.MatchString(s)
}

// hasPriceAtEnd distinguishes "name ... $5.00" from lines without a trailing
// price.
func hasPriceAtEnd(s string) bool {
	return rePriceAtEnd.MatchString(s)
}

// isPriceOnlyLine reports whether the line is nothing but a price: after
// stripping the first price token, currency symbols and whitespace, at most
// two residual characters remain.
func isPriceOnlyLine(s string) bool {
	loc := rePriceToken.FindStringIndex(s)
	if loc == nil {
		return false
	}
	rest := s[:loc[0]] + s[loc[1]:]
	rest = strings.Map(func(r rune) rune {
		if r == '$' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, rest)
	return utf8.RuneCountInString(rest) <= 2
}

// startsWithQuantity reports whether a line opens with a quantity digit
// (tolerating I/l/: misreads of "1"). Such a line starts the next item.
func startsWithQuantity(s string) bool {
	return reLeadingQtyStart.MatchString(s)
}

// leadingQuantity extracts an explicit leading quantity and the remainder of
// the line. Misread glyphs map to one; absent quantities default to one.
func leadingQuantity(s string) (qty int, rest string, explicit bool) {
	m := reLeadingQty.FindStringSubmatch(s)
	if m == nil {
		return 1, s, false
	}
	switch m[1] {
	case "I", "l", "i", ":":
		qty = 1
	default:
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return 1, s, false
		}
		qty = n
	}
	return qty, strings.TrimSpace(s[len(m[0]):]), true
}

// parseAmount parses a price string, accepting "," as the decimal separator.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// findPrice returns the first price token on the line, if any.
func findPrice(s string) (float64, bool) {
	tok := rePriceToken.FindString(s)
	if tok == "" {
		return 0, false
	}
	v, err := parseAmount(tok)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isColumnHeader(s string) bool {
	fields := strings.Fields(strings.ToLower(strings.Trim(s, " :.")))
	if len(fields) == 0 || len(fields) > 4 {
		return false
	}
	for _, f := range fields {
		if !columnHeaderWords[f] {
			return false
		}
	}
	return true
}

func hasLetterOrIdeograph(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func containsWord(haystack, word string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordRune(rune(haystack[start-1]))
		afterOK := end >= len(haystack) || !isWordRune(rune(haystack[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = end
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
