package parser

import "strings"

// lineFacts caches per-line classifications for one parse invocation so the
// lookahead windows never re-derive them.
type lineFacts struct {
	subItem      bool
	headerFooter bool
	total        bool
	priceOnly    bool
	hasPrice     bool
	qtyStart     bool
}

func classifyLines(lines []string) []lineFacts {
	facts := make([]lineFacts, len(lines))
	for i, l := range lines {
		facts[i] = lineFacts{
			subItem:      isSubItemLine(l),
			headerFooter: isHeaderFooterLine(l),
			total:        isTotalLine(l),
			priceOnly:    isPriceOnlyLine(l),
			hasPrice:     hasPrice(l),
			qtyStart:     startsWithQuantity(l),
		}
	}
	return facts
}

// bodyWindow returns the [start, end) subrange presumed to contain
// purchasable items, excluding the merchant/address header and the
// totals/payment footer. For very short receipts the raw bounds can invert,
// so they are clamped to a non-negative window.
func bodyWindow(n int) (int, int) {
	start := 3
	if n/4 < start {
		start = n / 4
	}
	end := n - 7
	if 3*n/4 > end {
		end = 3 * n / 4
	}
	if end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return start, end
}

// extraction is the call-local state of one engine pass: the skip-set of
// consumed lines, the items emitted so far and their running sum. Nothing
// here outlives a single Parse invocation.
type extraction struct {
	p      *Parser
	lines  []string
	facts  []lineFacts
	blocks []TextBlock
	skip   []bool
	items  []Item
	sum    float64
}

// extractItems is the central state-driven pass over the body of the
// receipt. Each candidate start line either matches the single-line
// "qty item price" shape immediately, or opens a bounded lookahead that
// collects modifier/continuation lines and hunts for the price on a
// following line. The skip-set guarantees each physical line contributes to
// at most one item.
func (p *Parser) extractItems(lines []string, blocks []TextBlock) []Item {
	n := len(lines)
	start, end := bodyWindow(n)
	ex := &extraction{
		p:      p,
		lines:  lines,
		facts:  classifyLines(lines),
		blocks: blocks,
		skip:   make([]bool, n),
	}

	for i := start; i < end; i++ {
		if ex.skip[i] {
			continue
		}
		f := ex.facts[i]
		if f.subItem || f.headerFooter || f.total {
			continue
		}
		// Asian receipts often print an untranslated addon line under a
		// "+++" sub-item; without a quantity or price of its own it is a
		// translation, not an item.
		if i > 0 && strings.HasPrefix(lines[i-1], "+++") && !f.qtyStart && !f.hasPrice {
			continue
		}
		if ex.trySingleLine(i) {
			continue
		}
		if !f.hasPrice && (looksLikeItemName(lines[i]) || hasFoodKeyword(lines[i])) {
			ex.collectMultiLine(i)
		}
	}
	return ex.items
}

// trySingleLine matches the immediate "qty x? name $price" shape.
func (ex *extraction) trySingleLine(i int) bool {
	m := reSingleLineItem.FindStringSubmatch(ex.lines[i])
	if m == nil {
		return false
	}
	qty := 1
	if m[1] != "" {
		qty, _, _ = leadingQuantity(ex.lines[i])
	}
	price, err := parseAmount(m[3])
	if err != nil {
		return false
	}
	return ex.emit(m[2], qty, price, i)
}

// collectMultiLine walks the lookahead window below start line i: modifier
// lines are buffered, a price-only line is remembered as a provisional price
// without stopping collection, and quantity-led or chrome lines terminate
// the window. If no price surfaced, a short trailing search may still find
// one, unless it belongs to the next item or smells like a cumulative
// subtotal.
func (ex *extraction) collectMultiLine(i int) {
	n := len(ex.lines)
	line := ex.lines[i]
	_, _, startQty := leadingQuantity(line)

	var modifiers []string
	var modLines []int
	price := -1.0
	priceLine := -1

	j := i + 1
	limit := i + 1 + ex.p.cfg.ModifierLookahead
	if limit > n {
		limit = n
	}
	for ; j < limit; j++ {
		if ex.skip[j] {
			break
		}
		f := ex.facts[j]
		if f.qtyStart {
			break // starts the next item
		}
		if f.subItem || f.headerFooter || f.total {
			break
		}
		if f.priceOnly {
			if price < 0 {
				if v, ok := findPrice(ex.lines[j]); ok {
					price = v
					priceLine = j
				}
			}
			continue // more modifiers may still follow the price
		}
		if isModifierLine(ex.lines[j], startQty) {
			// A modifier whose very next line is a bare price is really a
			// separate item; stop before claiming it.
			if j+1 < n && ex.facts[j+1].priceOnly {
				break
			}
			modifiers = append(modifiers, ex.lines[j])
			modLines = append(modLines, j)
			continue
		}
		break
	}

	if price < 0 {
		price, priceLine = ex.searchTrailingPrice(j)
	}
	if price < 0 {
		return
	}

	qty, rest, explicit := leadingQuantity(line)
	name := line
	if explicit {
		name = rest
	}
	if len(modifiers) > 0 {
		name = name + " " + strings.Join(modifiers, " ")
	}
	if ex.emit(name, qty, price, i) {
		ex.skip[priceLine] = true
		for _, ml := range modLines {
			ex.skip[ml] = true
		}
	}
}

// searchTrailingPrice looks a few lines past the modifier window for the
// item's price, skipping consumed and chrome lines. A quantity-led line ends
// the search immediately: its price belongs to the next item, and only
// price-only lines are candidates at all, so a price embedded in another
// item's "qty name price" line is never claimed. Candidates are rejected
// when they exceed the item-price ceiling or land within the
// subtotal-proximity band of the running item sum.
func (ex *extraction) searchTrailingPrice(from int) (float64, int) {
	limit := from + ex.p.cfg.PriceSearchLookahead
	if limit > len(ex.lines) {
		limit = len(ex.lines)
	}
	for k := from; k < limit; k++ {
		if ex.facts[k].qtyStart {
			return -1, -1
		}
		if ex.skip[k] || ex.facts[k].subItem || ex.facts[k].headerFooter || ex.facts[k].total {
			continue
		}
		if !ex.facts[k].priceOnly {
			continue
		}
		v, ok := findPrice(ex.lines[k])
		if !ok {
			continue
		}
		if v > ex.p.cfg.MaxItemPrice {
			continue
		}
		if abs(v-ex.sum) < ex.p.cfg.SubtotalProximity {
			continue
		}
		return v, k
	}
	return -1, -1
}

// emit validates and appends one item; it reports whether the item was
// accepted so the caller knows whether to consume its supporting lines.
func (ex *extraction) emit(name string, qty int, price float64, line int) bool {
	name = cleanItemName(name)
	if !isValidItemName(name) || isTotalLine(name) {
		return false
	}
	if !ex.p.isValidItemPrice(price) {
		return false
	}
	price = round2(price)
	it := Item{
		Name:       name,
		Quantity:   qty,
		TotalPrice: price,
		LineNumber: line,
		Confidence: confidenceAt(ex.blocks, line, ex.p.cfg.DefaultConfidence),
	}
	if qty > 0 {
		u := round2(price / float64(qty))
		it.UnitPrice = &u
	}
	ex.items = append(ex.items, it)
	ex.sum += price
	return true
}

func cleanItemName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,;:-_*")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
