package parser

import (
	"sort"
	"strings"
)

// dedupeItems merges items sharing a normalized name: quantities and prices
// are summed, the unit price recomputed, confidence averaged. The first
// occurrence keeps its original casing and earliest line number, and the
// output is ordered by source line, not by group.
func dedupeItems(items []Item) []Item {
	if len(items) == 0 {
		return []Item{}
	}

	type group struct {
		item  Item
		confs float64
		count int
	}
	groups := make(map[string]*group, len(items))
	order := make([]string, 0, len(items))

	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{item: it, confs: it.Confidence, count: 1}
			order = append(order, key)
			continue
		}
		g.item.Quantity += it.Quantity
		g.item.TotalPrice = round2(g.item.TotalPrice + it.TotalPrice)
		g.confs += it.Confidence
		g.count++
		if it.LineNumber < g.item.LineNumber {
			g.item.LineNumber = it.LineNumber
		}
	}

	out := make([]Item, 0, len(order))
	for _, key := range order {
		g := groups[key]
		it := g.item
		it.Confidence = g.confs / float64(g.count)
		if it.Quantity > 0 {
			u := round2(it.TotalPrice / float64(it.Quantity))
			it.UnitPrice = &u
		} else {
			it.UnitPrice = nil
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].LineNumber < out[b].LineNumber
	})
	return out
}
