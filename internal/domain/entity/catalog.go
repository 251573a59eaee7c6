package entity

import (
	"strings"
)

type RangeOp string

const (
	OpGte RangeOp = "gte"
	OpLte RangeOp = "lte"
	OpGt  RangeOp = "gt"
	OpLt  RangeOp = "lt"
)

func ParseRangeOp(s string) (RangeOp, bool) {
	switch RangeOp(s) {
	case OpGte, OpLte, OpGt, OpLt:
		return RangeOp(s), true
	}
	return "", false
}

type RangeCondition struct {
	Op    RangeOp
	Value float64
}

// ProductFilter is the parsed form of a catalog listing query: free-text
// keyword, exact-match fields, and numeric range conditions. Firestore
// cannot combine range filters across fields in a single query, so the
// repository pushes equality filters down and applies the rest through
// Matches, the same way search already works.
type ProductFilter struct {
	Keyword string
	Equals  map[string]string
	Ranges  map[string][]RangeCondition
}

func NewProductFilter() *ProductFilter {
	return &ProductFilter{
		Equals: make(map[string]string),
		Ranges: make(map[string][]RangeCondition),
	}
}

func (f *ProductFilter) IsEmpty() bool {
	return f.Keyword == "" && len(f.Equals) == 0 && len(f.Ranges) == 0
}

func (f *ProductFilter) Matches(p *Product) bool {
	if f.Keyword != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Keyword)) {
		return false
	}

	for field, want := range f.Equals {
		got, ok := productStringField(p, field)
		if !ok || got != want {
			return false
		}
	}

	for field, conds := range f.Ranges {
		value, ok := productNumericField(p, field)
		if !ok {
			return false
		}
		for _, cond := range conds {
			if !cond.holds(value) {
				return false
			}
		}
	}

	return true
}

func (c RangeCondition) holds(value float64) bool {
	switch c.Op {
	case OpGte:
		return value >= c.Value
	case OpLte:
		return value <= c.Value
	case OpGt:
		return value > c.Value
	case OpLt:
		return value < c.Value
	}
	return false
}

func productStringField(p *Product, field string) (string, bool) {
	switch field {
	case "category":
		return string(p.Category), true
	case "name":
		return p.Name, true
	case "createdBy":
		return p.CreatedBy, true
	}
	// Unknown fields match nothing, mirroring a filter on an absent
	// document field.
	return "", false
}

func productNumericField(p *Product, field string) (float64, bool) {
	switch field {
	case "price":
		return p.Price, true
	case "ratings":
		return p.Ratings, true
	case "stock":
		return float64(p.Stock), true
	}
	return 0, false
}
