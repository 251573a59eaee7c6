package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

// reservedParams are query keys that drive pagination and search rather
// than filtering.
var reservedParams = map[string]bool{
	"keyword": true,
	"page":    true,
	"limit":   true,
}

// ParseProductFilter turns listing query parameters into a ProductFilter.
// Range-style keys follow the shape field[operator] with operator in
// {gte, lte, gt, lt}; any other key is an exact-match filter. Malformed
// numeric values fail loudly instead of silently coercing to 0, which
// would otherwise match every product priced at 0 or above.
func ParseProductFilter(params url.Values) (*entity.ProductFilter, error) {
	filter := entity.NewProductFilter()
	filter.Keyword = strings.TrimSpace(params.Get("keyword"))

	for key, values := range params {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		value := values[0]

		field, op, isRange := splitRangeKey(key)
		if !isRange {
			filter.Equals[key] = value
			continue
		}

		rangeOp, ok := entity.ParseRangeOp(op)
		if !ok {
			return nil, errors.BadRequest(fmt.Sprintf("Unknown filter operator %q", op), nil)
		}

		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.BadRequest(fmt.Sprintf("Filter %s must be numeric, got %q", key, value), err)
		}

		filter.Ranges[field] = append(filter.Ranges[field], entity.RangeCondition{
			Op:    rangeOp,
			Value: number,
		})
	}

	return filter, nil
}

// splitRangeKey decomposes "price[gte]" into ("price", "gte", true).
func splitRangeKey(key string) (field, op string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}
