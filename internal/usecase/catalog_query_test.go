package usecase

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

func TestParseProductFilter(t *testing.T) {
	params := url.Values{}
	params.Set("keyword", "  food ")
	params.Set("category", "Food")
	params.Set("price[gte]", "100")
	params.Set("price[lte]", "500")
	params.Set("page", "2")
	params.Set("limit", "5")

	filter, err := ParseProductFilter(params)
	require.NoError(t, err)

	assert.Equal(t, "food", filter.Keyword, "keyword is trimmed")
	assert.Equal(t, "Food", filter.Equals["category"])
	require.Len(t, filter.Ranges["price"], 2)
	assert.NotContains(t, filter.Equals, "page", "pagination keys are not filters")
	assert.NotContains(t, filter.Equals, "limit")
}

func TestParseProductFilterRejectsBadNumbers(t *testing.T) {
	params := url.Values{}
	params.Set("price[gte]", "cheap")

	_, err := ParseProductFilter(params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestParseProductFilterRejectsUnknownOperator(t *testing.T) {
	params := url.Values{}
	params.Set("price[between]", "100")

	_, err := ParseProductFilter(params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestParseProductFilterEmpty(t *testing.T) {
	filter, err := ParseProductFilter(url.Values{})
	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())
}

func TestParseProductFilterRatingsRange(t *testing.T) {
	params := url.Values{}
	params.Set("ratings[gte]", "4")

	filter, err := ParseProductFilter(params)
	require.NoError(t, err)
	require.Len(t, filter.Ranges["ratings"], 1)
	assert.Equal(t, entity.OpGte, filter.Ranges["ratings"][0].Op)
	assert.InDelta(t, 4.0, filter.Ranges["ratings"][0].Value, 0.001)
}
