package carrepo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSearch_NoFilters(t *testing.T) {
	query, args, err := buildSearch(Filter{})
	require.NoError(t, err)
	require.Empty(t, args)
	require.NotContains(t, query, "WHERE")
	require.Contains(t, query, "FROM cars")
	require.Contains(t, query, "ORDER BY id")
}

func TestBuildSearch_AllFiltersAnded(t *testing.T) {
	query, args, err := buildSearch(Filter{
		Type:         "SUV",
		Transmission: "automatic",
		FuelType:     "petrol",
		PriceRange:   []float64{50, 150},
		Seats:        5,
	})
	require.NoError(t, err)
	require.Contains(t, query, "type = $")
	require.Contains(t, query, "price_per_day >= $")
	require.Contains(t, query, "price_per_day <= $")
	require.Contains(t, query, "transmission = $")
	require.Contains(t, query, "fuel_type = $")
	require.Contains(t, query, "seats >= $")
	require.Equal(t, []any{"SUV", 50.0, 150.0, "automatic", "petrol", 5}, args)
	// dimensions combine with AND, no OR between them
	require.Equal(t, 5, strings.Count(query, " AND "))
}

func TestBuildSearch_SearchQueryOrsFiveFields(t *testing.T) {
	query, args, err := buildSearch(Filter{SearchQuery: "dacia"})
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(query, "ILIKE"))
	require.Equal(t, 4, strings.Count(query, " OR "))
	for _, col := range []string{"make", "model", "location", "type", "fuel_type"} {
		require.Contains(t, query, col+" ILIKE")
	}
	require.Equal(t, []any{"%dacia%", "%dacia%", "%dacia%", "%dacia%", "%dacia%"}, args)
}

func TestBuildSearch_PartialPriceRangeIgnored(t *testing.T) {
	query, args, err := buildSearch(Filter{PriceRange: []float64{50}})
	require.NoError(t, err)
	require.Empty(t, args)
	require.NotContains(t, query, "price_per_day")
}
