package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeDimensionSerialization(t *testing.T) {
	td := TimeDimension{
		Dimension:   "orders.created_at",
		Granularity: GranularityDay,
		DateRange:   AbsoluteRange("2023-01-01", "2023-03-31"),
	}

	b, err := json.Marshal(td)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dimension": "orders.created_at",
		"granularity": "day",
		"dateRange": ["2023-01-01", "2023-03-31"]
	}`, string(b))
	assert.NoError(t, td.Validate())
}

func TestTimeDimensionOmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(TimeDimension{Dimension: "orders.created_at"})
	require.NoError(t, err)
	assert.Equal(t, `{"dimension":"orders.created_at"}`, string(b))
}

func TestTimeDimensionWithCompareDateRange(t *testing.T) {
	td := TimeDimension{
		Dimension:   "orders.created_at",
		Granularity: GranularityMonth,
		CompareDateRange: CompareDateRange{
			*AbsoluteRange("2023-01-01", "2023-03-31"),
			*RelativeRange("last quarter"),
		},
	}

	require.NoError(t, td.Validate())

	b, err := json.Marshal(td)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dimension": "orders.created_at",
		"granularity": "month",
		"compareDateRange": [["2023-01-01", "2023-03-31"], "last quarter"]
	}`, string(b))
}

func TestTimeDimensionRejectsBothDateRanges(t *testing.T) {
	td := TimeDimension{
		Dimension:        "orders.created_at",
		DateRange:        RelativeRange("This year"),
		CompareDateRange: CompareDateRange{*RelativeRange("last year")},
	}

	err := td.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot provide both dateRange and compareDateRange")
}

func TestTimeDimensionRequiresDimension(t *testing.T) {
	td := TimeDimension{Granularity: GranularityWeek}

	err := td.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dimension is a required field")
}
