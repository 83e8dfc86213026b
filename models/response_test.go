package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSetParse(t *testing.T) {
	raw := `{
		"data": [
			{"calendars.property_name": "Wander Hudson Valley", "calendars.confirmed_booking_revenue": 63218.4},
			{"calendars.property_name": "Wander Joshua Tree", "calendars.confirmed_booking_revenue": 42},
			{"calendars.property_name": null, "calendars.confirmed_booking_revenue": null}
		]
	}`

	var result ResultSet
	require.NoError(t, json.Unmarshal([]byte(raw), &result))
	require.Len(t, result.Data, 3)

	assert.Equal(t, "Wander Hudson Valley", result.Data[0]["calendars.property_name"])
	assert.Equal(t, 63218.4, result.Data[0]["calendars.confirmed_booking_revenue"])
	assert.Equal(t, float64(42), result.Data[1]["calendars.confirmed_booking_revenue"])
	assert.Nil(t, result.Data[2]["calendars.property_name"])
}

func TestResultSetDecode(t *testing.T) {
	result := ResultSet{
		Data: []map[string]interface{}{
			{"calendars.property_name": "Wander Hudson Valley", "calendars.confirmed_booking_revenue": 63218.4},
			{"calendars.property_name": "Wander Joshua Tree", "calendars.confirmed_booking_revenue": 12000.0},
		},
	}

	type revenueRow struct {
		Property string  `mapstructure:"calendars.property_name"`
		Revenue  float64 `mapstructure:"calendars.confirmed_booking_revenue"`
	}

	var rows []revenueRow
	require.NoError(t, result.Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, revenueRow{Property: "Wander Hudson Valley", Revenue: 63218.4}, rows[0])
	assert.Equal(t, revenueRow{Property: "Wander Joshua Tree", Revenue: 12000.0}, rows[1])
}
