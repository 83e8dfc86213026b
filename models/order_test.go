package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPreservesInsertionOrder(t *testing.T) {
	order := Order{
		{Member: "orders.total_amount", Direction: Desc},
		{Member: "orders.created_at", Direction: Asc},
		{Member: "customers.city", Direction: Asc},
	}

	b, err := json.Marshal(order)
	require.NoError(t, err)
	assert.Equal(t, `{"orders.total_amount":"desc","orders.created_at":"asc","customers.city":"asc"}`, string(b))
}

func TestOrderRoundTrip(t *testing.T) {
	var order Order
	require.NoError(t, json.Unmarshal([]byte(`{"a.one":"desc","a.two":"asc"}`), &order))

	assert.Equal(t, Order{
		{Member: "a.one", Direction: Desc},
		{Member: "a.two", Direction: Asc},
	}, order)
}

func TestOrderUnmarshalRejectsNonObject(t *testing.T) {
	var order Order
	err := json.Unmarshal([]byte(`["orders.total_amount"]`), &order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order must be an object of member to direction entries")
}
