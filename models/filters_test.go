package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterValidateRequiresMemberAndOperator(t *testing.T) {
	err := Filter{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Member is a required field")
	assert.Contains(t, err.Error(), "Operator is a required field")
}

func TestFilterValidateAllowsMissingValues(t *testing.T) {
	filter := Filter{Member: "orders.completed_at", Operator: OperatorSet}
	assert.NoError(t, filter.Validate())
}

func TestFilterValidateAcceptsUnlistedOperators(t *testing.T) {
	filter := Filter{
		Member:   "orders.status",
		Operator: Operator("regex"),
		Values:   []string{"^comp"},
	}
	assert.NoError(t, filter.Validate())
}

func TestFiltersUnmarshalMixedVariants(t *testing.T) {
	raw := `[
		{"member": "orders.status", "operator": "equals", "values": ["completed"]},
		{"or": [
			{"member": "orders.total_amount", "operator": "gt", "values": ["100"]},
			{"member": "orders.items_count", "operator": "gt", "values": ["5"]}
		]}
	]`

	var filters Filters
	require.NoError(t, json.Unmarshal([]byte(raw), &filters))
	require.Len(t, filters, 2)

	leaf, ok := filters[0].(Filter)
	require.True(t, ok)
	assert.Equal(t, OperatorEquals, leaf.Operator)

	op, ok := filters[1].(LogicalOperator)
	require.True(t, ok)
	require.Len(t, op.Or, 2)
	assert.Nil(t, op.And)
}

func TestLogicalOperatorValidateWalksChildren(t *testing.T) {
	op := LogicalOperator{
		And: Filters{
			Filter{Member: "orders.status", Operator: OperatorEquals, Values: []string{"completed"}},
			Filter{Member: "orders.total_amount"},
		},
	}

	err := op.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operator is a required field")
}
