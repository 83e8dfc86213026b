package models

import (
	"bytes"
	"encoding/json"
)

// FilterItem is one node of a filter tree: either a leaf Filter or a
// LogicalOperator combining child nodes. The union is closed, the wire
// format defines no third variant.
type FilterItem interface {
	filterItem()
}

// Filter matches a member against values using one comparison operator.
// Values is legitimately absent for the set and notSet operators.
type Filter struct {
	Member   string   `json:"member" validate:"required"`
	Operator Operator `json:"operator" validate:"required"`
	Values   []string `json:"values,omitempty"`
}

func (Filter) filterItem() {}

// LogicalOperator combines child nodes under "or" or "and", nested to any
// depth. Both fields are independently optional; populating one of the two
// at a time is the intended usage.
type LogicalOperator struct {
	Or  Filters `json:"or,omitempty"`
	And Filters `json:"and,omitempty"`
}

func (LogicalOperator) filterItem() {}

// Filters is an ordered list of filter tree nodes.
type Filters []FilterItem

// UnmarshalJSON restores the concrete variant of each entry: objects with
// an "or" or "and" key decode as LogicalOperator, everything else as
// Filter.
func (f *Filters) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}

	items := make(Filters, 0, len(raws))
	for _, raw := range raws {
		var probe struct {
			Or  json.RawMessage `json:"or"`
			And json.RawMessage `json:"and"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return err
		}

		if probe.Or != nil || probe.And != nil {
			var op LogicalOperator
			if err := json.Unmarshal(raw, &op); err != nil {
				return err
			}
			items = append(items, op)
		} else {
			var filter Filter
			if err := json.Unmarshal(raw, &filter); err != nil {
				return err
			}
			items = append(items, filter)
		}
	}

	*f = items
	return nil
}
