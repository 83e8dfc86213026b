package models

import "encoding/json"

// Query describes one request against the deployment: which measures to
// aggregate, how to group, filter and order them, and how much of the
// result to return. Optional fields left unset are omitted from the wire
// form entirely; Limit and Offset are pointers so an explicit 0 survives.
type Query struct {
	Measures       []string        `json:"measures"`
	TimeDimensions []TimeDimension `json:"timeDimensions,omitempty"`
	Dimensions     []string        `json:"dimensions,omitempty"`
	Segments       []string        `json:"segments,omitempty"`
	Filters        Filters         `json:"filters,omitempty"`
	Order          Order           `json:"order,omitempty"`
	Limit          *int            `json:"limit,omitempty"`
	Offset         *int            `json:"offset,omitempty"`
}

// MarshalJSON keeps the measures key present even when no measure is
// requested, matching the wire format.
func (q Query) MarshalJSON() ([]byte, error) {
	type alias Query
	out := alias(q)
	if out.Measures == nil {
		out.Measures = []string{}
	}
	return json.Marshal(out)
}

// TimeDimension aggregates measures over a date or datetime member,
// optionally bucketed by granularity and filtered by a date range.
// DateRange and CompareDateRange are mutually exclusive.
type TimeDimension struct {
	Dimension        string           `json:"dimension" validate:"required"`
	Granularity      Granularity      `json:"granularity,omitempty"`
	DateRange        *DateRange       `json:"dateRange,omitempty"`
	CompareDateRange CompareDateRange `json:"compareDateRange,omitempty"`
}
