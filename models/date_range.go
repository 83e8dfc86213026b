package models

import (
	"encoding/json"

	e "github.com/semlayer/go-cubejs/errors"
)

// DateRange filters a time dimension either by an absolute [start, end]
// pair of date or datetime strings, or by a relative phrase the server
// resolves, such as "last week". The two forms are mutually exclusive by
// construction.
type DateRange struct {
	start    string
	end      string
	relative string
}

// AbsoluteRange builds a date range from explicit start and end dates.
func AbsoluteRange(start, end string) *DateRange {
	return &DateRange{start: start, end: end}
}

// RelativeRange builds a date range from a relative phrase.
func RelativeRange(phrase string) *DateRange {
	return &DateRange{relative: phrase}
}

func (r DateRange) IsRelative() bool {
	return r.relative != ""
}

// Dates returns the absolute pair; both values are empty for a relative
// range.
func (r DateRange) Dates() (start, end string) {
	return r.start, r.end
}

func (r DateRange) Phrase() string {
	return r.relative
}

// MarshalJSON emits the relative form as a bare string and the absolute
// form as a two element array.
func (r DateRange) MarshalJSON() ([]byte, error) {
	if r.IsRelative() {
		return json.Marshal(r.relative)
	}
	return json.Marshal([2]string{r.start, r.end})
}

func (r *DateRange) UnmarshalJSON(b []byte) error {
	var phrase string
	if err := json.Unmarshal(b, &phrase); err == nil {
		*r = DateRange{relative: phrase}
		return nil
	}

	var dates []string
	if err := json.Unmarshal(b, &dates); err != nil {
		return e.NewValidationError("a date range must be a [start, end] pair or a relative phrase string")
	}
	if len(dates) != 2 {
		return e.NewValidationError("each date range entry must contain exactly 2 dates")
	}

	*r = DateRange{start: dates[0], end: dates[1]}
	return nil
}

// CompareDateRange lists date ranges whose results the server computes
// side by side. Entries keep their order; every array-form entry must be a
// [start, end] pair, single entries are phrase strings.
type CompareDateRange []DateRange
