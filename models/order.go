package models

import (
	"bytes"
	"encoding/json"

	e "github.com/semlayer/go-cubejs/errors"
)

// Direction orders a member ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// OrderBy orders the result rows by one member.
type OrderBy struct {
	Member    string
	Direction Direction
}

// Order lists member/direction pairs. The wire format is a JSON object, so
// the slice keeps the insertion order that controls tie-break priority.
type Order []OrderBy

func (o Order) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.Member)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(string(entry.Direction))
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object tokens one by one, the only way
// encoding/json exposes the key order.
func (o *Order) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return e.NewValidationError("order must be an object of member to direction entries")
	}

	entries := make(Order, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		member, ok := keyTok.(string)
		if !ok {
			return e.NewValidationError("order keys must be member names")
		}

		var direction string
		if err := dec.Decode(&direction); err != nil {
			return err
		}

		entries = append(entries, OrderBy{Member: member, Direction: Direction(direction)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = entries
	return nil
}
