package models

import "github.com/mitchellh/mapstructure"

// ResultSet is the response to a load call: ordered rows mapping column
// names to string, number or nil values. Column sets vary by query, so no
// further schema is imposed; numbers arrive as float64, as decoded by
// encoding/json.
type ResultSet struct {
	Data []map[string]interface{} `json:"data"`
}

// Decode maps the rows onto out, a pointer to a slice of structs whose
// mapstructure tags (or field names) match the column names.
func (r *ResultSet) Decode(out interface{}) error {
	return mapstructure.Decode(r.Data, out)
}
