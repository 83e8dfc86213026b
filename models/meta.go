package models

// Meta is the deployment catalog returned by the meta endpoint.
type Meta struct {
	Cubes []CubeMeta `json:"cubes"`
}

// CubeMeta describes one cube exposed by the schema.
type CubeMeta struct {
	Name       string       `json:"name"`
	Title      string       `json:"title,omitempty"`
	Measures   []MemberMeta `json:"measures,omitempty"`
	Dimensions []MemberMeta `json:"dimensions,omitempty"`
	Segments   []MemberMeta `json:"segments,omitempty"`
}

// MemberMeta describes one measure, dimension or segment of a cube.
type MemberMeta struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	ShortTitle string `json:"shortTitle,omitempty"`
	Type       string `json:"type,omitempty"`
}
