package models

// Granularity is the time bucket used to group a time dimension. The
// constants cover the units CubeJS ships with; any other string passes
// through untouched, so custom granularities declared in the cube schema
// keep working.
type Granularity string

const (
	GranularityYear    Granularity = "year"
	GranularityQuarter Granularity = "quarter"
	GranularityMonth   Granularity = "month"
	GranularityWeek    Granularity = "week"
	GranularityDay     Granularity = "day"
	GranularityHour    Granularity = "hour"
	GranularityMinute  Granularity = "minute"
	GranularitySecond  Granularity = "second"
)
