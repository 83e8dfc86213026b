package models

// Operator names the comparison a Filter applies to its member. The
// constants list the operators CubeJS documents; the type stays an open
// string so future server-side additions pass through unchanged instead of
// failing validation.
type Operator string

const (
	OperatorEquals         Operator = "equals"
	OperatorNotEquals      Operator = "notEquals"
	OperatorContains       Operator = "contains"
	OperatorNotContains    Operator = "notContains"
	OperatorStartsWith     Operator = "startsWith"
	OperatorEndsWith       Operator = "endsWith"
	OperatorGt             Operator = "gt"
	OperatorGte            Operator = "gte"
	OperatorLt             Operator = "lt"
	OperatorLte            Operator = "lte"
	OperatorSet            Operator = "set"
	OperatorNotSet         Operator = "notSet"
	OperatorInDateRange    Operator = "inDateRange"
	OperatorNotInDateRange Operator = "notInDateRange"
	OperatorBeforeDate     Operator = "beforeDate"
	OperatorAfterDate      Operator = "afterDate"
	OperatorMeasureFilter  Operator = "measureFilter"
)
