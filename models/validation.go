package models

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	e "github.com/semlayer/go-cubejs/errors"
)

var (
	inputValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	inputValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(inputValidator, trans)

	_ = inputValidator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})
}

// Validate checks the query invariants eagerly, walking nested time
// dimensions and the filter tree, so malformed queries fail before any
// network call. Violations are reported as a ValidationError naming the
// broken invariant.
func (q *Query) Validate() error {
	if err := inputValidator.Struct(q); err != nil {
		return e.TranslateValidatorError(err, trans)
	}

	for i := range q.TimeDimensions {
		if err := q.TimeDimensions[i].Validate(); err != nil {
			return err
		}
	}

	return validateFilters(q.Filters)
}

// Validate checks that the dimension is set and that dateRange and
// compareDateRange are not combined.
func (t *TimeDimension) Validate() error {
	if err := inputValidator.Struct(t); err != nil {
		return e.TranslateValidatorError(err, trans)
	}

	if t.DateRange != nil && len(t.CompareDateRange) > 0 {
		return e.NewValidationError("cannot provide both dateRange and compareDateRange")
	}

	return nil
}

func (f Filter) Validate() error {
	if err := inputValidator.Struct(f); err != nil {
		return e.TranslateValidatorError(err, trans)
	}
	return nil
}

func (l LogicalOperator) Validate() error {
	if err := validateFilters(l.Or); err != nil {
		return err
	}
	return validateFilters(l.And)
}

func validateFilters(filters Filters) error {
	for _, item := range filters {
		var err error
		switch node := item.(type) {
		case Filter:
			err = node.Validate()
		case *Filter:
			err = node.Validate()
		case LogicalOperator:
			err = node.Validate()
		case *LogicalOperator:
			err = node.Validate()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
