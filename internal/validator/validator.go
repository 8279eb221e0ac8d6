// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"

	"coinbudget/internal/monthkey"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn installs the custom tags and type funcs on v.
func RegisterOn(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
	_ = v.RegisterValidation("month_key", validateMonthKey)
}

// decimalValue exposes decimals to numeric tags such as gt=0 and gte=0.
func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := d.Float64()
		return f
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return f
	}
	return nil
}

func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := monthkey.Normalize(fl.Field().String())
	return err == nil
}
