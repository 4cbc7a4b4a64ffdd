package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures gin's binding validator: JSON field names in
// errors and the same custom rules the domain constraint tables use.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "uri", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		shared.RegisterRules(v)
	}
}

// ValidationDetails converts binding or domain validation failures into
// response details. It reports false for any other error.
func ValidationDetails(err error) ([]dto.ValidationDetail, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]dto.ValidationDetail, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Rule:    e.Tag(),
				Message: shared.RuleMessage(e),
			})
		}
		return details, true
	}

	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		details := make([]dto.ValidationDetail, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			details = append(details, dto.ValidationDetail{
				Field:   v.Field,
				Rule:    v.Rule,
				Message: v.Message,
			})
		}
		return details, true
	}

	return nil, false
}
