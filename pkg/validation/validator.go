// Package validation is the structural input check the drainage engine
// relies on its callers to perform.
package validation

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	Soils     = []string{"sandy", "loamy", "clay"}
	Disasters = []string{"heavy_rainfall", "river_flood", "cyclone_surge"}
	Stages    = []string{"seedling", "vegetative", "flowering", "maturity"}
	Rainfalls = []string{"heavy", "moderate", "light"}
)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct{ v *validator.Validate }

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("soil", oneOfFold(Soils))
	_ = v.RegisterValidation("disaster", oneOfFold(Disasters))
	_ = v.RegisterValidation("cropstage", oneOfFold(Stages))
	return &Validator{v: v}
}

func (cv *Validator) Validate(i any) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, Describe(err))
	}
	return nil
}

// Describe flattens validator errors into one readable line.
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Namespace() + " failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return true
			}
		}
		return false
	}
}
