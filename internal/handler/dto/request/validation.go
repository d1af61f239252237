package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"dealhub/internal/domain/deal"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the deal tags on gin's validator and makes
// error field names follow the json names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("dealcategory", func(fl validator.FieldLevel) bool {
			_, err := deal.NewCategory(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("dealbadge", func(fl validator.FieldLevel) bool {
			if strings.TrimSpace(fl.Field().String()) == "" {
				return true
			}
			_, err := deal.NewBadge(fl.Field().String())
			return err == nil
		})
	})
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// Message turns a binding error into the client-facing text, e.g.
// "Missing required field: storeName".
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return "Missing required field: " + fieldPath(fe)
		}
		return "Invalid value for field: " + fieldPath(fe)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return "Invalid value for field: " + jsonPath(strings.Split(typeErr.Field, "."), typeErr.Field)
	}
	return "Invalid request body"
}

// fieldPath drops the root struct and embedded type names from the namespace.
func fieldPath(fe validator.FieldError) string {
	return jsonPath(strings.Split(fe.Namespace(), ".")[1:], fe.Field())
}

// jsonPath joins the json-named segments, skipping Go type names of embedded
// structs. json.UnmarshalTypeError reports those too.
func jsonPath(parts []string, fallback string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ".")
}
