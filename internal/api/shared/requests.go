package shared

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// ErrTypeMismatch is returned when data.type does not name the resource the
// endpoint serves.
var ErrTypeMismatch = errors.New("resource type mismatch")

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON member name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// An absent or null NullableFloat validates as absent.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		n, ok := field.Interface().(domain.NullableFloat)
		if !ok || !n.Set || n.Null {
			return nil
		}
		return n.Value
	}, domain.NullableFloat{})

	if err := v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register calendardate validation: %v", err))
	}

	return v
}

// DecodeJSON decodes the request body into the given value.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return err
	}
	return nil
}

// DecodeResource reads a JSON:API request document whose data.type must be
// resourceType. Malformed bodies yield a *domain.ValidationError; a type
// that names another resource yields ErrTypeMismatch.
func DecodeResource[A any](
	w http.ResponseWriter,
	r *http.Request,
	resourceType string,
) (*jsonapi.RequestResource[A], error) {
	var doc jsonapi.RequestDocument[A]
	if err := DecodeJSON(w, r, &doc); err != nil {
		return nil, decodeError(err)
	}
	if doc.Data == nil {
		return nil, domain.NewValidationError("data is required")
	}
	if doc.Data.Type == "" {
		return nil, domain.NewValidationError("data.type is required")
	}
	if doc.Data.Type != resourceType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, resourceType, doc.Data.Type)
	}
	return doc.Data, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return domain.NewValidationError(fmt.Sprintf("%s has an invalid type", field))
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return domain.NewValidationError(fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit))
	}

	if errors.Is(err, io.EOF) {
		return domain.NewValidationError("request body is required")
	}
	return domain.NewValidationError("request body must be a valid JSON:API document")
}

// ValidateRequest validates v and returns one detail per failed rule, or
// nil when v is valid.
func ValidateRequest(v any) *domain.ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("request body is invalid")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldMessage(fe))
	}
	return domain.NewValidationError(details...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		return field + " must not be empty"
	case "calendardate":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
