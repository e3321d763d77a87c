package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rpupo63/job-tracker-backend/models"
)

const maxRequestBodyBytes = 1 << 20

// requestValidate checks decoded request bodies. Field names in errors are the
// JSON names.
var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New(validator.WithRequiredStructEnabled())
	requestValidate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = requestValidate.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})
	_ = requestValidate.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return models.Priority(fl.Field().String()).Valid()
	})
}

// decodeAndValidate reads a JSON body into dst and runs the struct validations.
func decodeAndValidate(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		apiErr := errs.NewInvalidJSONError(err)
		apiErr.Details = "malformed request body"
		return apiErr
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := requestValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewBadRequestError(err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(fe.Field())
	case "status":
		return errs.NewInvalidFieldError(fe.Field(), "unknown status "+quote(fe.Value()))
	case "priority":
		return errs.NewInvalidFieldError(fe.Field(), "unknown priority "+quote(fe.Value()))
	default:
		return errs.NewInvalidFieldError(fe.Field(), "failed "+fe.Tag()+" check")
	}
}

func quote(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// uuidParam parses the named chi URL parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewMissingRequiredFieldError(name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError(name, "not a valid id")
	}
	return id, nil
}
