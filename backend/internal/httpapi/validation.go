package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// requestValidator wraps go-playground/validator/v10, matching the
// teacher's pkg/validation.Validator: a JSON-tag-aware field namer plus
// struct-tag validation, decoded errors rendered as an apperrors.AppError
// instead of the raw validator.ValidationErrors type.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// decodeAndValidate decodes r's JSON body into dst and runs struct-tag
// validation, matching the teacher's Validator.ValidateRequest.
func (rv *requestValidator) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err == io.EOF {
			return apperrors.NewBadRequestError("request body is empty")
		}
		return apperrors.NewBadRequestError("invalid JSON format").WithInternal(err)
	}
	if err := rv.v.Struct(dst); err != nil {
		return rv.formatValidationError(err)
	}
	return nil
}

func (rv *requestValidator) formatValidationError(err error) error {
	verrs := &apperrors.ValidationErrors{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			verrs.Add(fe.Field(), fieldErrorMessage(fe))
		}
	}
	return verrs.ToAppError()
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "gte":
		return fe.Field() + " must be >= " + fe.Param()
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}

// NewSimulationRequest is the POST /v1/sims request body (spec.md §6
// Runtime API's newSimulation). Tables are never accepted over HTTP — a
// server-side embedder injects those at startup (spec.md §6 content-table
// contract); HTTP callers only choose seed/archetype.
type NewSimulationRequest struct {
	Seed      string `json:"seed" validate:"required,min=1,max=128"`
	Archetype string `json:"archetype" validate:"required,oneof=Standard Frontier Maritime"`
	Debug     bool   `json:"debug"`
}

// AdvanceRequest is the POST /v1/sims/{id}/advance request body.
type AdvanceRequest struct {
	Hours int `json:"hours" validate:"required,gte=1,max=8760"`
}
