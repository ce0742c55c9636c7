// Package validate provides an optional diagnostic surface over an
// engine's stochastic tuning knobs, built the way the teacher wraps
// go-playground/validator around a struct (fhir/validation.FHIRValidator).
// It is never consulted on the engine's hot path — out-of-range tuning
// is always silently clamped there (spec.md §7); Check exists for
// callers who want to know whether clamping actually changed anything.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tuning mirrors an engine's clamped stochastic knobs.
type Tuning struct {
	CoverageLimit float32 `validate:"gte=0.2"`
	Diffusion0    float32 `validate:"gte=0.03,lte=100"`
	Diffusion1    float32 `validate:"gte=0.03,lte=100"`
	Iterations    int     `validate:"gte=0"`
}

var instance = validator.New()

// Errors collects field-level validation failures, following the
// teacher's Errors aggregate shape (fhir/validation.Errors).
type Errors struct {
	errs []string
}

// Error implements error.
func (e *Errors) Error() string {
	msg := "tuning out of bounds:"
	for _, s := range e.errs {
		msg += "\n  " + s
	}
	return msg
}

// HasErrors reports whether any field failed validation.
func (e *Errors) HasErrors() bool {
	return len(e.errs) > 0
}

// Check validates t against its struct tags, returning a non-nil
// *Errors describing every out-of-bounds field, or nil if t is
// entirely within bounds.
func Check(t Tuning) error {
	err := instance.Struct(t)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Errors{errs: []string{err.Error()}}
	}

	out := &Errors{}
	for _, fe := range verrs {
		out.errs = append(out.errs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return out
}
