// Package errs defines the error domain for the relay. The shape is derived
// from the errs package in github.com/gilcrest/diygoapi: errors carry an
// operation trace and a kind, and the kind decides the HTTP status.
package errs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Op describes an operation, usually as "type.method".
type Op string

// Kind groups errors by the class of failure.
type Kind uint8

const (
	Other           Kind = iota // unclassified, maps to 500
	Internal                    // internal inconsistency
	IO                          // upstream transport or read failure
	InvalidRequest              // missing or malformed request input
	Validation                  // input failed validation
	NotExist                    // resource does not exist
	Unauthenticated             // no credentials present
	Unauthorized                // credentials present but not allowed
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case IO:
		return "io"
	case InvalidRequest:
		return "invalid_request"
	case Validation:
		return "validation"
	case NotExist:
		return "not_exist"
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	}

	return "other"
}

// Error is the concrete error carried through the service layers. Message, when
// set, is what the client sees; Err is what gets logged.
type Error struct {
	Op      Op
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from its arguments: Op, Kind, error and string arguments
// are recognized, in any order. A string becomes the client-facing message.
func E(args ...any) error {
	e := &Error{}

	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Message = a
		case error:
			e.Err = a
		}
	}

	return e
}

// KindOf returns the first non-Other kind in the chain.
func KindOf(err error) Kind {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind != Other {
			return e.Kind
		}

		err = e.Err
		if err == nil {
			break
		}
	}

	return Other
}

// KindIs reports whether the error chain carries the given kind.
func KindIs(kind Kind, err error) bool {
	return KindOf(err) == kind
}

// OpStack returns the operation trace of the error chain, outermost first.
func OpStack(err error) []string {
	var ops []string

	var e *Error
	for errors.As(err, &e) {
		if e.Op != "" {
			ops = append(ops, string(e.Op))
		}

		err = e.Err
		if err == nil {
			break
		}
	}

	return ops
}

func httpStatus(kind Kind) int {
	switch kind {
	case InvalidRequest, Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unauthorized:
		return http.StatusForbidden
	case NotExist:
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// clientMessage walks the chain for the innermost message set via E.
func clientMessage(err error) string {
	msg := ""

	var e *Error
	for errors.As(err, &e) {
		if e.Message != "" {
			msg = e.Message
		}

		err = e.Err
		if err == nil {
			break
		}
	}

	if msg == "" {
		msg = "internal server error"
	}

	return msg
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPErrorResponse logs the error and writes the uniform error body
// {"error": "..."} with a status derived from the error kind. Unrecognized
// errors become a generic 500.
func HTTPErrorResponse(w http.ResponseWriter, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{Error: "internal server error"}

	var e *Error
	if errors.As(err, &e) {
		status = httpStatus(KindOf(err))
		body = errorResponse{Error: clientMessage(err)}

		log.Error().
			Err(err).
			Str("kind", KindOf(err).String()).
			Strs("ops", OpStack(err)).
			Int("status", status).
			Msg("request_failed")
	} else {
		log.Error().Err(err).Int("status", status).Msg("request_failed")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		log.Error().Err(encErr).Msg("encoding error response")
	}
}
