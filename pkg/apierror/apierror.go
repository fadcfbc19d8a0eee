package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure from the remote collection API. The remote
// side reports everything as a message string; the client maps the two
// known no-change sentinels onto KindNoChange so callers compare kinds
// instead of strings.
type Kind int

const (
	KindRemote Kind = iota + 1
	KindNotFound
	KindNoChange
	KindValidation
)

// Remote sentinel messages for an update that produced no change.
const (
	SentinelCitaSinCambio  = "ERROR_CITA_SIN_CAMBIO"
	SentinelDatosSinCambio = "ERROR_DATOS_SIN_CAMBIO"
)

// Error carries the classification and the remote message verbatim.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an error of an explicit kind.
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// FromRemote classifies a failed API response by status and message.
func FromRemote(status int, message string, err error) *Error {
	switch {
	case message == SentinelCitaSinCambio || message == SentinelDatosSinCambio:
		return &Error{Kind: KindNoChange, Message: message, Err: err}
	case status == 404:
		return &Error{Kind: KindNotFound, Message: message, Err: err}
	default:
		return &Error{Kind: KindRemote, Message: message, Err: err}
	}
}

// KindOf extracts the kind from any error; plain errors are KindRemote.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRemote
}

// IsNoChange reports whether err is the no-op update rejection.
func IsNoChange(err error) bool {
	return KindOf(err) == KindNoChange
}
