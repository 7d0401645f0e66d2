package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissingPermissions
	KindNotFound
	KindCannotMessageUser
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingPermissions:
		return "missing_permissions"
	case KindNotFound:
		return "not_found"
	case KindCannotMessageUser:
		return "cannot_message_user"
	default:
		return "unknown"
	}
}

// PlatformError es lo que devuelve el transport cuando la plataforma rechaza una operación.
type PlatformError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

func KindOf(err error) ErrorKind {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

func IsMissingPermissions(err error) bool { return KindOf(err) == KindMissingPermissions }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
