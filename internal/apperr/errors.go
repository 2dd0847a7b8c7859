// Package apperr holds the failure taxonomy of a movie-alert run. Every stage
// error is classified into exactly one Kind before it reaches the pipeline.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindCredentialMissing
	KindHomeDirectoryUnresolvable
	KindRemoteCall
	KindGenreNotFound
	KindPersistedState
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindCredentialMissing:
		return "CredentialMissing"
	case KindHomeDirectoryUnresolvable:
		return "HomeDirectoryUnresolvable"
	case KindRemoteCall:
		return "RemoteCallError"
	case KindGenreNotFound:
		return "GenreNotFoundError"
	case KindPersistedState:
		return "PersistedStateError"
	case KindIO:
		return "IOError"
	default:
		return "Unknown"
	}
}

type Direction string

const (
	DirectionLoad Direction = "load"
	DirectionSave Direction = "save"
)

type Error struct {
	Kind      Kind
	Context   string
	Page      uint32
	Name      string
	Direction Direction
	Cause     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	switch e.Kind {
	case KindRemoteCall:
		msg += ": " + e.Context
	case KindGenreNotFound:
		msg += ": " + e.Name
	case KindPersistedState:
		msg += ": " + string(e.Direction)
	case KindIO:
		if e.Context != "" {
			msg += ": " + e.Context
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Diagnostic returns the lines shown to the user when a run fails.
func (e *Error) Diagnostic() []string {
	var lines []string
	switch e.Kind {
	case KindCredentialMissing:
		lines = []string{
			"TMDB API key TMD_API_V3 is not set in env or config",
			"TMDB API key can be obtained at https://developers.themoviedb.org/3/getting-started",
		}
	case KindHomeDirectoryUnresolvable:
		lines = []string{"home directory cannot be located"}
	case KindRemoteCall:
		lines = []string{"cannot get " + e.Context}
	case KindGenreNotFound:
		lines = []string{"id cannot be found for genre name: " + e.Name}
	case KindPersistedState:
		if e.Direction == DirectionSave {
			lines = []string{"cannot save to data file"}
		} else {
			lines = []string{"cannot load from data file"}
		}
	case KindIO:
		lines = []string{"IO error"}
		if e.Context != "" {
			lines[0] += " (" + e.Context + ")"
		}
	default:
		lines = []string{"unexpected error"}
	}
	if e.Cause != nil {
		lines = append(lines, "    "+e.Cause.Error())
	}
	return lines
}

func CredentialMissing() *Error {
	return &Error{Kind: KindCredentialMissing}
}

func HomeDirectoryUnresolvable(cause error) *Error {
	return &Error{Kind: KindHomeDirectoryUnresolvable, Cause: cause}
}

func RemoteCall(context string, cause error) *Error {
	return &Error{Kind: KindRemoteCall, Context: context, Cause: cause}
}

func RemoteCallPage(page uint32, cause error) *Error {
	return &Error{
		Kind:    KindRemoteCall,
		Context: fmt.Sprintf("upcoming movies for page %d", page),
		Page:    page,
		Cause:   cause,
	}
}

func GenreNotFound(name string) *Error {
	return &Error{Kind: KindGenreNotFound, Name: name}
}

func PersistedState(direction Direction, cause error) *Error {
	return &Error{Kind: KindPersistedState, Direction: direction, Cause: cause}
}

func IO(context string, cause error) *Error {
	return &Error{Kind: KindIO, Context: context, Cause: cause}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Classify returns err as an *Error, wrapping unclassified errors as IO.
func Classify(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return IO("", err)
}
