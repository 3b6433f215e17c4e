// Package tifferr defines the error taxonomy shared by every layer of the
// directory core: byte-order engine, registry, directory model, reader and
// writer. Every error the core returns to a caller is either one of these
// Kinds or a plain I/O error wrapped with Kind Io.
package tifferr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the error taxonomy. It is exhaustive: the core never
// returns an error of a kind not listed here.
type Kind int

const (
	// Io indicates the backing store's read/write/seek failed.
	Io Kind = iota
	// Type indicates a tag's on-disk type is not permitted by any
	// descriptor.
	Type
	// Count indicates a tag's count does not match a fixed-count
	// descriptor, or a scalar fetch saw count != 1.
	Count
	// Range indicates a value does not fit the requested in-memory type.
	Range
	// SizeSanity indicates count*elementSize would exceed the per-tag cap.
	SizeSanity
	// PerSampleDiffers indicates a per-sample tag had non-uniform values
	// where the caller requested a single scalar.
	PerSampleDiffers
	// Alloc indicates an allocation failure.
	Alloc
	// Loop indicates an IFD offset was already visited.
	Loop
	// MissingRequired indicates a structural tag is absent.
	MissingRequired
	// Unknown indicates a tag has no descriptor and anonymous
	// registration was disabled.
	Unknown
	// Locked indicates an attempt to mutate a tag whose descriptor
	// forbids change once set.
	Locked
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "Io"
	case Type:
		return "Type"
	case Count:
		return "Count"
	case Range:
		return "Range"
	case SizeSanity:
		return "SizeSanity"
	case PerSampleDiffers:
		return "PerSampleDiffers"
	case Alloc:
		return "Alloc"
	case Loop:
		return "Loop"
	case MissingRequired:
		return "MissingRequired"
	case Unknown:
		return "Unknown"
	case Locked:
		return "Locked"
	default:
		return "Invalid"
	}
}

// Structural kinds abort directory parsing outright; the remainder are
// recoverable per-tag warnings that cause the offending tag to be dropped.
func (k Kind) Structural() bool {
	switch k {
	case MissingRequired, Loop, Io, SizeSanity:
		return true
	default:
		return false
	}
}

// Error is the concrete error type returned by every public entry point in
// the core. Tag is 0 when the error isn't tied to a specific tag (e.g. a
// header-level Io error).
type Error struct {
	Kind    Kind
	Tag     uint16
	TagName string
	Op      string
	cause   error
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.TagName != "":
		msg = fmt.Sprintf("%s: %s (tag %s/%d)", e.Op, e.Kind, e.TagName, e.Tag)
	case e.Tag != 0:
		msg = fmt.Sprintf("%s: %s (tag %d)", e.Op, e.Kind, e.Tag)
	default:
		msg = fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause so errors.Is/As keep working across the
// pkg/errors boundary.
func (e *Error) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter so that "%+v" on an *Error prints the
// pkg/errors stack trace of its cause, when one was attached with Wrap.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.Error())
			if e.cause != nil {
				fmt.Fprintf(s, "\n%+v", e.cause)
			}
			return
		}
		fallthrough
	default:
		fmt.Fprint(s, e.Error())
	}
}

// New builds a bare Error with no cause.
func New(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

// WithTag attaches a tag id/name to an Error, returning the same pointer
// for chaining.
func (e *Error) WithTag(tag uint16, name string) *Error {
	e.Tag = tag
	e.TagName = name
	return e
}

// Wrap builds an Error of the given kind, wrapping cause with pkg/errors so
// that a stack trace is captured at the point of failure.
func Wrap(op string, kind Kind, cause error) *Error {
	if cause == nil {
		return New(op, kind)
	}
	return &Error{Op: op, Kind: kind, cause: errors.WithStack(cause)}
}

// Is reports whether err is a *Error of the given kind, unwrapping plain
// wrapping along the way.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
