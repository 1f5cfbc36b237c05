// Package errors provides structured error reporting for skinny.
//
// Core operations on containers never fail; errors only come from the edges
// of the library: reading skin files, watching them, and callbacks that
// panic while a transition is running. Those are wrapped in [SkinnyError]
// or [PanicError] and either returned or sent to the global [ErrorHandler].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindConfig is a skin file that could not be read.
	KindConfig
	// KindParsing is malformed skin file content.
	KindParsing
	// KindWatch is a failure of the skin file watcher.
	KindWatch
	// KindAnimation is a transition that could not be set up or driven.
	KindAnimation
	KindPanic
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindConfig:    "config",
	KindParsing:   "parsing",
	KindWatch:     "watch",
	KindAnimation: "animation",
	KindPanic:     "panic",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// SkinnyError is an error from operation Op, such as "skin.Load", with the
// file it concerns in Path when there is one.
type SkinnyError struct {
	Op        string
	Kind      ErrorKind
	Path      string
	Err       error
	Timestamp time.Time
}

func (e *SkinnyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *SkinnyError) Unwrap() error { return e.Err }

// New returns a SkinnyError stamped with the current time.
func New(op string, kind ErrorKind, path string, err error) *SkinnyError {
	return &SkinnyError{Op: op, Kind: kind, Path: path, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first SkinnyError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var se *SkinnyError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// PanicError is a panic recovered in Op. StackTrace is captured at the
// point of recovery.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// ErrorHandler receives errors that have no caller to return to.
type ErrorHandler interface {
	HandleError(err *SkinnyError)
	HandlePanic(err *PanicError)
}
