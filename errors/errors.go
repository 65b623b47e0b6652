// Package errors provides error handling for bindgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints on generator diagnostics
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for binding authors
//	return errors.WithHint(err, "rename the type in the binding definition")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnsupportedPrimitive) {
//	    // abort the generation run
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap

	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the fatal generation tier.
// Both conditions are static properties of the IR and configuration:
// aborting the run and fixing the binding definition is the only remedy,
// so there is no retry path. Use these with errors.Is().
var (
	// ErrUnsupportedPrimitive indicates a primitive type that the target
	// language cannot represent (128-bit integers). Never silently
	// truncated; every mapping table fails with this sentinel.
	ErrUnsupportedPrimitive = New("unsupported primitive type")

	// ErrDisallowedTypeName indicates a resolved type name that collides
	// with a built-in core type of the target language. No automatic
	// rewrite is safe here (suffixing would shadow core semantics), so
	// the binding author must rename the type upstream.
	ErrDisallowedTypeName = New("disallowed type name")
)
