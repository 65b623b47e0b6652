// Package bindgen is a multi-target FFI binding generator.
//
// Each target language lives in its own backend package (koka, cgen).
// A backend's naming layer turns IR entities into the identifiers and
// type spellings of its language; the emission layer assembles those
// fragments into source files. The C backend (cgen) additionally owns
// the symbol names of the raw ABI surface, and every other backend
// delegates to it for cross-boundary names.
package bindgen

// Backend identifies a language backend.
//
// This is the language-agnostic surface shared by all backends; the
// interesting work happens in each backend's Formatter.
type Backend interface {
	// Language returns the backend's language name (e.g., "koka")
	Language() string

	// FileExtension returns the extension for generated files, without
	// the dot (e.g., "kk")
	FileExtension() string
}
