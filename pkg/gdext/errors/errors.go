// Package errors defines the sentinel errors of the manifest generator.
package errors

import "errors"

var (
	// Configuration errors
	ErrManifestPath = errors.New("manifest path must lead to a .gdextension file")
	ErrNoLibraries  = errors.New("manifest resolved zero library entries")

	// Serialization errors
	ErrEncode = errors.New("manifest encoding failed")

	// I/O errors
	ErrSourceRead    = errors.New("source file read failed")
	ErrManifestWrite = errors.New("manifest write failed")
	ErrIconCopy      = errors.New("icon copy failed")
)
