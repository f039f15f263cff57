package errors

import "errors"

// Input errors indicate the caller supplied something derivation cannot use.
// Retrying with the same inputs cannot succeed.
var (
	// ErrEmptySecret indicates the master secret input was empty.
	ErrEmptySecret = errors.New("master secret must not be empty")

	// ErrAlgorithmParameter indicates the algorithm or its inputs are unusable,
	// such as an unknown algorithm tag or an empty identifier.
	ErrAlgorithmParameter = errors.New("invalid algorithm parameters")

	// ErrLengthOutOfRange indicates the requested password length is outside
	// the supported range.
	ErrLengthOutOfRange = errors.New("password length must be between 12 and 64")
)

// Catalog errors indicate issues with feature records.
var (
	// ErrDuplicateIdentifier indicates a feature with this identifier already exists.
	ErrDuplicateIdentifier = errors.New("feature identifier already exists")

	// ErrFeatureNotFound indicates the specified feature could not be located.
	ErrFeatureNotFound = errors.New("feature not found")
)

// Storage errors indicate failures while persisting or recovering the catalog.
var (
	// ErrAuthenticationFailure indicates an encrypted store could not be opened.
	// Wrong secret, truncation, and tampering are deliberately indistinguishable.
	ErrAuthenticationFailure = errors.New("authentication failed: wrong secret or corrupted store")

	// ErrSerialization indicates the catalog could not be encoded or decoded.
	ErrSerialization = errors.New("failed to serialize catalog")
)
