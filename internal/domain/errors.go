package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrModelNotLoaded is returned internally when no model artifact is available
	ErrModelNotLoaded = errors.New("model not loaded")

	// ErrMissingColumns is returned when a training dataset lacks required columns
	ErrMissingColumns = errors.New("dataset is missing required columns")

	// ErrEmptyDataset is returned when a training dataset has no usable rows
	ErrEmptyDataset = errors.New("dataset contains no rows")

	// ErrArtifactNotFound is returned when the model artifact file does not exist
	ErrArtifactNotFound = errors.New("model artifact not found")

	// ErrImageFetch is returned when an image cannot be fetched or decoded.
	// Callers treat it as a silent per-URL skip, never as a request failure.
	ErrImageFetch = errors.New("image fetch failed")
)
