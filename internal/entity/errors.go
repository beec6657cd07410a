package entity

import "errors"

var (
	// Compositor errors
	ErrTemplateDimensionMismatch = errors.New("template dimensions do not match configuration")
	ErrMissingZoneValue          = errors.New("missing value for required zone")
	ErrZoneOutOfBounds           = errors.New("zone is out of template bounds")
	ErrInvalidImageContent       = errors.New("image content is not decodable")
	ErrDuplicateZone             = errors.New("duplicate zone identifier")
	ErrUnknownFace               = errors.New("unknown font face")

	// Parser errors
	ErrEmptyMenu = errors.New("menu text is empty")

	// Repository errors
	ErrRenderNotFound = errors.New("render not found")
)
