package domain

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrVersionNotFound  = errors.New("version not found")
	ErrNoVersions       = errors.New("no versions available")
	ErrValidation       = errors.New("validation failed")
	ErrGeneration       = errors.New("brd generation failed")
	ErrRender           = errors.New("export rendering failed")
)
