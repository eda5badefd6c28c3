package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidToken         = errors.New("invalid api token")
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotProjectOwner      = errors.New("caller does not own the project")
	ErrProjectNameRequired  = errors.New("project name is required")
	ErrModuleNotFound       = errors.New("module not found")
	ErrModuleNotEnabled     = errors.New("module not enabled for project")
	ErrModuleAlreadyEnabled = errors.New("module already enabled for project")
	ErrModuleNotAttached    = errors.New("module not attached to project")
	ErrRecordNotFound       = errors.New("record not found")
	ErrDataTypeRequired     = errors.New("data type is required")
	ErrFileRequired         = errors.New("file is required")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedMedia     = errors.New("unsupported media type")
	ErrBlobDisabled         = errors.New("blob storage is not configured")
)

// ValidationError carries every schema violation found in a payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
