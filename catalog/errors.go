package catalog

import "errors"

var (
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidParent     = errors.New("parent category is not one of men, women, kid")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrInvalidCategory   = errors.New("sub-category does not exist under the given parent")
	ErrInvalidPrice      = errors.New("invalid price or discounted price values")
	ErrNameTooLong       = errors.New("category name exceeds 50 characters")
	ErrInvalidSection    = errors.New("section is not a known slide placement")
	ErrUploadFailed      = errors.New("image upload failed")
	ErrNotFound          = errors.New("not found")
)
