package photo

import "errors"

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrEmptyFile     = errors.New("no file provided")
	ErrEmptyFilename = errors.New("empty filename")
)
