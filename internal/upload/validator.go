// Package upload validates tax document attachments. Files are buffered in
// memory per request behind a fixed size ceiling and discarded after the
// response; only the descriptor metadata survives.
package upload

import (
	"mime"
	"mime/multipart"

	"github.com/taxsim/tax-estimator/internal/domain"
	"github.com/taxsim/tax-estimator/internal/errors"
)

// Limits bounds what a single request may attach.
type Limits struct {
	MaxFileBytes int64
	MaxFiles     int
	AllowedTypes []string
}

// DefaultLimits returns the standard attachment limits: five files of up to
// 5 MB each, documents and images only.
func DefaultLimits() Limits {
	return Limits{
		MaxFileBytes: 5 << 20,
		MaxFiles:     5,
		AllowedTypes: []string{
			"application/pdf",
			"image/jpeg",
			"image/png",
			"image/gif",
			"text/plain",
		},
	}
}

// Validator checks uploaded files against the configured limits.
type Validator struct {
	limits Limits
}

// NewValidator creates a validator. Zero-valued limits fields are filled
// from DefaultLimits.
func NewValidator(limits Limits) *Validator {
	defaults := DefaultLimits()
	if limits.MaxFileBytes <= 0 {
		limits.MaxFileBytes = defaults.MaxFileBytes
	}
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = defaults.MaxFiles
	}
	if len(limits.AllowedTypes) == 0 {
		limits.AllowedTypes = defaults.AllowedTypes
	}
	return &Validator{limits: limits}
}

// Validate checks every file header and returns one descriptor per accepted
// file. The whole batch is rejected on the first oversized or unsupported
// file; an empty or nil batch is fine and yields no descriptors.
func (v *Validator) Validate(files []*multipart.FileHeader) ([]domain.DocumentDescriptor, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > v.limits.MaxFiles {
		return nil, errors.Newf(errors.TypeUpload, "too many files: limit is %d per request", v.limits.MaxFiles)
	}

	descriptors := make([]domain.DocumentDescriptor, 0, len(files))
	for _, file := range files {
		if file.Size > v.limits.MaxFileBytes {
			return nil, errors.Newf(errors.TypeUpload, "file %q exceeds the %d byte limit", file.Filename, v.limits.MaxFileBytes)
		}
		mimetype := contentType(file)
		if !v.allowed(mimetype) {
			return nil, errors.Newf(errors.TypeUpload, "file %q has unsupported type %q", file.Filename, mimetype)
		}
		descriptors = append(descriptors, domain.DocumentDescriptor{
			Filename: file.Filename,
			Mimetype: mimetype,
			Size:     file.Size,
		})
	}
	return descriptors, nil
}

func (v *Validator) allowed(mimetype string) bool {
	for _, t := range v.limits.AllowedTypes {
		if t == mimetype {
			return true
		}
	}
	return false
}

// contentType extracts the media type from the part header, stripping any
// parameters such as charset.
func contentType(file *multipart.FileHeader) string {
	raw := file.Header.Get("Content-Type")
	if raw == "" {
		return "application/octet-stream"
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return raw
	}
	return mediaType
}
