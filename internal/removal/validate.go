package removal

import (
	"strings"

	"github.com/xpmourad/cutout/internal/imageref"
)

// Validation messages surfaced to the submitter.
const (
	MsgInvalidURL      = "Invalid URL format."
	MsgFileEmpty       = "File is empty."
	MsgFileTooLarge    = "File size must be less than 5MB."
	MsgFileUnsupported = "File must be a JPEG, PNG, or WebP image."
	MsgFileReadFailed  = "Failed to read uploaded file."
)

// Validation is the outcome of checking one submission: either accepted or
// rejected with every applicable reason.
type Validation struct {
	OK      bool
	Reasons []string
}

// Message joins the collected reasons into the single string reported back
// to the submitter.
func (v Validation) Message() string {
	return strings.Join(v.Reasons, " ")
}

// Validate applies every rule for the given input type before returning; no
// rule short-circuits the others.
func Validate(in Input) Validation {
	switch in := in.(type) {
	case URLInput:
		return validateURL(string(in))
	case FileInput:
		return validateFile(in)
	default:
		return Validation{Reasons: []string{MsgInvalidURL}}
	}
}

func validateURL(raw string) Validation {
	if !imageref.ValidURL(raw) {
		return Validation{Reasons: []string{MsgInvalidURL}}
	}
	return Validation{OK: true}
}

func validateFile(in FileInput) Validation {
	var reasons []string
	if len(in.Data) == 0 {
		reasons = append(reasons, MsgFileEmpty)
	}
	if len(in.Data) > imageref.MaxBytes {
		reasons = append(reasons, MsgFileTooLarge)
	}
	if !imageref.AllowedMIME(in.MIME) {
		reasons = append(reasons, MsgFileUnsupported)
	}
	if len(reasons) > 0 {
		return Validation{Reasons: reasons}
	}
	return Validation{OK: true}
}
