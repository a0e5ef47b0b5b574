// Package removal implements the background-removal pipeline: input
// validation, normalization into a common image reference, the single-shot
// call to the image editor, and classification of failures into user-facing
// messages.
package removal

import (
	"context"

	"github.com/xpmourad/cutout/internal/imageref"
)

// Input is the tagged union over the two mutually exclusive entry points:
// an image URL or an uploaded file.
type Input interface {
	isInput()
}

// URLInput carries a caller-supplied image URL.
type URLInput string

func (URLInput) isInput() {}

// FileInput carries the full bytes of an uploaded file together with its
// declared content type.
type FileInput struct {
	Data     []byte
	MIME     string
	Filename string
}

func (FileInput) isInput() {}

// Result is the outcome record for one submission. After processing, exactly
// one of ProcessedImageRef and ErrorMessage is set.
type Result struct {
	ID                string       `json:"id"`
	OriginalImageRef  imageref.Ref `json:"original_image_ref,omitempty"`
	ProcessedImageRef imageref.Ref `json:"processed_image_ref,omitempty"`
	ErrorMessage      string       `json:"error_message,omitempty"`
}

// Succeeded reports whether the submission produced a processed image.
func (r Result) Succeeded() bool {
	return r.ProcessedImageRef != "" && r.ErrorMessage == ""
}

// Editor is the boundary to the external AI collaborator. Implementations
// perform exactly one attempt: no retry, no timeout beyond ctx, no rate
// limiting. An empty returned reference with a nil error means the model
// produced no image; the pipeline treats that as a failure.
type Editor interface {
	EditImage(ctx context.Context, ref imageref.Ref, instruction string) (imageref.Ref, error)
}
