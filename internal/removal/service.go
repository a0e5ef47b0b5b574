package removal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/xpmourad/cutout/internal/imageref"
	"github.com/xpmourad/cutout/internal/infra"
)

// Instruction is the fixed prompt sent with every submission. The model is
// asked for PNG output because it supports transparency.
const Instruction = "Segment the main subject of this image and remove the background completely. " +
	"Make the background fully transparent and output the result as a PNG image. " +
	"Preserve fine subject details such as hair and keep the edges clean."

// ErrNoImage signals an editor call that completed without producing an
// image; the pipeline treats it like any other external failure.
var ErrNoImage = errors.New("model did not return an image")

// Service runs the submission pipeline: validate, normalize, invoke the
// editor once, and classify any failure into the Result's error message.
type Service struct {
	editor Editor
	logger *infra.Logger
}

// NewService wires the pipeline to an editor.
func NewService(editor Editor, logger *infra.Logger) *Service {
	return &Service{editor: editor, logger: logger}
}

// Process executes one submission end to end and always returns a populated
// Result: a fresh correlation ID plus either a processed image reference or
// an error message, never both. Failures of any shape, including panics
// escaping the editor, are captured into the Result rather than propagated.
func (s *Service) Process(ctx context.Context, in Input) (res Result) {
	id := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("submission_id", id).
				Interface("panic", r).
				Msg("removal: editor panicked")
			res = Result{ID: id, OriginalImageRef: res.OriginalImageRef, ErrorMessage: Classify(r)}
		}
	}()

	if v := Validate(in); !v.OK {
		s.logger.Debug().
			Str("submission_id", id).
			Strs("reasons", v.Reasons).
			Msg("removal: submission rejected")
		return Result{ID: id, OriginalImageRef: echoInput(in), ErrorMessage: v.Message()}
	}

	original, err := normalize(in)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("submission_id", id).
			Msg("removal: failed to normalize upload")
		return Result{ID: id, OriginalImageRef: echoInput(in), ErrorMessage: MsgFileReadFailed}
	}
	res.OriginalImageRef = original

	processed, err := s.editor.EditImage(ctx, original, Instruction)
	if err == nil && processed == "" {
		err = ErrNoImage
	}
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("submission_id", id).
			Msg("removal: edit failed")
		return Result{ID: id, OriginalImageRef: original, ErrorMessage: Classify(err)}
	}

	s.logger.Info().
		Str("submission_id", id).
		Msg("removal: background removed")
	return Result{ID: id, OriginalImageRef: original, ProcessedImageRef: processed}
}

// normalize converts a validated input into the common image reference both
// entry points share downstream.
func normalize(in Input) (imageref.Ref, error) {
	switch in := in.(type) {
	case URLInput:
		return imageref.Ref(in), nil
	case FileInput:
		return imageref.FromBytes(in.Data, in.MIME)
	default:
		return "", fmt.Errorf("removal: unsupported input %T", in)
	}
}

// echoInput returns a best-effort reference to show alongside a rejected
// submission. File uploads that failed validation have no usable reference.
func echoInput(in Input) imageref.Ref {
	if u, ok := in.(URLInput); ok {
		return imageref.Ref(u)
	}
	return ""
}
