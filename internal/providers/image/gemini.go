// Package image adapts external providers to the removal.Editor contract.
package image

import (
	"context"
	"fmt"

	"github.com/xpmourad/cutout/internal/imageref"
	"github.com/xpmourad/cutout/internal/providers/genai"
	"github.com/xpmourad/cutout/internal/removal"
)

// GeminiEditor edits images through the Gemini client. Absent results are
// passed through as an empty reference; the pipeline applies its own policy
// for a model that returns nothing.
type GeminiEditor struct {
	client *genai.Client
}

// NewGeminiEditor wraps a configured Gemini client.
func NewGeminiEditor(client *genai.Client) *GeminiEditor {
	return &GeminiEditor{client: client}
}

// EditImage performs one edit call and packages the returned bytes as a data
// URI. The model is asked for PNG output, but any transparency-capable type
// the response declares is preserved.
func (g *GeminiEditor) EditImage(ctx context.Context, ref imageref.Ref, instruction string) (imageref.Ref, error) {
	edited, err := g.client.EditImage(ctx, ref, instruction)
	if err != nil {
		return "", err
	}
	if edited == nil || len(edited.Data) == 0 {
		return "", nil
	}
	out, err := imageref.FromBytes(edited.Data, edited.MIME)
	if err != nil {
		return "", fmt.Errorf("package edited image: %w", err)
	}
	return out, nil
}

var _ removal.Editor = (*GeminiEditor)(nil)
