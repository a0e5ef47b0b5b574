package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/xpmourad/cutout/internal/middleware"
	"github.com/xpmourad/cutout/internal/removal"
)

// maxFormBytes caps the parsed request body. It sits well above the 5 MiB
// image ceiling so oversized uploads reach the validator and get the proper
// size message instead of a blunt 413.
const maxFormBytes = 32 << 20

// CreateRemoval accepts one submission carrying either an image_url field or
// an image file (mutually exclusive) and returns the Processing Result. The
// Result is the outcome record: validation and external failures arrive as
// its error_message with HTTP 200, while 4xx is reserved for requests the
// server could not parse at all.
func (a *App) CreateRemoval(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid form payload")
			return
		}
	}

	a.Logger.Debug().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("locale", middleware.LocaleFromContext(r.Context())).
		Msg("handlers: removal submitted")

	input, readFailed := a.submissionInput(r)
	var res removal.Result
	if readFailed {
		res = removal.Result{ID: uuid.NewString(), ErrorMessage: removal.MsgFileReadFailed}
	} else {
		res = a.Removals.Process(r.Context(), input)
	}

	a.History.Add(res)
	a.json(w, http.StatusOK, res)
}

// ListRemovals returns recent results, newest first.
func (a *App) ListRemovals(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": a.History.Recent()})
}

// submissionInput extracts the submitted image from the form. The URL field
// wins when both entry points are present. readFailed reports an upload whose
// byte stream could not be fully consumed, which is distinct from validation.
func (a *App) submissionInput(r *http.Request) (input removal.Input, readFailed bool) {
	if url := strings.TrimSpace(r.FormValue("image_url")); url != "" {
		return removal.URLInput(url), false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			// Neither field supplied; fails URL validation downstream.
			return removal.URLInput(""), false
		}
		return nil, true
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("handlers: failed to read uploaded file")
		return nil, true
	}

	declared := header.Header.Get("Content-Type")
	if declared == "" {
		declared = http.DetectContentType(data)
	}
	if parsed, _, err := mime.ParseMediaType(declared); err == nil {
		declared = parsed
	}

	return removal.FileInput{
		Data:     data,
		MIME:     declared,
		Filename: header.Filename,
	}, false
}
