package removal

import (
	"strings"
	"testing"

	"github.com/xpmourad/cutout/internal/imageref"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "valid https", raw: "https://example.com/cat.jpg", ok: true},
		{name: "valid http", raw: "http://example.com/dog.png", ok: true},
		{name: "empty field", raw: "", ok: false},
		{name: "relative path", raw: "/cat.jpg", ok: false},
		{name: "missing scheme", raw: "example.com/cat.jpg", ok: false},
		{name: "unsupported scheme", raw: "file:///etc/passwd", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(URLInput(tt.raw))
			if v.OK != tt.ok {
				t.Fatalf("Validate(%q).OK = %v, want %v", tt.raw, v.OK, tt.ok)
			}
			if !tt.ok && v.Message() != MsgInvalidURL {
				t.Fatalf("message mismatch: got %q want %q", v.Message(), MsgInvalidURL)
			}
		})
	}
}

func TestValidateFileAccepts(t *testing.T) {
	v := Validate(FileInput{Data: []byte{1, 2, 3}, MIME: "image/png"})
	if !v.OK {
		t.Fatalf("expected acceptance, got reasons %v", v.Reasons)
	}
	if len(v.Reasons) != 0 {
		t.Fatalf("accepted input must carry no reasons, got %v", v.Reasons)
	}
}

func TestValidateFileEmpty(t *testing.T) {
	v := Validate(FileInput{Data: nil, MIME: "image/png"})
	if v.OK {
		t.Fatal("expected rejection of empty file")
	}
	if !strings.Contains(v.Message(), MsgFileEmpty) {
		t.Fatalf("message %q does not mention empty file", v.Message())
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	big := make([]byte, imageref.MaxBytes+1)
	v := Validate(FileInput{Data: big, MIME: "image/png"})
	if v.OK {
		t.Fatal("expected rejection of oversized file")
	}
	if !strings.Contains(v.Message(), "5MB") {
		t.Fatalf("message %q does not mention the 5MB limit", v.Message())
	}
}

func TestValidateFileOversizedRejectedForAnyMIME(t *testing.T) {
	big := make([]byte, imageref.MaxBytes+1)
	for _, mime := range []string{"image/jpeg", "image/png", "image/webp", "image/gif"} {
		v := Validate(FileInput{Data: big, MIME: mime})
		if v.OK {
			t.Fatalf("oversized %s file accepted", mime)
		}
	}
}

func TestValidateFileUnsupportedType(t *testing.T) {
	v := Validate(FileInput{Data: []byte{1}, MIME: "image/gif"})
	if v.OK {
		t.Fatal("expected rejection of unsupported type")
	}
	if !strings.Contains(v.Message(), MsgFileUnsupported) {
		t.Fatalf("message %q does not mention supported types", v.Message())
	}
}

func TestValidateFileCollectsAllReasons(t *testing.T) {
	// Empty AND unsupported: both rules must report, no short-circuit.
	v := Validate(FileInput{Data: nil, MIME: "text/plain"})
	if v.OK {
		t.Fatal("expected rejection")
	}
	if len(v.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", v.Reasons)
	}
	msg := v.Message()
	if !strings.Contains(msg, MsgFileEmpty) || !strings.Contains(msg, MsgFileUnsupported) {
		t.Fatalf("joined message incomplete: %q", msg)
	}
}
