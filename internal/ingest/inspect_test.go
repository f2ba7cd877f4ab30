package ingest

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
)

func newTestInspector() *Inspector {
	return NewInspector(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInspectRejections(t *testing.T) {
	big := make([]byte, constants.MaxDocumentBytes+1)

	cases := []struct {
		name     string
		filename string
		data     []byte
	}{
		{"wrong extension", "plan.docx", []byte("%PDF-1.7")},
		{"no extension", "plan", []byte("%PDF-1.7")},
		{"empty file", "plan.pdf", nil},
		{"oversize file", "plan.pdf", big},
		{"not a pdf", "plan.pdf", []byte("just some text")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newTestInspector().Inspect(c.filename, c.data)
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Errorf("Inspect(%q) error = %v, want ErrInvalidInput", c.filename, err)
			}
		})
	}
}

func TestInspectAcceptsUppercaseExtension(t *testing.T) {
	// extension check passes; the payload then fails PDF validation, which
	// proves rejection happened past the extension gate
	_, err := newTestInspector().Inspect("PLAN.PDF", []byte("not a pdf"))
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "not a valid PDF") {
		t.Errorf("err = %v, want PDF-structure rejection, not extension rejection", err)
	}
}

func TestObjectKey(t *testing.T) {
	got := ObjectKey("owner-1", "abc123")
	if got != "plans/owner-1/abc123.pdf" {
		t.Errorf("ObjectKey = %q", got)
	}
}

func TestNormalizeExt(t *testing.T) {
	cases := map[string]string{".PDF": "pdf", ".pdf": "pdf", "pdf": "pdf", "": ""}
	for in, want := range cases {
		if got := constants.NormalizeExt(in); got != want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
