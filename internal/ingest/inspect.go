// Package ingest checks uploaded business plans before they enter the
// evaluation flow: extension, size, PDF structure and page count.
package ingest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
)

// Document is the outcome of inspecting an uploaded plan.
type Document struct {
	PageCount int
	SizeBytes int
	SHA256Hex string
}

type Inspector struct {
	log  *slog.Logger
	conf *model.Configuration
}

func NewInspector(logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.Default()
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Inspector{log: logger, conf: conf}
}

// Inspect verifies that data is a readable PDF within the size limit and
// returns its page count and content hash. Rejections are wrapped in
// common.ErrInvalidInput.
func (i *Inspector) Inspect(filename string, data []byte) (Document, error) {
	start := time.Now()

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return Document{}, fmt.Errorf("extension %q not allowed: %w", ext, common.ErrInvalidInput)
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("empty document: %w", common.ErrInvalidInput)
	}
	if len(data) > constants.MaxDocumentBytes {
		return Document{}, fmt.Errorf("document exceeds %d bytes: %w", constants.MaxDocumentBytes, common.ErrInvalidInput)
	}

	rs := bytes.NewReader(data)
	if err := api.Validate(rs, i.conf); err != nil {
		i.log.Warn("ingest.inspect.invalid_pdf", "filename", filename, "error", err)
		return Document{}, fmt.Errorf("not a valid PDF: %w", common.ErrInvalidInput)
	}

	if _, err := rs.Seek(0, 0); err != nil {
		return Document{}, fmt.Errorf("rewind document: %w", err)
	}
	pages, err := api.PageCount(rs, i.conf)
	if err != nil {
		return Document{}, fmt.Errorf("count pages: %w", err)
	}
	if pages == 0 {
		return Document{}, fmt.Errorf("document has no pages: %w", common.ErrInvalidInput)
	}

	sum := sha256.Sum256(data)
	doc := Document{
		PageCount: pages,
		SizeBytes: len(data),
		SHA256Hex: hex.EncodeToString(sum[:]),
	}
	i.log.Info("ingest.inspect.ok",
		"filename", filename,
		"pages", doc.PageCount,
		"bytes", doc.SizeBytes,
		"elapsed_ms", time.Since(start).Milliseconds())
	return doc, nil
}

// ObjectKey derives a stable storage key for a plan upload. Content-addressed
// keys make repeat uploads of the same file land on the same object.
func ObjectKey(ownerID, sha256Hex string) string {
	return fmt.Sprintf("plans/%s/%s.pdf", ownerID, sha256Hex)
}
