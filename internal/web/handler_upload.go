package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/labelstore"
	"github.com/vbonduro/cashdrop/internal/service"
)

// labelField is the multipart part carrying the register label photo.
const labelField = "label_image"

// allowedLabelTypes is the set of MIME types accepted for label uploads.
// net/http.DetectContentType handles JPEG, PNG, GIF and PDF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniffing standard (and
// therefore the stdlib) does not include a WebP signature.
var allowedLabelTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedLabelMIME returns the detected MIME type and true if the data is an
// accepted label format, or ("", false) otherwise.
func allowedLabelMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedLabelTypes[mime] {
		return mime, true
	}
	return "", false
}

// readLabelUpload returns the label_image part of a parsed multipart form,
// or nil when none was sent.
func (s *Server) readLabelUpload(r *http.Request) (*service.LabelUpload, error) {
	file, _, err := r.FormFile(labelField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Validationf("Failed to read label_image")
	}
	defer closeWithLog(file, "upload file", s.logger)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.Validationf("Failed to read label_image")
	}
	if len(data) == 0 {
		return nil, nil
	}
	mimeType, ok := allowedLabelMIME(data)
	if !ok {
		return nil, domain.Validationf("Unsupported label_image format")
	}
	return &service.LabelUpload{Data: data, MimeType: mimeType}, nil
}

func (s *Server) handleGetLabel(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	reader, mimeType, err := s.labelStore.Get(r.Context(), key)
	if errors.Is(err, labelstore.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("get label image failed", "storage_key", key, "error", err)
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "label reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write label image failed", "storage_key", key, "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
