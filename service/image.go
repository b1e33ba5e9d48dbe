package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// ErrImageMissing is returned when the multipart body has no file part
// with the requested field name.
var ErrImageMissing = errors.New("uploaded image missing")

// EncodeImage base64-encodes everything read from r.
func EncodeImage(r io.Reader) (string, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if _, err := io.Copy(enc, r); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return sb.String(), nil
}

// ReadUploadedImage walks the multipart stream to the first file part
// named field and returns its bytes base64-encoded. Parts are consumed
// straight from the request body so nothing is spooled to disk. No size,
// format or content-type checks are applied.
func ReadUploadedImage(mr *multipart.Reader, field string) (string, error) {
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", ErrImageMissing
		}
		if err != nil {
			return "", fmt.Errorf("failed to read multipart body: %w", err)
		}

		if part.FormName() != field || part.FileName() == "" {
			part.Close()
			continue
		}

		encoded, err := EncodeImage(part)
		part.Close()
		return encoded, err
	}
}
