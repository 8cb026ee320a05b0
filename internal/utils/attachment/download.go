package attachment

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
)

// Disposition selects whether the browser shows or saves a served attachment.
type Disposition string

const (
	Inline     Disposition = "inline"
	Attachment Disposition = "attachment"
)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DownloadFilename returns "cv-<name>.<ext>" with whitespace runs in the name replaced by "-".
func DownloadFilename(name, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return fmt.Sprintf("cv-%s.%s", whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-"), ext)
}

// WriteDownload decodes uri into a pooled buffer and writes it to w with the
// matching headers. The buffer goes back to the pool on every return path.
func WriteDownload(w http.ResponseWriter, uri domain.DataURI, filename string, disposition Disposition) error {
	mimeType, payload, err := split(uri)
	if err != nil {
		return err
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	dec := base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload))
	if _, err := io.Copy(buf, dec); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}

	h := w.Header()
	h.Set("Content-Type", mimeType)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	if filename != "" {
		h.Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, filename))
	} else {
		h.Set("Content-Disposition", string(disposition))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	return nil
}
