package attachment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/gabriel-vasile/mimetype"
)

// ErrMalformedDataURI is returned when a stored attachment is not a base64 data URI.
var ErrMalformedDataURI = errors.New("malformed data URI")

const (
	dataPrefix   = "data:"
	base64Suffix = ";base64"

	// DefaultExtension is used when the MIME type does not name a known document format.
	DefaultExtension = "pdf"
)

// Decoded is a data URI split into its binary payload and metadata.
type Decoded struct {
	Bytes     []byte
	MIMEType  string
	Extension string
}

// Decode parses a data URI of the form "data:<mime>;base64,<payload>".
func Decode(uri domain.DataURI) (*Decoded, error) {
	mimeType, payload, err := split(uri)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}
	return &Decoded{
		Bytes:     data,
		MIMEType:  mimeType,
		Extension: ExtensionFor(mimeType),
	}, nil
}

// MIMEType returns the declared MIME type of a data URI without decoding the payload.
func MIMEType(uri domain.DataURI) (string, error) {
	mimeType, _, err := split(uri)
	return mimeType, err
}

func split(uri domain.DataURI) (string, string, error) {
	s := string(uri)
	if !strings.HasPrefix(s, dataPrefix) {
		return "", "", fmt.Errorf("%w: missing %q prefix", ErrMalformedDataURI, dataPrefix)
	}
	header, payload, ok := strings.Cut(s[len(dataPrefix):], ",")
	if !ok {
		return "", "", fmt.Errorf("%w: missing payload separator", ErrMalformedDataURI)
	}
	if !strings.HasSuffix(header, base64Suffix) {
		return "", "", fmt.Errorf("%w: payload is not base64", ErrMalformedDataURI)
	}
	mimeType, _, _ := strings.Cut(strings.TrimSuffix(header, base64Suffix), ";")
	if mimeType == "" {
		return "", "", fmt.Errorf("%w: missing MIME type", ErrMalformedDataURI)
	}
	return mimeType, payload, nil
}

// ExtensionFor infers a download extension from a MIME type.
func ExtensionFor(mimeType string) string {
	switch {
	case mimeType == "application/pdf":
		return "pdf"
	case mimeType == "application/msword":
		return "doc"
	case strings.Contains(mimeType, "wordprocessingml"):
		return "docx"
	default:
		return DefaultExtension
	}
}

// Encode builds a data URI from raw bytes. When the declared type is missing
// or generic the type is sniffed from the content.
func Encode(data []byte, declaredType string) domain.DataURI {
	mimeType := normalizeType(declaredType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = normalizeType(mimetype.Detect(data).String())
	}
	var sb strings.Builder
	sb.Grow(len(dataPrefix) + len(mimeType) + len(base64Suffix) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(dataPrefix)
	sb.WriteString(mimeType)
	sb.WriteString(base64Suffix)
	sb.WriteByte(',')
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return domain.DataURI(sb.String())
}

// normalizeType drops parameters such as "; charset=utf-8" so the type fits the data URI header.
func normalizeType(t string) string {
	t, _, _ = strings.Cut(t, ";")
	return strings.ToLower(strings.TrimSpace(t))
}
