package attachment

import (
	"testing"

	"github.com/SscSPs/employee_directory_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"application/pdf", "pdf"},
		{"application/msword", "doc"},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx"},
		{"image/png", "pdf"},
		{"", "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionFor(tt.mimeType))
		})
	}
}

func TestDecode(t *testing.T) {
	decoded, err := Decode("data:application/msword;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), decoded.Bytes)
	assert.Equal(t, "application/msword", decoded.MIMEType)
	assert.Equal(t, "doc", decoded.Extension)
}

func TestDecode_Malformed(t *testing.T) {
	inputs := []domain.DataURI{
		"",
		"hello",
		"data:application/pdf;base64",
		"data:application/pdf,aGVsbG8=",
		"data:;base64,aGVsbG8=",
		"data:application/pdf;base64,***",
	}
	for _, in := range inputs {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrMalformedDataURI, "input %q", in)
	}
}

func TestEncode_DeclaredType(t *testing.T) {
	uri := Encode([]byte("hello"), "application/msword")
	assert.Equal(t, domain.DataURI("data:application/msword;base64,aGVsbG8="), uri)
}

func TestEncode_SniffsGenericType(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")

	uri := Encode(pdf, "application/octet-stream")

	mimeType, err := MIMEType(uri)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mimeType)

	decoded, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, pdf, decoded.Bytes)
	assert.Equal(t, "pdf", decoded.Extension)
}

func TestEncode_DropsTypeParameters(t *testing.T) {
	uri := Encode([]byte("plain"), "")

	mimeType, err := MIMEType(uri)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mimeType)
}
