package posting

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	data := docx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Backend Engineer</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Go &amp; PostgreSQL</w:t><w:tab/><w:t>Madrid</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	got, err := ExtractText("offer.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nGo & PostgreSQL Madrid", got)
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("offer.docx", buf.Bytes())
	assert.Error(t, err)
}

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("offer.txt", []byte("  Go   developer\r\n\r\n\r\nRemote  "))
	require.NoError(t, err)
	assert.Equal(t, "Go developer\nRemote", got)
}

func TestExtractTextRejects(t *testing.T) {
	_, err := ExtractText("offer.odt", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ExtractText("offer.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.pdf"))
	assert.True(t, Supported("a.Docx"))
	assert.True(t, Supported("a.txt"))
	assert.False(t, Supported("a.exe"))
}

func TestReadLimited(t *testing.T) {
	b, err := ReadLimited(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(b))

	_, err = ReadLimited(strings.NewReader("123456"), 5)
	assert.Error(t, err)
}
