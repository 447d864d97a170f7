package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal but valid DOCX archive with one <w:p>
// paragraph per entry.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDOCXText(t *testing.T) {
	data := buildDocx(t, "Client: Jane Doe, budget $50,000", "Kitchen and bathroom remodel")

	text, pages, err := extractDOCXText(data)
	require.NoError(t, err)
	assert.Equal(t, "Client: Jane Doe, budget $50,000\nKitchen and bathroom remodel", text)
	assert.Equal(t, 2, pages)
}

func TestExtractDOCXTextSplitRuns(t *testing.T) {
	// Word splits a paragraph across several runs; they concatenate without
	// separators inside the paragraph.
	var body bytes.Buffer
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	body.WriteString(`<w:p><w:r><w:t>Client: </w:t></w:r><w:r><w:t>Jane Doe</w:t></w:r></w:p>`)
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, _, err := extractDOCXText(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Client: Jane Doe", text)
}

func TestExtractDOCXTextNotAZip(t *testing.T) {
	_, _, err := extractDOCXText([]byte("this is not a docx file"))
	assert.Error(t, err)
}

func TestExtractDOCXTextMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nothing here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, _, err = extractDOCXText(buf.Bytes())
	assert.ErrorContains(t, err, "word/document.xml")
}
