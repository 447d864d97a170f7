package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// A DOCX file is a ZIP archive whose main content lives in
// word/document.xml: <w:p> paragraphs containing <w:r> runs whose text sits
// in <w:t> elements. We walk the token stream, gather run text per
// paragraph, and join paragraphs with newlines in document order.
func extractDOCXText(data []byte) (string, int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open docx archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", 0, errors.New("word/document.xml not found in docx archive")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", 0, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	var (
		dec        = xml.NewDecoder(rc)
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	return strings.Join(paragraphs, "\n"), len(paragraphs), nil
}
