package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strings"
)

// readSlides pulls the drawing text (<a:t> runs) out of a pptx archive.
// There is no maintained Go presentation parser, so this reads the
// OOXML slide parts directly.
func readSlides(content []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "Presentation content could not be parsed."
	}

	var names []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return "Presentation content could not be parsed."
	}
	sort.Strings(names)

	var slides []string
	for _, name := range names {
		for _, f := range zr.File {
			if f.Name != name {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				continue
			}
			text := drawingText(rc)
			rc.Close()
			if text != "" {
				slides = append(slides, text)
			}
		}
	}
	return strings.Join(slides, "\n\n")
}

func drawingText(r io.Reader) string {
	dec := xml.NewDecoder(r)
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inText = t.Name.Local == "t"
		case xml.EndElement:
			inText = false
		case xml.CharData:
			if inText {
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				sb.Write([]byte(t))
			}
		}
	}
	return sb.String()
}
