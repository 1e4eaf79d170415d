// Package pdf decodes uploaded PDF files into plain text documents for the
// extraction pipeline. It uses pdfcpu to read and validate the file and walks
// each page's content stream for text-showing operators.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/quizdeck/quizdeck/internal/extract"
)

// Decoder turns a PDF byte stream into an extract.Document.
type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

// Decode reads and validates the PDF and extracts per-page text. It fails
// only when the file is not a readable PDF; pages without recoverable text
// simply come back empty.
func (d *Decoder) Decode(rs io.ReadSeeker) (extract.Document, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return extract.Document{}, fmt.Errorf("read pdf: %w", err)
	}

	var all strings.Builder
	pages := make([]extract.Page, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		pages = append(pages, extract.Page{Text: pageText})
		if pageText == "" {
			continue
		}
		if all.Len() > 0 {
			all.WriteString("\n\n")
		}
		all.WriteString(pageText)
	}

	doc := extract.Document{
		Text:     all.String(),
		NumPages: ctx.PageCount,
		Pages:    pages,
	}
	if strings.TrimSpace(doc.Text) == "" {
		return doc, fmt.Errorf("no text content found in pdf")
	}
	return doc, nil
}

func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// pdfString matches PDF string literals in parentheses.
var pdfString = regexp.MustCompile(`\(([^)]*)\)`)

// textFromStream scans content stream operators that show or position text.
// Tj, TJ and ' show strings; Td, TD and T* move the text cursor, which we
// render as a newline so that question and option lines stay separated.
func textFromStream(data []byte) string {
	var sb strings.Builder

	appendStrings := func(line []byte) {
		for _, m := range pdfString.FindAllSubmatch(line, -1) {
			if s := decodeString(m[1]); s != "" {
				sb.WriteString(s)
			}
		}
	}

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			appendStrings(line)
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			sb.WriteByte('\n')
			appendStrings(line)
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
	}
	return cleanText(sb.String())
}

// decodeString handles the basic PDF literal-string escapes, including octal
// sequences like \040.
func decodeString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanText collapses runs of spaces and tabs but preserves line breaks,
// which carry structure the extractor depends on. Non-printable runes are
// dropped.
func cleanText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			sb.WriteRune('\n')
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
