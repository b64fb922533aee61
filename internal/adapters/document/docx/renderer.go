// Package docx renders contracts as right-to-left Word documents.
package docx

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/core/ports"
	"github.com/SscSPs/simcard_ledger/internal/utils"
)

const (
	DefaultFont     = "B Nazanin"
	DefaultFontSize = 12
)

// Renderer builds .docx packages from contract fields.
type Renderer struct {
	font     string
	fontSize int // points
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithFont(name string, size int) Option {
	return func(r *Renderer) {
		if name != "" {
			r.font = name
		}
		if size > 0 {
			r.fontSize = size
		}
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{font: DefaultFont, fontSize: DefaultFontSize}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ ports.ContractRenderer = (*Renderer)(nil)

func (r *Renderer) Extension() string {
	return ".docx"
}

// Render lays out the contract of the given kind and zips it into a .docx package.
func (r *Renderer) Render(ctx context.Context, kind domain.ContractKind, fields map[string]string, payments [][5]string) ([]byte, error) {
	if !kind.Valid() {
		return nil, apperrors.Validationf("unknown contract kind %q", kind)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fill := placeholderReplacer(kind, fields)

	var body bytes.Buffer
	r.paragraph(&body, headingText, true)
	r.paragraph(&body, "", false)
	for _, line := range []string{sellerIdentityLine, sellerContactLine, buyerIdentityLine, buyerContactLine} {
		r.paragraph(&body, fill.Replace(line), false)
	}
	r.paragraph(&body, fill.Replace(subjectText), false)
	r.paragraph(&body, fill.Replace(priceText), false)
	r.table(&body, payments)
	r.paragraph(&body, fill.Replace(termsFor(kind)), false)
	r.paragraph(&body, fill.Replace(notesText), false)
	r.paragraph(&body, "", false)
	r.paragraph(&body, fill.Replace(signaturesText), true)

	return r.pack(body.Bytes())
}

// placeholderReplacer maps {key} to the field value. Amounts are grouped in thousands.
func placeholderReplacer(kind domain.ContractKind, fields map[string]string) *strings.Replacer {
	buyerRole, deal := kindWords(kind)
	pairs := []string{"{buyer_role}", buyerRole, "{deal}", deal}
	for key, value := range fields {
		switch key {
		case "sale_amount", "sale_amount_toman", "invoice_amount":
			value = utils.FormatAmount(value)
		}
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...)
}

func escape(buf *bytes.Buffer, s string) {
	// EscapeText only fails on writer errors and bytes.Buffer never returns one.
	_ = xml.EscapeText(buf, []byte(s))
}

func (r *Renderer) runProps(buf *bytes.Buffer, bold bool) {
	buf.WriteString(`<w:rPr><w:rtl/>`)
	if bold {
		buf.WriteString(`<w:b/><w:bCs/>`)
	}
	buf.WriteString(`</w:rPr>`)
}

// paragraph writes a right-aligned bidi paragraph. Newlines become line
// breaks and tabs become tab stops.
func (r *Renderer) paragraph(buf *bytes.Buffer, text string, bold bool) {
	buf.WriteString(`<w:p><w:pPr><w:bidi/><w:spacing w:after="0"/><w:jc w:val="right"/></w:pPr>`)
	for i, line := range strings.Split(text, "\n") {
		for j, chunk := range strings.Split(line, "\t") {
			buf.WriteString(`<w:r>`)
			r.runProps(buf, bold)
			if i > 0 && j == 0 {
				buf.WriteString(`<w:br/>`)
			}
			if j > 0 {
				buf.WriteString(`<w:tab/>`)
			}
			buf.WriteString(`<w:t xml:space="preserve">`)
			escape(buf, chunk)
			buf.WriteString(`</w:t></w:r>`)
		}
	}
	buf.WriteString(`</w:p>`)
}

func (r *Renderer) row(buf *bytes.Buffer, cells [5]string, header bool) {
	buf.WriteString(`<w:tr>`)
	for i, cell := range cells {
		if !header && i == 2 {
			cell = utils.FormatAmount(cell)
		}
		buf.WriteString(`<w:tc><w:tcPr><w:tcW w:w="1800" w:type="dxa"/></w:tcPr>`)
		r.paragraph(buf, cell, header)
		buf.WriteString(`</w:tc>`)
	}
	buf.WriteString(`</w:tr>`)
}

// table writes the five-column payment table: a header row then one row per payment.
func (r *Renderer) table(buf *bytes.Buffer, payments [][5]string) {
	buf.WriteString(`<w:tbl><w:tblPr><w:bidiVisual/><w:tblW w:w="0" w:type="auto"/><w:jc w:val="right"/><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(buf, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="000000"/>`, side)
	}
	buf.WriteString(`</w:tblBorders></w:tblPr><w:tblGrid>`)
	for range paymentHeaders {
		buf.WriteString(`<w:gridCol w:w="1800"/>`)
	}
	buf.WriteString(`</w:tblGrid>`)
	r.row(buf, paymentHeaders, true)
	for _, p := range payments {
		r.row(buf, p, false)
	}
	buf.WriteString(`</w:tbl>`)
}
