package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// stylesXML sets the document-wide font, size and right-to-left defaults.
func (r *Renderer) stylesXML() []byte {
	var buf bytes.Buffer
	halfPoints := r.fontSize * 2
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="%s"><w:docDefaults><w:rPrDefault><w:rPr>`, wordNamespace)
	buf.WriteString(`<w:rFonts w:ascii="`)
	escape(&buf, r.font)
	buf.WriteString(`" w:hAnsi="`)
	escape(&buf, r.font)
	buf.WriteString(`" w:cs="`)
	escape(&buf, r.font)
	fmt.Fprintf(&buf, `"/><w:sz w:val="%d"/><w:szCs w:val="%d"/><w:rtl/></w:rPr></w:rPrDefault>`, halfPoints, halfPoints)
	buf.WriteString(`<w:pPrDefault><w:pPr><w:bidi/><w:jc w:val="right"/></w:pPr></w:pPrDefault></w:docDefaults></w:styles>`)
	return buf.Bytes()
}

func documentXML(body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="%s"><w:body>`, wordNamespace)
	buf.Write(body)
	buf.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134" w:header="708" w:footer="708" w:gutter="0"/><w:bidi/></w:sectPr>`)
	buf.WriteString(`</w:body></w:document>`)
	return buf.Bytes()
}

// pack zips the parts of a minimal WordprocessingML package.
func (r *Renderer) pack(body []byte) ([]byte, error) {
	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/styles.xml", r.stylesXML()},
		{"word/document.xml", documentXML(body)},
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", part.name, err)
		}
		if _, err := w.Write(part.content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish document package: %w", err)
	}
	return out.Bytes(), nil
}
