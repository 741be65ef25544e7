package docx

import (
	"github.com/hailam/docpad/internal/adapters/ooxml"
	"github.com/hailam/docpad/internal/ports"
)

// MediaDir is where Word keeps binary parts; the padding entry goes there.
const MediaDir = "word/media"

// Placeholder is the text of the single paragraph.
const Placeholder = "Sample"

type DocxBuilder struct{}

func New() ports.SkeletonBuilder {
	return &DocxBuilder{}
}

// Build writes a one-paragraph DOCX at path.
func (b *DocxBuilder) Build(path string) error {
	return ooxml.WritePackage(path, []ooxml.Part{
		contentTypes(),
		rels(),
		docRels(),
		documentXML(Placeholder),
	})
}

// Helpers for the four minimal parts:

func contentTypes() ooxml.Part {
	return ooxml.Part{Name: "[Content_Types].xml", Body: ooxml.XMLHeader +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="` + ooxml.RelsContentType + `"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`}
}

func rels() ooxml.Part {
	return ooxml.Part{Name: "_rels/.rels", Body: ooxml.XMLHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="` + ooxml.RelOfficeDoc + `" Target="word/document.xml"/>` +
		`</Relationships>`}
}

func docRels() ooxml.Part {
	return ooxml.Part{Name: "word/_rels/document.xml.rels", Body: ooxml.XMLHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`}
}

// documentXML writes a word/document.xml holding one paragraph of text.
func documentXML(text string) ooxml.Part {
	return ooxml.Part{Name: "word/document.xml", Body: ooxml.XMLHeader +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p><w:sectPr/></w:body>` +
		`</w:document>`}
}
