package padding

import (
	"bytes"
	"regexp"
)

// ContentTypesName is the Office Open XML content-types manifest.
const ContentTypesName = "[Content_Types].xml"

const (
	binDefault = `<Default Extension="bin" ContentType="application/octet-stream"/>`
	typesClose = "</Types>"
)

var binDeclared = regexp.MustCompile(`(?i)<Default\s[^>]*Extension\s*=\s*["']bin["']`)

// PatchContentTypes declares the bin extension in a content-types manifest.
// The declaration goes right before the closing Types tag. A manifest that
// already declares bin, or has no closing tag, is returned unchanged with
// false.
func PatchContentTypes(manifest []byte) ([]byte, bool) {
	if binDeclared.Match(manifest) {
		return manifest, false
	}
	i := bytes.LastIndex(manifest, []byte(typesClose))
	if i < 0 {
		return manifest, false
	}
	out := make([]byte, 0, len(manifest)+len(binDefault))
	out = append(out, manifest[:i]...)
	out = append(out, binDefault...)
	out = append(out, manifest[i:]...)
	return out, true
}
