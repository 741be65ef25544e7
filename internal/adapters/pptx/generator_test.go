package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/docpad/internal/ports"
)

type relationshipsXML struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func readParts(t *testing.T, p string) map[string][]byte {
	t.Helper()
	zr, err := zip.OpenReader(p)
	require.NoError(t, err)
	defer zr.Close()
	parts := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = body
	}
	return parts
}

func TestPptxBuilder_Build(t *testing.T) {
	builder := New()
	var _ ports.SkeletonBuilder = builder

	outPath := filepath.Join(t.TempDir(), "skeleton.pptx")
	require.NoError(t, builder.Build(outPath))
	parts := readParts(t, outPath)

	t.Run("WellFormed", func(t *testing.T) {
		for name, body := range parts {
			dec := xml.NewDecoder(bytes.NewReader(body))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				}
				require.NoError(t, err, "part %s is not well-formed", name)
			}
		}
	})

	t.Run("RelationshipTargetsExist", func(t *testing.T) {
		for name, body := range parts {
			if !strings.HasSuffix(name, ".rels") {
				continue
			}
			var rels relationshipsXML
			require.NoError(t, xml.Unmarshal(body, &rels))
			// _rels/x.xml.rels resolves against the folder holding x.xml
			base := path.Dir(path.Dir(name))
			for _, r := range rels.Items {
				target := path.Clean(path.Join(base, r.Target))
				require.Contains(t, parts, target, "%s points at missing part %s", name, r.Target)
			}
		}
	})

	t.Run("OneSlideOnBlankLayout", func(t *testing.T) {
		var slides int
		for name := range parts {
			if strings.HasPrefix(name, "ppt/slides/slide") {
				slides++
			}
		}
		require.Equal(t, 1, slides)
		require.Contains(t, string(parts["ppt/slideLayouts/slideLayout1.xml"]), `type="blank"`)
		require.Contains(t, string(parts["ppt/slides/_rels/slide1.xml.rels"]), "slideLayout1.xml")
	})

	t.Run("OverridesCoverParts", func(t *testing.T) {
		ct := string(parts["[Content_Types].xml"])
		for name := range parts {
			if strings.HasSuffix(name, ".rels") || name == "[Content_Types].xml" {
				continue
			}
			require.Contains(t, ct, `PartName="/`+name+`"`)
		}
	})
}
