package pptx

import (
	"github.com/hailam/docpad/internal/adapters/ooxml"
	"github.com/hailam/docpad/internal/ports"
)

// MediaDir is where PowerPoint keeps binary parts; the padding entry goes there.
const MediaDir = "ppt/media"

const (
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"

	relSlideMaster = nsR + "/slideMaster"
	relSlideLayout = nsR + "/slideLayout"
	relSlide       = nsR + "/slide"
	relTheme       = nsR + "/theme"

	ctPrefix = "application/vnd.openxmlformats-officedocument.presentationml."
)

type PptxBuilder struct{}

func New() ports.SkeletonBuilder {
	return &PptxBuilder{}
}

// Build writes a presentation with one slide on a blank layout.
func (b *PptxBuilder) Build(path string) error {
	return ooxml.WritePackage(path, Parts())
}

// Parts returns the package parts of the skeleton presentation.
func Parts() []ooxml.Part {
	return []ooxml.Part{
		{Name: "[Content_Types].xml", Body: contentTypes},
		{Name: "_rels/.rels", Body: relationships(rel{"rId1", ooxml.RelOfficeDoc, "ppt/presentation.xml"})},
		{Name: "ppt/presentation.xml", Body: presentation},
		{Name: "ppt/_rels/presentation.xml.rels", Body: relationships(
			rel{"rId1", relSlideMaster, "slideMasters/slideMaster1.xml"},
			rel{"rId2", relSlide, "slides/slide1.xml"},
			rel{"rId3", relTheme, "theme/theme1.xml"},
		)},
		{Name: "ppt/slideMasters/slideMaster1.xml", Body: slideMaster},
		{Name: "ppt/slideMasters/_rels/slideMaster1.xml.rels", Body: relationships(
			rel{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
			rel{"rId2", relTheme, "../theme/theme1.xml"},
		)},
		{Name: "ppt/slideLayouts/slideLayout1.xml", Body: blankLayout},
		{Name: "ppt/slideLayouts/_rels/slideLayout1.xml.rels", Body: relationships(
			rel{"rId1", relSlideMaster, "../slideMasters/slideMaster1.xml"},
		)},
		{Name: "ppt/slides/slide1.xml", Body: slide},
		{Name: "ppt/slides/_rels/slide1.xml.rels", Body: relationships(
			rel{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
		)},
		{Name: "ppt/theme/theme1.xml", Body: theme},
	}
}

type rel struct {
	id, typ, target string
}

func relationships(rels ...rel) string {
	s := ooxml.XMLHeader + `<Relationships xmlns="` + nsRel + `">`
	for _, r := range rels {
		s += `<Relationship Id="` + r.id + `" Type="` + r.typ + `" Target="` + r.target + `"/>`
	}
	return s + `</Relationships>`
}

const contentTypes = ooxml.XMLHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="` + ooxml.RelsContentType + `"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/ppt/presentation.xml" ContentType="` + ctPrefix + `presentation.main+xml"/>` +
	`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="` + ctPrefix + `slideMaster+xml"/>` +
	`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="` + ctPrefix + `slideLayout+xml"/>` +
	`<Override PartName="/ppt/slides/slide1.xml" ContentType="` + ctPrefix + `slide+xml"/>` +
	`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
	`</Types>`

const presentation = ooxml.XMLHeader +
	`<p:presentation xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" saveSubsetFonts="1">` +
	`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
	`<p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst>` +
	`<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>` +
	`<p:notesSz cx="6858000" cy="9144000"/>` +
	`</p:presentation>`

// emptyTree is the shape tree of a slide with nothing on it.
const emptyTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`</p:spTree>`

const slideMaster = ooxml.XMLHeader +
	`<p:sldMaster xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>` + emptyTree + `</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`<p:txStyles><p:titleStyle/><p:bodyStyle/><p:otherStyle/></p:txStyles>` +
	`</p:sldMaster>`

const blankLayout = ooxml.XMLHeader +
	`<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" type="blank" preserve="1">` +
	`<p:cSld name="Blank">` + emptyTree + `</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slide = ooxml.XMLHeader +
	`<p:sld xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld>` + emptyTree + `</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sld>`

const theme = ooxml.XMLHeader +
	`<a:theme xmlns:a="` + nsA + `" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="1F497D"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="EEECE1"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4F81BD"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="C0504D"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="9BBB59"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="8064A2"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="4BACC6"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="F79646"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0000FF"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="800080"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst>` + solidPhClr + solidPhClr + solidPhClr + `</a:fillStyleLst>` +
	`<a:lnStyleLst>` + linePhClr + linePhClr + linePhClr + `</a:lnStyleLst>` +
	`<a:effectStyleLst>` + noEffect + noEffect + noEffect + `</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` + solidPhClr + solidPhClr + solidPhClr + `</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements></a:theme>`

const (
	solidPhClr = `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	linePhClr  = `<a:ln w="9525">` + solidPhClr + `</a:ln>`
	noEffect   = `<a:effectStyle><a:effectLst/></a:effectStyle>`
)
