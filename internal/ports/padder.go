package ports

// Padder grows an existing file to an exact size without breaking its format.
type Padder interface {
	Pad(path string, targetSize int64) (PadResult, error)
}

// PadResult describes what a Padder did to reach the target size.
type PadResult struct {
	// SkeletonSize is the file size before filler was added, measured after
	// any manifest patch.
	SkeletonSize int64
	// Padding is the number of zero bytes written.
	Padding int64
	// Entry is the archive member holding the padding. Empty for trailer padding.
	Entry string
	// Comment is the length of the archive comment used to close a gap too
	// small for an entry.
	Comment int
	// ManifestPatched reports whether the content-types manifest was modified.
	ManifestPatched bool
}
