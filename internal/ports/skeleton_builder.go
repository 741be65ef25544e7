package ports

// SkeletonBuilder writes the smallest valid document of one format.
// The file at outPath must already open in a standard reader before any
// padding is applied.
type SkeletonBuilder interface {
	Build(outPath string) error
}
