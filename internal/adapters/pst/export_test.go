package pst

import "encoding/binary"

// FakeStore returns size bytes that start with a PST header of the given version.
func FakeStore(version uint16, size int) []byte {
	data := make([]byte, size)
	copy(data, headerMagic)
	copy(data[8:], clientMagic)
	binary.LittleEndian.PutUint16(data[versionAt:], version)
	return data
}
