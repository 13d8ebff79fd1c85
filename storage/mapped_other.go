//go:build !unix

package storage

import "errors"

var errNoMmap = errors.New("memory-mapped storage is not supported on this platform")

// Mapped is unavailable on this platform; use Bits with DumpFile instead.
type Mapped struct {
	Bits
}

// CreateMapped always fails with errNoMmap on this platform.
func CreateMapped(path string, n uint64) (*Mapped, error) {
	return nil, errNoMmap
}

// OpenMapped always fails with errNoMmap on this platform.
func OpenMapped(path string, n uint64) (*Mapped, error) {
	return nil, errNoMmap
}

// OpenMappedReadOnly always fails with errNoMmap on this platform.
func OpenMappedReadOnly(path string, n uint64) (*Mapped, error) {
	return nil, errNoMmap
}

// Flush always fails with errNoMmap on this platform.
func (m *Mapped) Flush() error {
	return errNoMmap
}

// Close always fails with errNoMmap on this platform.
func (m *Mapped) Close() error {
	return errNoMmap
}
