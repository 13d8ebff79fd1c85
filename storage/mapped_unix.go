//go:build unix

package storage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapped is a BitArray living in a shared memory mapping of its dump file,
// so the file holds the serialised image at all times.
type Mapped struct {
	n        uint64
	f        *os.File
	buf      []byte
	readOnly bool
}

// CreateMapped creates (or truncates) path to a zeroed image of n bits and maps it.
func CreateMapped(path string, n uint64) (*Mapped, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create mapped storage: %w", err)
	}
	if err := f.Truncate(int64(byteLen(n))); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to size mapped storage: %w", err)
	}
	return mapFile(f, n, false)
}

// OpenMapped maps an existing image of n bits for reading and writing.
func OpenMapped(path string, n uint64) (*Mapped, error) {
	return openMapped(path, n, false)
}

// OpenMappedReadOnly maps an existing image of n bits without write access,
// so a read-only dump can be inspected. Set panics on the result.
func OpenMappedReadOnly(path string, n uint64) (*Mapped, error) {
	return openMapped(path, n, true)
}

func openMapped(path string, n uint64, readOnly bool) (*Mapped, error) {
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapped storage: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat mapped storage: %w", err)
	}
	if want := byteLen(n); uint64(info.Size()) != want {
		f.Close()
		return nil, fmt.Errorf("mapped storage %s is %d bytes, want %d", path, info.Size(), want)
	}
	return mapFile(f, n, readOnly)
}

func mapFile(f *os.File, n uint64, readOnly bool) (*Mapped, error) {
	m := &Mapped{n: n, f: f, readOnly: readOnly}
	prot := unix.PROT_READ | unix.PROT_WRITE
	if readOnly {
		prot = unix.PROT_READ
	}
	if size := byteLen(n); size > 0 {
		buf, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to map storage: %w", err)
		}
		m.buf = buf
	}
	return m, nil
}

// Len returns the number of bits.
func (m *Mapped) Len() uint64 {
	return m.n
}

// Get reports whether bit i is set.
func (m *Mapped) Get(i uint64) bool {
	return getBit(m.buf, m.n, i)
}

// Set sets bit i to v.
func (m *Mapped) Set(i uint64, v bool) {
	if m.readOnly {
		panic("storage: Set on read-only mapped storage")
	}
	setBit(m.buf, m.n, i, v)
}

// Bytes returns the mapped image.
func (m *Mapped) Bytes() []byte {
	return m.buf
}

// Flush writes dirty pages back to the file.
func (m *Mapped) Flush() error {
	if m.readOnly || len(m.buf) == 0 {
		return nil
	}
	if err := unix.Msync(m.buf, unix.MS_SYNC); err != nil {
		return fmt.Errorf("failed to sync mapped storage: %w", err)
	}
	return nil
}

// Close flushes, unmaps and closes the file. Closing twice is a no-op.
func (m *Mapped) Close() error {
	if m.f == nil {
		return nil
	}
	if err := m.Flush(); err != nil {
		return err
	}
	if m.buf != nil {
		if err := unix.Munmap(m.buf); err != nil {
			return fmt.Errorf("failed to unmap storage: %w", err)
		}
		m.buf = nil
	}
	f := m.f
	m.f = nil
	return f.Close()
}
