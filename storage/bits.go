package storage

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// BitArray is a fixed-size array of bits.
type BitArray interface {
	Get(i uint64) bool
	Set(i uint64, v bool)
	Len() uint64
}

// imager is implemented by bit arrays whose memory is already laid out in
// the serialised format: bit i in byte i/8, most significant bit first.
type imager interface {
	Bytes() []byte
}

// Bits is a BitArray backed by a byte buffer in serialised layout.
type Bits struct {
	n   uint64
	buf []byte
}

// NewBits allocates a zeroed array of n bits.
func NewBits(n uint64) *Bits {
	return &Bits{n: n, buf: make([]byte, byteLen(n))}
}

func byteLen(n uint64) uint64 {
	return (n + 7) / 8
}

// Len returns the number of bits.
func (b *Bits) Len() uint64 {
	return b.n
}

// Get reports whether bit i is set. It panics if i is out of range.
func (b *Bits) Get(i uint64) bool {
	return getBit(b.buf, b.n, i)
}

// Set sets bit i to v. It panics if i is out of range.
func (b *Bits) Set(i uint64, v bool) {
	setBit(b.buf, b.n, i, v)
}

// Bytes returns the underlying buffer.
func (b *Bits) Bytes() []byte {
	return b.buf
}

func getBit(buf []byte, n, i uint64) bool {
	if i >= n {
		panic(fmt.Sprintf("storage: bit %d out of range [0, %d)", i, n))
	}
	return buf[i>>3]&(0x80>>(i&7)) != 0
}

func setBit(buf []byte, n, i uint64, v bool) {
	if i >= n {
		panic(fmt.Sprintf("storage: bit %d out of range [0, %d)", i, n))
	}
	if v {
		buf[i>>3] |= 0x80 >> (i & 7)
	} else {
		buf[i>>3] &^= 0x80 >> (i & 7)
	}
}

// Count returns the number of set bits of a.
func Count(a BitArray) uint64 {
	if im, ok := a.(imager); ok {
		return popcount(im.Bytes())
	}
	var c uint64
	for i := uint64(0); i < a.Len(); i++ {
		if a.Get(i) {
			c++
		}
	}
	return c
}

func popcount(buf []byte) uint64 {
	var c int
	for len(buf) >= 8 {
		c += bits.OnesCount64(binary.BigEndian.Uint64(buf))
		buf = buf[8:]
	}
	for _, b := range buf {
		c += bits.OnesCount8(b)
	}
	return uint64(c)
}
