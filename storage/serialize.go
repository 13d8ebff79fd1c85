package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// tailMask keeps the used bits of the final byte of an n-bit image.
func tailMask(n uint64) byte {
	if n%8 == 0 {
		return 0xFF
	}
	return ^byte(0xFF >> (n % 8))
}

// Dump writes a as ceil(Len/8) bytes, eight bits per byte, most significant
// bit first, with the unused tail of the final byte zeroed.
func Dump(w io.Writer, a BitArray) error {
	if im, ok := a.(imager); ok {
		return dumpImage(w, im.Bytes(), a.Len())
	}

	bw := bufio.NewWriter(w)
	var c byte
	used := 0
	for i := uint64(0); i < a.Len(); i++ {
		c <<= 1
		if a.Get(i) {
			c |= 1
		}
		used++
		if used == 8 {
			if err := bw.WriteByte(c); err != nil {
				return err
			}
			c, used = 0, 0
		}
	}
	if used != 0 {
		if err := bw.WriteByte(c << (8 - used)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func dumpImage(w io.Writer, buf []byte, n uint64) error {
	if len(buf) == 0 {
		return nil
	}
	last := len(buf) - 1
	if _, err := w.Write(buf[:last]); err != nil {
		return err
	}
	_, err := w.Write([]byte{buf[last] & tailMask(n)})
	return err
}

// Restore fills a from the format written by Dump. Pad bits of the final
// byte are ignored. A stream shorter than ceil(Len/8) bytes fails with
// io.ErrUnexpectedEOF.
func Restore(r io.Reader, a BitArray) error {
	n := a.Len()
	if im, ok := a.(imager); ok {
		buf := im.Bytes()
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("restore %d bits: %w", n, eofIsUnexpected(err))
		}
		if len(buf) > 0 {
			buf[len(buf)-1] &= tailMask(n)
		}
		return nil
	}

	br := bufio.NewReader(r)
	var c byte
	for i := uint64(0); i < n; i++ {
		if i%8 == 0 {
			var err error
			if c, err = br.ReadByte(); err != nil {
				return fmt.Errorf("restore %d bits: %w", n, eofIsUnexpected(err))
			}
		}
		a.Set(i, c&(0x80>>(i%8)) != 0)
	}
	return nil
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// DumpFile writes a to path, replacing any existing file.
func DumpFile(path string, a BitArray) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	if err := Dump(bw, a); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dump file: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dump file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close dump file: %w", err)
	}
	return nil
}

// RestoreFile fills a from the dump at path. The file must be exactly
// ceil(Len/8) bytes long.
func RestoreFile(path string, a BitArray) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dump file: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat dump file: %w", err)
	}
	if want := byteLen(a.Len()); uint64(info.Size()) != want {
		return fmt.Errorf("dump file %s is %d bytes, want %d", path, info.Size(), want)
	}
	return Restore(bufio.NewReaderSize(f, 1<<20), a)
}
