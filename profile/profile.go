// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile provides storage and retrieval of per-base genomic
// count profiles, such as ribosome-protected-fragment or mRNA-seq
// coverage, addressed by chromosome name and coordinate range.
package profile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
)

// A Set holds one count vector per chromosome.
type Set map[string][]float32

// Range returns counts for the half-open interval [start,end) on the
// named chromosome as plotting-friendly float64 values. Each returned
// position i holds the stored count at start+i+shift; shift corrects
// for a fixed offset between read position and the biological signal,
// for example the distance from a ribosome footprint 5' end to its
// P-site. Positions outside the stored vector, and all positions of an
// unknown chromosome, are zero.
func (s Set) Range(chrom string, start, end, shift int) []float64 {
	if end < start {
		start, end = end, start
	}
	v := make([]float64, end-start)
	counts, ok := s[chrom]
	if !ok {
		return v
	}
	for i := range v {
		p := start + i + shift
		if p < 0 || p >= len(counts) {
			continue
		}
		v[i] = float64(counts[p])
	}
	return v
}

// Chroms returns the names of the chromosomes in the set, sorted.
func (s Set) Chroms() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// magic identifies the binary profile format.
const magic = 0x52504631 // "RPF1"

// WriteSet writes the set to w in the binary profile format: a magic
// word, the number of chromosomes, then for each chromosome in sorted
// name order its name length, name, vector length and float32 counts.
// All integers and counts are little-endian.
func WriteSet(w io.Writer, s Set) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint32(magic)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	for _, name := range s.Chroms() {
		counts := s[name]
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(name))); err != nil {
			return err
		}
		if _, err := bw.WriteString(name); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint64(len(counts))); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, counts); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSet reads a binary profile set written by WriteSet.
func ReadSet(r io.Reader) (Set, error) {
	br := bufio.NewReader(r)
	var m uint32
	if err := binary.Read(br, binary.LittleEndian, &m); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("profile: bad magic %#x", m)
	}
	var n uint32
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make(Set, n)
	for i := uint32(0); i < n; i++ {
		var nameLen uint32
		if err := binary.Read(br, binary.LittleEndian, &nameLen); err != nil {
			return nil, err
		}
		if nameLen > maxNameLen {
			return nil, fmt.Errorf("profile: chromosome name length %d exceeds %d", nameLen, maxNameLen)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(br, name); err != nil {
			return nil, err
		}
		var vecLen uint64
		if err := binary.Read(br, binary.LittleEndian, &vecLen); err != nil {
			return nil, err
		}
		counts, err := readCounts(br, vecLen)
		if err != nil {
			return nil, err
		}
		s[string(name)] = counts
	}
	return s, nil
}

const (
	maxNameLen = 1 << 10
	countChunk = 1 << 20
)

// readCounts reads n little-endian float32 values in bounded chunks so
// that a corrupt vector length fails on short input rather than
// demanding the whole allocation up front.
func readCounts(r io.Reader, n uint64) ([]float32, error) {
	counts := make([]float32, 0, min64(n, countChunk))
	buf := make([]float32, min64(n, countChunk))
	for n > 0 {
		chunk := buf[:min64(n, countChunk)]
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			return nil, err
		}
		counts = append(counts, chunk...)
		n -= uint64(len(chunk))
	}
	return counts, nil
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// ReadFile reads a binary profile set from the named file.
func ReadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSet(f)
	if err != nil {
		return nil, fmt.Errorf("profile: reading %q: %v", path, err)
	}
	return s, nil
}

// WriteFile writes a binary profile set to the named file.
func WriteFile(path string, s Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteSet(f, s)
	if err != nil {
		f.Close()
		return fmt.Errorf("profile: writing %q: %v", path, err)
	}
	return f.Close()
}
