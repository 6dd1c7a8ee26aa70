// Copyright 2026 go-rasterstream Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gridio serializes grids for fixtures, golden files and the
// example programs. The format is deliberately dumb: a five-byte
// header (magic "RSG1" plus sample bit width) and two big-endian
// uint16 dimensions, followed by unpadded row-major samples. WriteZstd
// and ReadZstd wrap the same payload in a zstd frame.
//
// Padding is a storage detail of the in-memory Grid and never reaches
// the wire.
package gridio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-rasterstream/raster"
)

const magic = "RSG1"

// maxDim is the largest serializable dimension; the header stores
// dimensions as uint16.
const maxDim = 1<<16 - 1

// ErrFormat reports a malformed or mismatched grid file.
var ErrFormat = errors.New("gridio: bad grid file")

// Write serializes g in raw format.
func Write[T raster.Sample](w io.Writer, g *raster.Grid[T]) error {
	if g.Width() <= 0 || g.Height() <= 0 {
		return fmt.Errorf("%w: empty grid", ErrFormat)
	}
	if g.Width() > maxDim || g.Height() > maxDim {
		return fmt.Errorf("%w: %dx%d exceeds format limit", ErrFormat, g.Width(), g.Height())
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(raster.SampleBits[T]())); err != nil {
		return err
	}
	var dims [4]byte
	binary.BigEndian.PutUint16(dims[0:2], uint16(g.Height()))
	binary.BigEndian.PutUint16(dims[2:4], uint16(g.Width()))
	if _, err := bw.Write(dims[:]); err != nil {
		return err
	}

	for y := 0; y < g.Height(); y++ {
		for _, s := range g.RowSlice(y) {
			if err := writeSample(bw, s); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Read deserializes a raw-format grid, laying it out with the given
// chunk width. The file's sample bit width must match T.
func Read[T raster.Sample](r io.Reader, chunkWidth int) (*raster.Grid[T], error) {
	if chunkWidth <= 0 {
		return nil, fmt.Errorf("%w: chunk width %d", raster.ErrConfig, chunkWidth)
	}
	br := bufio.NewReader(r)

	var header [9]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrFormat, err)
	}
	if string(header[0:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, header[0:4])
	}
	if bits := int(header[4]); bits != raster.SampleBits[T]() {
		return nil, fmt.Errorf("%w: %d-bit samples, want %d", ErrFormat, bits, raster.SampleBits[T]())
	}
	height := int(binary.BigEndian.Uint16(header[5:7]))
	width := int(binary.BigEndian.Uint16(header[7:9]))
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty dimensions %dx%d", ErrFormat, height, width)
	}

	g := raster.NewGrid[T](width, height, chunkWidth)
	for y := 0; y < height; y++ {
		row := g.RowSlice(y)
		for x := range row {
			s, err := readSample[T](br)
			if err != nil {
				return nil, fmt.Errorf("%w: truncated at row %d: %v", ErrFormat, y, err)
			}
			row[x] = s
		}
	}
	return g, nil
}

// WriteZstd serializes g in raw format inside a zstd frame.
func WriteZstd[T raster.Sample](w io.Writer, g *raster.Grid[T]) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := Write(zw, g); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadZstd deserializes a zstd-compressed raw-format grid.
func ReadZstd[T raster.Sample](r io.Reader, chunkWidth int) (*raster.Grid[T], error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Read[T](zr, chunkWidth)
}

func writeSample[T raster.Sample](bw *bufio.Writer, s T) error {
	if raster.SampleBits[T]() == 8 {
		return bw.WriteByte(byte(s))
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(s))
	_, err := bw.Write(buf[:])
	return err
}

func readSample[T raster.Sample](br *bufio.Reader) (T, error) {
	if raster.SampleBits[T]() == 8 {
		b, err := br.ReadByte()
		return T(b), err
	}
	var buf [2]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		var zero T
		return zero, err
	}
	return T(binary.BigEndian.Uint16(buf[:])), nil
}
