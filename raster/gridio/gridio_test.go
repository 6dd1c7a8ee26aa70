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

package gridio

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-rasterstream/raster"
)

func randomGrid(rng *rand.Rand, w, h, p int) *raster.Grid[uint8] {
	g := raster.NewGrid[uint8](w, h, p)
	for y := 0; y < h; y++ {
		row := g.RowSlice(y)
		for x := range row {
			row[x] = uint8(rng.Intn(256))
		}
	}
	return g
}

func TestRoundTrip_Raw(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	// Width 17 at chunk width 4 forces padding; the wire format must
	// carry only the logical samples.
	g := randomGrid(rng, 17, 9, 4)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	wantLen := 9 + 17*9
	if buf.Len() != wantLen {
		t.Errorf("encoded length: got %d, want %d", buf.Len(), wantLen)
	}

	got, err := Read[uint8](&buf, 8)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ChunkWidth() != 8 {
		t.Errorf("ChunkWidth: got %d, want 8", got.ChunkWidth())
	}
	if !raster.Equal(g, got) {
		t.Error("round trip should preserve logical content")
	}
}

func TestRoundTrip_Zstd(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	g := randomGrid(rng, 64, 32, 16)

	var buf bytes.Buffer
	if err := WriteZstd(&buf, g); err != nil {
		t.Fatalf("WriteZstd: %v", err)
	}

	got, err := ReadZstd[uint8](&buf, 16)
	if err != nil {
		t.Fatalf("ReadZstd: %v", err)
	}
	if !raster.Equal(g, got) {
		t.Error("zstd round trip should preserve logical content")
	}
}

func TestRoundTrip_Uint16(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	g := raster.NewGrid[uint16](10, 6, 4)
	for y := 0; y < 6; y++ {
		row := g.RowSlice(y)
		for x := range row {
			row[x] = uint16(rng.Intn(65536))
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read[uint16](&buf, 4)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !raster.Equal(g, got) {
		t.Error("uint16 round trip should preserve logical content")
	}
}

func TestRead_BadMagic(t *testing.T) {
	data := append([]byte("XXXX"), make([]byte, 16)...)
	if _, err := Read[uint8](bytes.NewReader(data), 4); !errors.Is(err, ErrFormat) {
		t.Errorf("bad magic: got %v, want ErrFormat", err)
	}
}

func TestRead_SampleWidthMismatch(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(33)), 4, 4, 4)
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read[uint16](&buf, 4); !errors.Is(err, ErrFormat) {
		t.Errorf("8-bit file read as uint16: got %v, want ErrFormat", err)
	}
}

func TestRead_Truncated(t *testing.T) {
	g := randomGrid(rand.New(rand.NewSource(34)), 8, 8, 4)
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	cut := buf.Bytes()[:buf.Len()-5]
	if _, err := Read[uint8](bytes.NewReader(cut), 4); !errors.Is(err, ErrFormat) {
		t.Errorf("truncated payload: got %v, want ErrFormat", err)
	}

	if _, err := Read[uint8](bytes.NewReader(cut[:3]), 4); !errors.Is(err, ErrFormat) {
		t.Errorf("truncated header: got %v, want ErrFormat", err)
	}
}

func TestRead_BadChunkWidth(t *testing.T) {
	if _, err := Read[uint8](bytes.NewReader(nil), 0); !errors.Is(err, raster.ErrConfig) {
		t.Errorf("chunk width 0: got %v, want ErrConfig", err)
	}
}

func TestWrite_EmptyGrid(t *testing.T) {
	g := raster.NewGrid[uint8](0, 0, 4)
	var buf bytes.Buffer
	if err := Write(&buf, g); !errors.Is(err, ErrFormat) {
		t.Errorf("empty grid: got %v, want ErrFormat", err)
	}
}
