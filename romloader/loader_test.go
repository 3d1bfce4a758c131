// This file is part of Gotron.
//
// Gotron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gotron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gotron.  If not, see <https://www.gnu.org/licenses/>.

package romloader_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/romloader"
	"github.com/jetsetilly/gotron/test"
)

func TestReadWords(t *testing.T) {
	words, err := romloader.ReadWords(bytes.NewReader([]byte{0x00, 0x42, 0xc2, 0x10, 0xff}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(words), 2)
	test.ExpectEquality(t, words[0], memory.Word{Opcode: 0x00, Data: 0x42})
	test.ExpectEquality(t, words[1], memory.Word{Opcode: 0xc2, Data: 0x10})

	_, err = romloader.ReadWords(bytes.NewReader(make([]byte, memory.ROMSize*2+2)))
	test.ExpectSuccess(t, curated.Is(err, romloader.TooLarge))

	words, err = romloader.ReadWords(bytes.NewReader(make([]byte, memory.ROMSize*2)))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(words), memory.ROMSize)
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x42, 0xfc, 0x00}, 0o644))

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "test")
	test.ExpectFailure(t, ld.HasLoaded())

	_, err := ld.ROM(nil)
	test.ExpectSuccess(t, curated.Is(err, romloader.EmptyLoader))

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectInequality(t, ld.Hash, "")

	rom, err := ld.ROM(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 2)
	test.ExpectEquality(t, rom.Fetch(1), memory.Word{Opcode: 0xfc, Data: 0x00})

	// hash mismatch
	ld = romloader.NewLoader(fn)
	ld.Hash = "not a hash"
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.HashError))
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestLoadTooLarge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "large.rom")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, memory.ROMSize*2+1), 0o644))
	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.TooLarge))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.rom" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x01, 0x02, 0x03, 0x04})
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/test.rom")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)

	ld = romloader.NewLoader(srv.URL + "/missing.rom")
	test.ExpectFailure(t, ld.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/test.rom")
	test.ExpectFailure(t, ld.Load())
}
