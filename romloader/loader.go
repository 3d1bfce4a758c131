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

package romloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gotron/curated"
	"github.com/jetsetilly/gotron/hardware/memory"
	"github.com/jetsetilly/gotron/logger"
)

// Sentinal errors.
const (
	LoadError   = "romloader: %v"
	TooLarge    = "romloader: image is too large (%d bytes)"
	HashError   = "romloader: unexpected hash value"
	EmptyLoader = "romloader: no data loaded"
)

// maximum number of bytes in a ROM image
const maxBytes = memory.ROMSize * 2

// Loader is used to specify the ROM image to use with the Gigatron.
type Loader struct {
	// filename of the ROM image. can be a URL with the http or https scheme
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM image. Does nothing if the data has already been loaded.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := ""
	if u, err := url.Parse(ld.Filename); err == nil {
		scheme = u.Scheme
	}

	var r io.ReadCloser

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return curated.Errorf(LoadError, resp.Status)
		}
		r = resp.Body

	case "file", "":
		f, err := os.Open(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		r = f

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}
	defer r.Close()

	// read one byte more than the maximum so that oversized images can be
	// detected without reading everything
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(data) > maxBytes {
		return curated.Errorf(TooLarge, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashError)
	}
	ld.Hash = hash
	ld.Data = data

	return nil
}

// ROM creates a ROM from the loaded data. The filler is used for ROM
// addresses past the end of the image. A nil filler zero-fills.
func (ld Loader) ROM(filler memory.Filler) (*memory.ROM, error) {
	if !ld.HasLoaded() {
		return nil, curated.Errorf(EmptyLoader)
	}

	words, err := ReadWords(bytes.NewReader(ld.Data))
	if err != nil {
		return nil, err
	}

	return memory.NewROM(words, filler)
}

// ReadWords reads pairs of bytes from the reader until the end of the
// stream. An odd number of bytes is not an error but the final byte is
// ignored.
func ReadWords(r io.Reader) ([]memory.Word, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(data) > maxBytes {
		return nil, curated.Errorf(TooLarge, len(data))
	}

	if len(data)%2 != 0 {
		logger.Logf(logger.Allow, "romloader", "odd number of bytes in image (%d). ignoring final byte", len(data))
	}

	words := make([]memory.Word, len(data)/2)
	for i := range words {
		words[i] = memory.Word{Opcode: data[i*2], Data: data[i*2+1]}
	}

	return words, nil
}
