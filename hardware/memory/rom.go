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

package memory

import (
	"github.com/jetsetilly/gotron/curated"
)

// ROMSize is the number of words in ROM.
const ROMSize = 0x10000

// Sentinal errors.
const (
	ROMTooLarge = "rom: too many words (%d)"
)

// Word is a single ROM entry.
type Word struct {
	Opcode uint8
	Data   uint8
}

// Filler supplies the words for ROM addresses not supplied by the ROM image.
type Filler interface {
	Uint8() uint8
}

// ROM is read-only once created.
type ROM struct {
	words [ROMSize]Word

	// the number of words supplied at creation
	size int
}

// NewROM creates ROM from the supplied words, starting at address zero. If
// filler is nil the remainder of the ROM is zero-filled.
func NewROM(words []Word, filler Filler) (*ROM, error) {
	if len(words) > ROMSize {
		return nil, curated.Errorf(ROMTooLarge, len(words))
	}

	rom := &ROM{size: len(words)}
	copy(rom.words[:], words)

	if filler != nil {
		for i := len(words); i < ROMSize; i++ {
			rom.words[i] = Word{Opcode: filler.Uint8(), Data: filler.Uint8()}
		}
	}

	return rom, nil
}

// Fetch the word at address.
func (rom *ROM) Fetch(address uint16) Word {
	return rom.words[address]
}

// Size returns the number of words supplied when the ROM was created.
func (rom *ROM) Size() int {
	return rom.size
}
