// This file is part of Mifgen.
//
// Mifgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mifgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mifgen.  If not, see <https://www.gnu.org/licenses/>.

// Package digest computes a fingerprint of a table's codes. Two tables with
// the same width and codes have the same digest regardless of their header
// comments, which makes the digest useful for comparing tables produced with
// different annotations or by different versions of the program.
//
// Codes are collected in blocks. Each block is prefixed with the digest of
// the previous block so the final digest depends on every code and on the
// order of the codes.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/fpgafx/mifgen/mif"
)

// number of codes in each block
const blockCodes = 1024

const bufferStart = sha1.Size
const bufferLength = bufferStart + blockCodes*4

// Table accumulates codes into a chained digest.
type Table struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(width int) *Table {
	dig := &Table{
		buffer:   make([]byte, bufferLength),
		bufferCt: bufferStart,
	}

	// the width is part of the first block
	binary.BigEndian.PutUint32(dig.buffer[0:], uint32(width))

	return dig
}

func (dig *Table) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// AddCode adds the next code in the table to the digest.
func (dig *Table) AddCode(code uint32) {
	binary.BigEndian.PutUint32(dig.buffer[dig.bufferCt:], code)
	dig.bufferCt += 4
	if dig.bufferCt >= bufferLength {
		dig.flush()
	}
}

func (dig *Table) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = bufferStart
}

// Finalise the digest. Codes in an incomplete block are included in the
// digest. The digest should not be added to afterwards.
func (dig *Table) Finalise() string {
	if dig.bufferCt > bufferStart {
		dig.flush()
	}
	return dig.String()
}

// Sum returns the digest of a table.
func Sum(t *mif.Table) string {
	dig := NewTable(t.Width)
	for _, d := range t.Data {
		dig.AddCode(d)
	}
	return dig.Finalise()
}
