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

package mif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fpgafx/mifgen/curated"
	"github.com/fpgafx/mifgen/logger"
)

// WriteError is the pattern for errors returned when a table cannot be
// written to disk.
const WriteError = "mif: %v"

// Write the table to io.Writer in the MIF format. Addresses and codes are
// written as lower-case hexadecimal, zero padded to four digits.
func Write(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	b := bufio.NewWriter(w)

	for _, h := range t.Header {
		fmt.Fprintf(b, "-- %s\n", h)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "WIDTH=%d;\n", t.Width)
	fmt.Fprintf(b, "DEPTH=%d;\n", t.Depth())
	b.WriteString("ADDRESS_RADIX=HEX;\n")
	b.WriteString("DATA_RADIX=HEX;\n")
	b.WriteString("\n")

	b.WriteString("CONTENT BEGIN\n")
	for a, d := range t.Data {
		fmt.Fprintf(b, "%04x    :    %04x;\n", a, d)
	}
	b.WriteString("END;\n")

	return b.Flush()
}

// WriteFile writes the table to the named file. The table is written to a
// temporary file in the same directory, which is then renamed. The named file
// is left unchanged if writing fails.
func WriteFile(filename string, t *Table) (rerr error) {
	if err := t.Validate(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	f, err := os.CreateTemp(filepath.Dir(filename), ".mifgen-*")
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		if rerr != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	logger.Logf(logger.Allow, "mif", "writing %d entries to %s", t.Depth(), filename)

	if err := Write(f, t); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := os.Rename(f.Name(), filename); err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}
