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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fpgafx/mifgen/curated"
)

// ParseError is the pattern for errors returned by Parse().
const ParseError = "mif: line %d: %s"

// Parse a MIF table. Only the subset of the format produced by Write() is
// supported: hexadecimal address and data radix with one address per
// content line. Comment lines are returned in the Header field in the order
// in which they appear.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{}

	depth := -1
	content := false
	ended := false

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())

		if s == "" {
			continue
		}

		if c, ok := strings.CutPrefix(s, "--"); ok {
			t.Header = append(t.Header, strings.TrimSpace(c))
			continue
		}

		if ended {
			return nil, curated.Errorf(ParseError, line, "content after END")
		}

		if content {
			if s == "END;" {
				ended = true
				continue
			}

			s, ok := strings.CutSuffix(s, ";")
			if !ok {
				return nil, curated.Errorf(ParseError, line, "missing semi-colon")
			}

			a, d, ok := strings.Cut(s, ":")
			if !ok {
				return nil, curated.Errorf(ParseError, line, "missing colon")
			}

			address, err := strconv.ParseUint(strings.TrimSpace(a), 16, 32)
			if err != nil {
				return nil, curated.Errorf(ParseError, line, err)
			}
			data, err := strconv.ParseUint(strings.TrimSpace(d), 16, 32)
			if err != nil {
				return nil, curated.Errorf(ParseError, line, err)
			}

			if int(address) != len(t.Data) {
				return nil, curated.Errorf(ParseError, line, "address out of sequence")
			}
			t.Data = append(t.Data, uint32(data))

			continue
		}

		if s == "CONTENT BEGIN" {
			content = true
			continue
		}

		key, value, ok := strings.Cut(strings.TrimSuffix(s, ";"), "=")
		if !ok {
			return nil, curated.Errorf(ParseError, line, "unrecognised line")
		}

		switch strings.TrimSpace(key) {
		case "WIDTH":
			v, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, curated.Errorf(ParseError, line, err)
			}
			t.Width = v
		case "DEPTH":
			v, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, curated.Errorf(ParseError, line, err)
			}
			depth = v
		case "ADDRESS_RADIX", "DATA_RADIX":
			if strings.TrimSpace(value) != "HEX" {
				return nil, curated.Errorf(ParseError, line, "only HEX radix is supported")
			}
		default:
			return nil, curated.Errorf(ParseError, line, "unrecognised key")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ParseError, line, err)
	}

	if !ended {
		return nil, curated.Errorf(ParseError, line, "no END")
	}

	if depth != len(t.Data) {
		return nil, curated.Errorf(ParseError, line, "DEPTH does not match content")
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// ReadFile opens and parses the named MIF file.
func ReadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("mif: %v", err)
	}
	defer f.Close()
	return Parse(f)
}
