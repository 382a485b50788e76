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

// Package mif reads and writes memory initialisation tables. The format is
// understood natively by FPGA tools and is used to initialise ROM blocks:
//
//	-- header comment
//
//	WIDTH=16;
//	DEPTH=256;
//	ADDRESS_RADIX=HEX;
//	DATA_RADIX=HEX;
//
//	CONTENT BEGIN
//	0000    :    0000;
//	0001    :    00f7;
//	...
//	END;
//
// Addresses and codes are written in lower-case hexadecimal, zero padded to
// four digits regardless of the declared width. Every address is written.
package mif
