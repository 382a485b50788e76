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

// Package audition renders audio through a generated table so that the
// effect of the table can be heard before it is loaded into hardware.
//
// Input is a WAV or MP3 file, or a synthesised test tone when no file is
// given. Only the left channel of a stereo source is used. Output is always
// a mono, 16 bit WAV file.
package audition
