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

// Package curve contains the functions that are sampled to create a lookup
// table. The Transfer type is the waveshaper used by the overdrive/compressor
// ROM. The Sine type is a single period of a sinusoid.
//
// The Transfer function divides its input domain into three zones:
//
//	Zone A  [0, noise floor)                pass-through
//	Zone B  [noise floor, input limiter)    compression
//	Zone C  [input limiter, N]              bell shaped decay
//
// The compression curve in Zone B is a half-sine drawn between the noise
// floor and the input limiter along the diagonal y = x. In other words, the
// half-sine is defined in a frame rotated by 45 degrees and then rotated back.
// The rotation cannot be inverted in closed form for an arbitrary input so
// the output for input x is found by searching the parameter of the unrotated
// curve for the first point whose rotated x coordinate reaches x.
//
// The rotated curve is precomputed once when the Transfer is created and
// searched with a binary search. If the rotated curve is not monotonic, which
// can only happen with an unusually large vertical scale, the search falls
// back to a linear scan. Both searches give identical results.
package curve
