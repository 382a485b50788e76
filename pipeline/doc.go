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

// Package pipeline joins the domain generator, a curve evaluator, the
// quantizer and the table serializer.
//
// Samples are evaluated in fixed size chunks, each chunk in its own
// goroutine. The first error cancels any chunk that has not yet started and
// no table is returned. The output is identical to a sequential evaluation
// because every sample is written to its own slot.
package pipeline
