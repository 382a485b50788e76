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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf(). The pattern
// identifies the error:
//
//	const InvalidDepth = "domain: invalid depth (%d)"
//
//	err := curated.Errorf(InvalidDepth, -1)
//	if curated.Is(err, InvalidDepth) {
//		...
//	}
//
// The Has() function checks whether a pattern occurs anywhere in the chain of
// curated errors. Is() only checks the outermost error.
//
//	f := curated.Errorf("pipeline: %v", err)
//	curated.Has(f, InvalidDepth) // true
//	curated.Is(f, InvalidDepth)  // false
//
// The error chain is normalised by Error(). Chains are thought of as parts
// separated by the sub-string ": ", and adjacent duplicate parts are removed.
// This means that functions can prefix their package name without worrying
// whether the callee has already done so:
//
//	mif: mif: cannot create file
//
// is reported as:
//
//	mif: cannot create file
//
// Any error values used as placeholders are returned by Unwrap() so the
// standard library errors.Is() and errors.As() functions continue to work
// through a curated error. This is useful for testing for os.ErrNotExist and
// similar sentinel values.
package curated
