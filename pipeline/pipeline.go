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

package pipeline

import (
	"context"

	"github.com/fpgafx/mifgen/curve"
	"github.com/fpgafx/mifgen/domain"
	"github.com/fpgafx/mifgen/logger"
	"github.com/fpgafx/mifgen/quantize"
	"golang.org/x/sync/errgroup"
)

// ChunkSize is the number of samples evaluated by each goroutine.
const ChunkSize = 1024

// Evaluate every sample of the function's domain. The returned slice has
// Depth()+1 entries.
func Evaluate(ctx context.Context, fn curve.Function) ([]float64, error) {
	chunks, err := domain.Chunks(fn.Depth(), ChunkSize)
	if err != nil {
		return nil, err
	}

	values := make([]float64, fn.Depth()+1)

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		g.Go(func() error {
			for x := c[0]; x < c[1]; x++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn.Eval(x)
				if err != nil {
					return err
				}
				values[x] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "pipeline", "evaluated %d samples in %d chunks", len(values), len(chunks))

	return values, nil
}

// Run evaluates the function and quantizes every sample to the specified
// width.
func Run(ctx context.Context, fn curve.Function, width int) ([]uint32, error) {
	values, err := Evaluate(ctx, fn)
	if err != nil {
		return nil, err
	}

	codes := make([]uint32, len(values))
	for i, v := range values {
		codes[i] = quantize.Code(v, width)
	}

	return codes, nil
}
