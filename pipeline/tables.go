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
	"fmt"

	"github.com/fpgafx/mifgen/curve"
	"github.com/fpgafx/mifgen/mif"
)

// Widths of the generated tables.
const (
	SineWidth     = 16
	TransferWidth = 15
)

// Sine builds the sinusoid table.
func Sine(ctx context.Context) (*mif.Table, error) {
	s, err := curve.NewSine(curve.DefaultSineDepth, curve.DefaultSineAmplitude)
	if err != nil {
		return nil, err
	}

	codes, err := Run(ctx, s, SineWidth)
	if err != nil {
		return nil, err
	}

	return &mif.Table{
		Header: []string{
			"This file is automatically generated by mifgen SINE",
			fmt.Sprintf("One period of a sinusoid. Amplitude: %g", s.Amplitude()),
		},
		Width: SineWidth,
		Data:  codes,
	}, nil
}

// Transfer builds the transfer function table for the configuration.
func Transfer(ctx context.Context, cfg curve.Config) (*mif.Table, error) {
	tr, err := curve.NewTransfer(cfg)
	if err != nil {
		return nil, err
	}

	codes, err := Run(ctx, tr, TransferWidth)
	if err != nil {
		return nil, err
	}

	return &mif.Table{
		Header: TransferHeader(cfg),
		Width:  TransferWidth,
		Data:   codes,
	}, nil
}

// TransferHeader returns the annotation written at the top of a transfer
// function table.
func TransferHeader(cfg curve.Config) []string {
	return []string{
		"This file is automatically generated by mifgen TRANSFER",
		"Can be used as an overdrive/compressor transfer function wet = f(dry)",
		"performed by ROM. To see what it actually does run it with -s argument",
		"and the same parameters (shows plot of dry and wet transfer functions)",
		"Parameters:",
		fmt.Sprintf("Dynamic range: 0:%d", cfg.Depth),
		fmt.Sprintf("Noise floor: %d (%s)", cfg.NoiseFloor, cfg.ZoneA),
		fmt.Sprintf("Soft strum: %d (informative)", cfg.SoftStrum),
		fmt.Sprintf("Hard strum: %d (informative)", cfg.HardStrum),
		fmt.Sprintf("Peak: %d (informative)", cfg.Peak),
		fmt.Sprintf("Input limiter: %d", cfg.InputLimiter),
		fmt.Sprintf("Sigma: %g", cfg.Sigma),
		fmt.Sprintf("Scale divisor: %g", cfg.ScaleDivisor),
		"(informative parameters don't affect calculation)",
	}
}
