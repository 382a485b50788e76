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

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/fpgafx/mifgen/analysis"
	"github.com/fpgafx/mifgen/audition"
	"github.com/fpgafx/mifgen/curve"
	"github.com/fpgafx/mifgen/logger"
	"github.com/fpgafx/mifgen/mif"
	"github.com/fpgafx/mifgen/modalflag"
	"github.com/fpgafx/mifgen/performance"
	"github.com/fpgafx/mifgen/pipeline"
	"github.com/fpgafx/mifgen/plot"
	"github.com/fpgafx/mifgen/prefs"
	"github.com/fpgafx/mifgen/report"
	"github.com/fpgafx/mifgen/rom"
	"github.com/fpgafx/mifgen/statsview"
	"github.com/fpgafx/mifgen/version"
	"golang.org/x/term"
)

// exit values
const (
	exitCommandLine = 10
	exitMode        = 20
)

// plot options shared by the SINE and TRANSFER modes
type plotArgs struct {
	serve *bool
	html  *string
}

func main() {
	// the plot server runs until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	exitVal := launch(ctx, os.Args[1:], os.Stdout, styled)

	stop()
	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string, output io.Writer, styled bool) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TRANSFER", "SINE", "AUDITION", "ANALYSE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitCommandLine
	}

	switch md.Mode() {
	case "TRANSFER":
		err = transfer(ctx, md, output, styled)

	case "SINE":
		err = sine(ctx, md, output, styled)

	case "AUDITION":
		err = audit(md, output)

	case "ANALYSE":
		err = analyse(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

func setLog(log bool, output io.Writer) {
	if log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func addPlotArgs(md *modalflag.Modes) plotArgs {
	return plotArgs{
		serve: md.AddBool("s", false, fmt.Sprintf("serve diagnostic plot at %s until interrupted", plot.Address)),
		html:  md.AddString("html", "", "write diagnostic plot to HTML file"),
	}
}

func (pa plotArgs) wanted() bool {
	return *pa.serve || *pa.html != ""
}

func (pa plotArgs) show(ctx context.Context, p *plot.Plot, output io.Writer) error {
	if *pa.html != "" {
		if err := p.WriteFile(*pa.html); err != nil {
			return err
		}
		fmt.Fprintf(output, "plot written to %s\n", *pa.html)
	}
	if *pa.serve {
		return p.Serve(ctx, plot.Address, output)
	}
	return nil
}

func writeTable(filename string, tab *mif.Table, output io.Writer) error {
	if filename == "" {
		return nil
	}
	if err := mif.WriteFile(filename, tab); err != nil {
		return err
	}
	fmt.Fprintf(output, "%d entries written to %s\n", tab.Depth(), filename)
	return nil
}

func transfer(ctx context.Context, md *modalflag.Modes, output io.Writer, styled bool) error {
	md.NewMode()
	md.AdditionalHelp(`Parameters of the transfer function are set with -params. Available keys
are noisefloor, limiter, sigma, scale, angle (radians), zonea and bend. For
example:

	-params "noisefloor::20; limiter::10000; zonea::exponential"`)

	file := md.AddString("f", "", "write table to MIF file")
	params := md.AddString("params", "", "transfer function parameters")
	summary := md.AddBool("summary", false, "print summary of table")
	log := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "profile table generation: cpu, mem, both")
	pa := addPlotArgs(md)

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLog(*log, output)

	if stats != nil && *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	pr, err := curve.NewPreferences()
	if err != nil {
		return err
	}
	if *params != "" {
		prefs.PushCommandLineStack(*params)
		err = pr.LoadCommandLine()
		unused := prefs.PopCommandLineStack()
		if err != nil {
			return err
		}
		if unused != "" {
			return fmt.Errorf("unknown parameters: %s", unused)
		}
	}
	cfg := pr.Config()
	logger.Logf(logger.Allow, "mifgen", "transfer parameters: %s", pr)

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var tab *mif.Table
	err = performance.RunProfiler(prof, "transfer", func() error {
		var err error
		tab, err = pipeline.Transfer(ctx, cfg)
		return err
	})
	if err != nil {
		return err
	}

	if err := writeTable(*file, tab, output); err != nil {
		return err
	}

	if *summary {
		s := report.Summarise("transfer function", tab, report.TransferRegions(cfg))
		fmt.Fprint(output, s.Render(styled))
	}

	if !pa.wanted() {
		return nil
	}

	// the configuration has already been validated by pipeline.Transfer()
	tr, err := curve.NewTransfer(cfg)
	if err != nil {
		return err
	}
	wet, err := pipeline.Evaluate(ctx, tr)
	if err != nil {
		return err
	}
	mix, err := pipeline.Evaluate(ctx, curve.Crossfade{Wet: tr, Dry: 0.5})
	if err != nil {
		return err
	}

	return pa.show(ctx, plot.Transfer(cfg, wet, mix), output)
}

func sine(ctx context.Context, md *modalflag.Modes, output io.Writer, styled bool) error {
	md.NewMode()

	file := md.AddString("f", "", "write table to MIF file")
	summary := md.AddBool("summary", false, "print summary of table")
	log := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "profile table generation: cpu, mem, both")
	pa := addPlotArgs(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLog(*log, output)

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var tab *mif.Table
	err = performance.RunProfiler(prof, "sine", func() error {
		var err error
		tab, err = pipeline.Sine(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if err := writeTable(*file, tab, output); err != nil {
		return err
	}

	if *summary {
		s := report.Summarise("sine", tab, []report.Region{
			{Name: "rising", From: 0, To: tab.Depth() / 2},
			{Name: "falling", From: tab.Depth() / 2, To: tab.Depth()},
		})
		fmt.Fprint(output, s.Render(styled))
	}

	if !pa.wanted() {
		return nil
	}

	s, err := curve.NewSine(curve.DefaultSineDepth, curve.DefaultSineAmplitude)
	if err != nil {
		return err
	}
	values, err := pipeline.Evaluate(ctx, s)
	if err != nil {
		return err
	}

	return pa.show(ctx, plot.Sine(values, s.Amplitude()), output)
}

func loadROM(filename string) (*rom.ROM, error) {
	tab, err := mif.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return rom.New(tab)
}

func audit(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(`A MIF file is required. Audio is read from a WAV or MP3 file if one is
specified. Otherwise a test tone is synthesised.`)

	drive := md.AddFloat64("drive", 1.0, "multiply input by drive before lookup")
	out := md.AddString("o", "audition.wav", "output WAV file")
	freq := md.AddFloat64("freq", 440, "frequency of test tone")
	secs := md.AddFloat64("secs", 2, "length of test tone in seconds")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(*log, output)

	if math.IsNaN(*drive) || math.IsInf(*drive, 0) {
		return fmt.Errorf("drive must be finite for %s mode", md)
	}
	if math.IsNaN(*secs) || math.IsInf(*secs, 0) || *secs <= 0 {
		return fmt.Errorf("secs must be positive and finite for %s mode", md)
	}
	if math.IsNaN(*freq) || math.IsInf(*freq, 0) {
		return fmt.Errorf("freq must be finite for %s mode", md)
	}

	var in *audition.Signal

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("MIF file required for %s mode", md)
	case 1:
		in = audition.Tone(*freq, *secs, audition.DefaultSampleRate)
	case 2:
		in, err = audition.Load(md.GetArg(1))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	r, err := loadROM(md.GetArg(0))
	if err != nil {
		return err
	}

	rendered := audition.Render(r, in, *drive)
	if err := audition.WriteSignal(*out, rendered); err != nil {
		return err
	}

	fmt.Fprintf(output, "%.02fs of audio written to %s\n", rendered.Duration().Seconds(), *out)

	return nil
}

func analyse(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	freq := md.AddFloat64("freq", 440, "frequency of test tone")
	drive := md.AddFloat64("drive", 1.0, "multiply test tone by drive before lookup")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("MIF file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	r, err := loadROM(md.GetArg(0))
	if err != nil {
		return err
	}

	res, err := analysis.Harmonics(r, *freq, *drive)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, res)
	for i, db := range res.Decibels() {
		if res.Harmonics[i] == 0 {
			continue
		}
		fmt.Fprintf(output, "%2d: %6dHz %8.02fdB\n", i+1, res.Frequency*(i+1), db)
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())
	return nil
}
