// Package app implements the vesatiming command.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.design/x/clipboard"
	"golang.org/x/text/language"

	"github.com/katalvlaran/vesatiming/diagram"
	"github.com/katalvlaran/vesatiming/internal/appshell"
	"github.com/katalvlaran/vesatiming/internal/cli"
	"github.com/katalvlaran/vesatiming/internal/cmdutil"
	"github.com/katalvlaran/vesatiming/internal/version"
	"github.com/katalvlaran/vesatiming/preset"
	"github.com/katalvlaran/vesatiming/report"
	"github.com/katalvlaran/vesatiming/rtl"
	"github.com/katalvlaran/vesatiming/timing"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // I/O or internal computation error
	ExitUsage   = 2 // bad flags, unknown preset or out-of-range timing input
)

var getenv = os.Getenv

// copyToClipboard places text on the system clipboard.
var copyToClipboard = func(text string) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// RunContext runs the vesatiming command with argv and returns its exit code:
// ExitOK, ExitUsage for bad flags or timing input, ExitFailure for I/O and
// internal errors, or appshell.ExitInterrupted when ctx is cancelled before
// the artifacts are written.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("vesatiming")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	switch {
	case opts.Version:
		_, _ = fmt.Fprintf(outw, "vesatiming version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	case opts.ListPresets:
		for _, p := range preset.All() {
			_, _ = fmt.Fprintf(outw, "%-16s %s\n", p.Name, p.Note)
		}
		return flush(outw, stderr, ExitOK)
	}

	lang := pickLanguage(opts.Lang)

	req, err := request(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, report.ErrorText(err, lang))
		return ExitUsage
	}

	res, err := timing.Solve(req)
	if err != nil {
		writeError(outw, stderr, opts.Format, err, lang)
		_ = outw.Flush()
		return exitCode(err)
	}

	if err := writeResult(outw, opts.Format, res, lang); err != nil {
		if cmdutil.IsBrokenPipe(err) {
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	if code := flush(outw, stderr, ExitOK); code != ExitOK {
		return code
	}

	if ctx.Err() != nil {
		return appshell.ExitInterrupted
	}
	if err := writeArtifacts(opts, res, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, rtl.ErrBadModuleName) {
			return ExitUsage
		}
		return ExitFailure
	}

	if opts.Copy || opts.Format == cli.FormatCopy {
		if err := copyToClipboard(report.CopyText(res, lang)); err != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "clipboard unavailable: %v", err)
		} else {
			cmdutil.Infof(stderr, opts.Quiet, "results copied to clipboard")
		}
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// pickLanguage picks the label language from -lang, then $LC_ALL, then $LANG.
func pickLanguage(flagValue string) language.Tag {
	for _, s := range []string{flagValue, getenv("LC_ALL"), getenv("LANG")} {
		if s != "" {
			return report.MatchLanguage(s)
		}
	}
	return report.Supported[0]
}

// request turns the options into a timing request. A preset provides the
// resolution and, unless -clock is given alone, the refresh rate.
func request(opts cli.Options) (timing.Request, error) {
	req := timing.Request{
		HActive:     opts.HActive,
		VActive:     opts.VActive,
		RefreshRate: opts.RefreshRate,
		PixelClock:  opts.PixelClock,
	}
	if opts.Reduced {
		req.Blanking = timing.Reduced
	}
	if opts.Preset == "" {
		return req, nil
	}

	p, err := preset.Resolve(opts.Preset)
	if err != nil {
		return timing.Request{}, err
	}
	req.HActive, req.VActive = p.HActive, p.VActive
	if req.RefreshRate == nil && req.PixelClock == nil {
		req.RefreshRate = timing.Value(p.RefreshRate)
	}
	return req, nil
}

func exitCode(err error) int {
	if errors.Is(err, timing.ErrInternal) {
		return ExitFailure
	}
	return ExitUsage
}

func writeResult(w io.Writer, format string, res timing.Result, lang language.Tag) error {
	switch format {
	case cli.FormatJSON:
		return report.JSON(w, res)
	case cli.FormatCopy:
		_, err := fmt.Fprintln(w, report.CopyText(res, lang))
		return err
	default:
		return report.Table(w, res, lang)
	}
}

func writeError(w, stderr io.Writer, format string, err error, lang language.Tag) {
	switch format {
	case cli.FormatJSON:
		_ = report.JSONError(w, err)
	case cli.FormatCopy:
		_, _ = fmt.Fprintln(stderr, report.ErrorText(err, lang))
	default:
		_ = report.ErrorTable(w, err, lang)
	}
}

func writeArtifacts(opts cli.Options, res timing.Result, stderr io.Writer) error {
	if opts.RTLDir != "" {
		rtlOpts := []rtl.Option{rtl.WithFrames(opts.Frames)}
		name := rtl.DefaultModuleName(res)
		if opts.Module != "" {
			name = opts.Module
			rtlOpts = append(rtlOpts, rtl.WithModuleName(name))
		}
		mod, err := rtl.Module(res, rtlOpts...)
		if err != nil {
			return err
		}
		tb, err := rtl.Testbench(res, rtlOpts...)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(opts.RTLDir, 0o755); err != nil {
			return fmt.Errorf("rtl: %w", err)
		}
		files := []struct{ name, src string }{{name + ".v", mod}, {"tb_" + name + ".v", tb}}
		for _, f := range files {
			path := filepath.Join(opts.RTLDir, f.name)
			if err := os.WriteFile(path, []byte(f.src), 0o644); err != nil {
				return fmt.Errorf("rtl: %w", err)
			}
			cmdutil.Infof(stderr, opts.Quiet, "wrote %s", path)
		}
	}

	if opts.Diagram != "" {
		f, err := os.Create(opts.Diagram)
		if err != nil {
			return fmt.Errorf("diagram: %w", err)
		}
		err = diagram.WritePNG(f, res, diagram.Options{Width: opts.DiagramWidth})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		cmdutil.Infof(stderr, opts.Quiet, "wrote %s", opts.Diagram)
	}
	return nil
}

func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); cmdutil.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return code
}
