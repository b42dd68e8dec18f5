// SPDX-License-Identifier: EPL-2.0

// Command sine-cli inspects, validates and converts entrainment presets.
//
//	sine-cli preset.sin                       print title, author, description and length
//	sine-cli -validate preset.sin             check the preset against the configured limits
//	sine-cli -import old.hbs                  convert a legacy preset to old.sin
//	sine-cli -export-legacy hbs preset.sin    write track 0 as preset.hbs
//	sine-cli -curves curves.wav preset.sin    dump every envelope as a WAV channel
//
// Legacy files (.hbx, .hbs, .hbl) are imported on the fly wherever a preset
// is expected. Settings come from the environment and the -env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/entrain"
	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/formats/sin"
	"github.com/ik5/entrain/importer"
	"github.com/ik5/entrain/internal/config"
	"github.com/ik5/entrain/preset"
)

// Exit codes.
const (
	exitOK          = 0
	exitNotFound    = 1
	exitInvalid     = 2
	exitCannotWrite = 3
	exitSyntax      = 255
)

func main() {
	os.Exit(run(logger.WithContext(context.Background()), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sine-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		validate     = fs.Bool("validate", false, "check the preset against the configured limits")
		doImport     = fs.Bool("import", false, "convert a legacy preset to a native one")
		exportLegacy = fs.String("export-legacy", "", "write track 0 as a legacy preset: hbs, hbx or hbl")
		curves       = fs.String("curves", "", "write the envelopes as a multi-channel WAV file")
		output       = fs.String("o", "", "output path for -import and -export-legacy (default: input name with the new extension, .converted added when that is the input)")
		envFile      = fs.String("env", ".env", "settings file")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sine-cli [flags] presetFile")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, "\nexit codes: 0 ok, 1 file not found, 2 preset not valid, 3 cannot create file, 255 syntax error")
	}

	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		if err == nil {
			fs.Usage()
		}
		return exitSyntax
	}
	if *exportLegacy != "" && !slices.Contains([]string{entrain.FormatHBL, entrain.FormatHBS, entrain.FormatHBX}, strings.ToLower(*exportLegacy)) {
		fmt.Fprintf(stderr, "unknown legacy format %q\n", *exportLegacy)
		return exitSyntax
	}

	conf, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "bad settings: %v\n", err)
		return exitSyntax
	}

	in := fs.Arg(0)
	p, code := load(ctx, in, stdout, stderr)
	if code != exitOK {
		return code
	}

	if *validate {
		if err := p.Validate(conf.Limits); err != nil {
			fmt.Fprintf(stderr, "Preset not valid: %v\n", err)
			return exitInvalid
		}
		fmt.Fprintln(stdout, "Preset valid")
	}

	if *doImport {
		out := outputPath(*output, in, sin.Extension)
		if err := entrain.SavePreset(ctx, out, p); err != nil {
			fmt.Fprintf(stderr, "Can't create file %v: %v\n", out, err)
			return exitCannotWrite
		}
		fmt.Fprintf(stdout, "Imported %v\n", out)
	}

	if *exportLegacy != "" {
		format := strings.ToLower(*exportLegacy)
		out := outputPath(*output, in, "."+format)
		be, err := importer.Flatten(p, 0)
		if err != nil {
			fmt.Fprintf(stderr, "Preset not valid: %v\n", err)
			return exitInvalid
		}
		if p.EntrainmentTrackCount() > 1 {
			logger.Wf(ctx, "export %v keeps track 0 of %v", out, p.EntrainmentTrackCount())
		}
		if err := entrain.SaveLegacy(ctx, out, be, format, conf.CompressionLevel); err != nil {
			fmt.Fprintf(stderr, "Can't create file %v: %v\n", out, err)
			return exitCannotWrite
		}
		fmt.Fprintf(stdout, "Exported %v\n", out)
	}

	if *curves != "" {
		if err := entrain.SaveCurves(ctx, *curves, p, conf.CurveRate); err != nil {
			fmt.Fprintf(stderr, "Can't create file %v: %v\n", *curves, err)
			return exitCannotWrite
		}
		fmt.Fprintf(stdout, "Curves %v\n", *curves)
	}

	return exitOK
}

// load reads a native or legacy preset and prints its summary.
func load(ctx context.Context, path string, stdout, stderr io.Writer) (*preset.Preset, int) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(stderr, "File not found: %v\n", path)
		return nil, exitNotFound
	}

	var (
		p   *preset.Preset
		err error
	)
	if slices.Contains(importer.Extensions, strings.ToLower(filepath.Ext(path))) {
		p, err = entrain.ImportLegacy(ctx, path)
	} else {
		p, err = entrain.LoadPreset(ctx, path)
	}
	if err != nil {
		if errors.Cause(err) == codec.ErrIO {
			fmt.Fprintf(stderr, "File not found: %v\n", path)
			return nil, exitNotFound
		}
		fmt.Fprintf(stderr, "Preset not valid: %v\n", path)
		return nil, exitInvalid
	}

	fmt.Fprintf(stdout, "Title:\t%v\nAuthor:\t%v\nDescription:\t%v\nLength:\t%v", p.Title, p.Author, p.Description, toHMS(p.Length))
	if p.Loops() {
		fmt.Fprintf(stdout, ", loops after %v", toHMS(p.Loop))
	}
	fmt.Fprintln(stdout)

	return p, exitOK
}

func outputPath(explicit, in, ext string) string {
	if explicit != "" {
		return explicit
	}

	stem := strings.TrimSuffix(in, filepath.Ext(in))
	if strings.EqualFold(filepath.Ext(in), ext) {
		// Never write over the file being read.
		return stem + ".converted" + ext
	}

	return stem + ext
}

// toHMS formats seconds as HH:MM:SS, truncating fractions.
func toHMS(t float32) string {
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
