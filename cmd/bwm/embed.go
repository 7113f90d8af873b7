package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/octu0/bwm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var inputExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
	".gif":  {},
	".webp": {},
}

type embedFlags struct {
	codecFlags
	input     string
	output    string
	prefix    string
	text      string
	recursive bool
	parallel  int
	verbose   bool
}

func newEmbedCommand() *cobra.Command {
	f := new(embedFlags)
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "embed a text watermark into an image or a directory of images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input image file or directory")
	cmd.Flags().StringVarP(&f.text, "string", "s", "", "watermark text")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file, single input only")
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", "", "output file name prefix")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "walk subdirectories")
	cmd.Flags().IntVar(&f.parallel, "parallel", runtime.NumCPU(), "files processed concurrently")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "debug logging")
	f.register(cmd)

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("string")
	cmd.MarkFlagsMutuallyExclusive("output", "prefix")
	cmd.MarkFlagsOneRequired("output", "prefix")
	return cmd
}

func runEmbed(cmd *cobra.Command, f *embedFlags) error {
	logger := newLogger(f.verbose)
	wm, err := f.watermarker(cmd, logger)
	if err != nil {
		return err
	}
	bits := bwm.BytesToBits([]byte(f.text))
	logger.Info("watermark", "bits", len(bits), "mode", wm.Config().Mode.String())

	info, err := os.Stat(f.input)
	if err != nil {
		return errors.WithStack(err)
	}
	if info.IsDir() != true {
		out := f.output
		if out == "" {
			out = outputPath(f.input, f.prefix)
		}
		if bwm.IsLossless(out) != true {
			logger.Warn("lossy output format may not keep the watermark", "output", out)
		}
		return embedOne(wm, f.input, out, bits, "1/1")
	}
	if f.output != "" {
		return errors.Errorf("--output requires a single input file, use --prefix for %s", f.input)
	}

	files, err := collectImages(f.input, f.recursive)
	if err != nil {
		return err
	}
	logger.Info("found images", "dir", f.input, "files", len(files))

	done := new(atomic.Int64)
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(max(1, f.parallel))
	for _, path := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := done.Add(1)
			return embedOne(wm, path, outputPath(path, f.prefix), bits, fmt.Sprintf("%d/%d", n, len(files)))
		})
	}
	if err := eg.Wait(); err != nil && errors.Is(err, context.Canceled) != true {
		return err
	}
	return nil
}

func embedOne(wm *bwm.Watermarker, in, out string, bits []bool, progress string) error {
	logger := wm.Config().Logger
	src, err := bwm.DecodeFile(in)
	if err != nil {
		return err
	}
	dst, report, err := wm.EmbedPlanes(src, bits)
	if err != nil {
		return errors.Wrapf(err, "embed %s", in)
	}
	if err := bwm.EncodeFile(out, dst); err != nil {
		return err
	}
	written, err := bwm.DecodeFile(out)
	if err != nil {
		return err
	}
	psnr, err := bwm.PSNR(src, written)
	if err != nil {
		return err
	}
	logger.Info("embedded",
		"progress", progress,
		"input", in,
		"output", out,
		"blocks", report.Layout.Blocks(),
		"degraded", report.Degraded,
		"psnr", psnr,
	)
	return nil
}

// outputPath places <prefix><name> next to in. Inputs whose format cannot
// be written without loss are saved as png.
func outputPath(in, prefix string) string {
	dir, name := filepath.Split(in)
	if bwm.IsLossless(name) != true {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return filepath.Join(dir, prefix+name)
}

func collectImages(root string, recursive bool) ([]string, error) {
	files := make([]string, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && recursive != true {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := inputExts[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return files, nil
}
