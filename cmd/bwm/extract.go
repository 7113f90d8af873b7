package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type extractFlags struct {
	codecFlags
	input   string
	length  int
	verbose bool
}

func newExtractCommand() *cobra.Command {
	f := new(extractFlags)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "extract a text watermark from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "watermarked image file")
	cmd.Flags().IntVarP(&f.length, "length", "l", 0, "watermark length in bits")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "debug logging")
	f.register(cmd)

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("length")
	return cmd
}

func runExtract(cmd *cobra.Command, f *extractFlags) error {
	info, err := os.Stat(f.input)
	if err != nil {
		return errors.WithStack(err)
	}
	if info.Mode().IsRegular() != true {
		return errors.Errorf("%s is not a regular file", f.input)
	}
	wm, err := f.watermarker(cmd, newLogger(f.verbose))
	if err != nil {
		return err
	}
	text, err := wm.ExtractStringFile(f.input, f.length)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted watermark: %s\n", text)
	return nil
}
