// Command pixelate applies image filters from the command line.
//
// Usage:
//
//	pixelate -i photo.jpg -o edges.png edge --intensity 2
//	pixelate -i photo.jpg halftone
//	pixelate -i photo.jpg pipeline invert,grayscale,edge:method=scharr
//	pixelate list
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/pixelate"
	"github.com/gogpu/pixelate/raster"
)

func init() {
	// -v is taken by --verbose.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pixelate:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pixelate",
		Usage:   "apply image filters",
		Version: pixelate.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input image (png, jpeg, bmp, tiff, webp)",
				EnvVars: []string{"PIXELATE_INPUT"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output image; the extension selects the format (default <input>_<filter>.png)",
				EnvVars: []string{"PIXELATE_OUTPUT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every filter stage",
				EnvVars: []string{"PIXELATE_VERBOSE"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   runtime.GOMAXPROCS(0),
				Usage:   "goroutines used by convolution",
				EnvVars: []string{"PIXELATE_WORKERS"},
			},
		},
		Before:   setupLogging,
		Commands: commands(),
	}
}

// setupLogging routes library logs to stderr.
func setupLogging(c *cli.Context) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	pixelate.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// run loads the input, applies f and writes the result.
func run(c *cli.Context, f pixelate.Filter) error {
	input := c.String("input")
	if input == "" {
		return errors.New("input file is required (--input)")
	}
	output := c.String("output")
	if output == "" {
		output = defaultOutput(input, c.Command.Name)
	}

	src, err := raster.Load(input)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := f.Apply(src)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := raster.Save(output, out); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %s -> %s (%s) in %v\n",
		f.Name(), src, output, out.Format(), elapsed.Round(time.Microsecond))
	return nil
}

// defaultOutput derives "dir/name_suffix.png" from the input path.
func defaultOutput(input, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+"_"+suffix+".png")
}
