package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/pixelate"
	"github.com/gogpu/pixelate/dither"
)

func commands() []*cli.Command {
	return []*cli.Command{
		filterCommand("grayscale", "reduce RGB to gray with weighted luminance",
			[]cli.Flag{
				&cli.Float64Flag{Name: "red", Value: pixelate.LumaR, Usage: "red weight"},
				&cli.Float64Flag{Name: "green", Value: pixelate.LumaG, Usage: "green weight"},
				&cli.Float64Flag{Name: "blue", Value: pixelate.LumaB, Usage: "blue weight"},
			},
			func(c *cli.Context) pixelate.Params {
				return pixelate.Params{
					"red":   formatFloat(c.Float64("red")),
					"green": formatFloat(c.Float64("green")),
					"blue":  formatFloat(c.Float64("blue")),
				}
			}),
		filterCommand("halftone", "black and white ordered dither", nil, nil),
		filterCommand("dither", "ordered dither of every channel", nil, nil),
		filterCommand("gamma", "apply a gamma curve",
			[]cli.Flag{
				&cli.Float64Flag{Name: "gamma", Aliases: []string{"g"}, Required: true, Usage: "gamma value, > 0"},
			},
			func(c *cli.Context) pixelate.Params {
				return pixelate.Params{"gamma": formatFloat(c.Float64("gamma"))}
			}),
		filterCommand("invert", "invert every channel", nil, nil),
		filterCommand("edge", "detect edges",
			[]cli.Flag{
				&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Value: string(pixelate.EdgeSobel), Usage: "sobel, prewitt or scharr"},
				&cli.Float64Flag{Name: "intensity", Value: 1, Usage: "output multiplier, >= 0"},
			},
			func(c *cli.Context) pixelate.Params {
				return pixelate.Params{
					"method":    c.String("method"),
					"intensity": formatFloat(c.Float64("intensity")),
					"workers":   workersParam(c.Int("workers")),
				}
			}),
		filterCommand("diffuse", "black and white error diffusion",
			[]cli.Flag{
				&cli.StringFlag{Name: "matrix", Value: dither.DefaultMatrix, Usage: fmt.Sprintf("one of %v", dither.Matrices())},
				&cli.BoolFlag{Name: "serpentine", Usage: "alternate row direction"},
			},
			func(c *cli.Context) pixelate.Params {
				return pixelate.Params{
					"matrix":     c.String("matrix"),
					"serpentine": strconv.FormatBool(c.Bool("serpentine")),
				}
			}),
		{
			Name:      "pipeline",
			Usage:     "apply a chain of filters; edge stages use --workers unless they set workers=",
			ArgsUsage: "<name[:key=value...],name...>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("pipeline: expected one chain argument, got %d", c.NArg())
				}
				f, err := pixelate.ParseChain(c.Args().First(), stageDefaults(c.Int("workers")))
				if err != nil {
					return err
				}
				return run(c, f)
			},
		},
		{
			Name:   "list",
			Usage:  "list available filters",
			Action: listFilters,
		},
	}
}

// filterCommand builds a subcommand that applies the registered filter
// name. params converts flags to registry parameters and may be nil.
func filterCommand(name, usage string, flags []cli.Flag, params func(*cli.Context) pixelate.Params) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(c *cli.Context) error {
			var p pixelate.Params
			if params != nil {
				p = params(c)
			}
			f, err := pixelate.NewFilter(name, p)
			if err != nil {
				return err
			}
			return run(c, f)
		},
	}
}

// stageDefaults carries global flags into stages parsed from a chain.
func stageDefaults(workers int) pixelate.ChainOption {
	return pixelate.WithStageDefaults("edge", pixelate.Params{"workers": workersParam(workers)})
}

func workersParam(n int) string {
	return strconv.Itoa(max(n, 1))
}

func listFilters(c *cli.Context) error {
	for _, name := range pixelate.Names() {
		f, err := pixelate.NewFilter(name, nil)
		if err != nil {
			fmt.Fprintln(c.App.Writer, name)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%-10s %s\n", name, f.Arity())
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
