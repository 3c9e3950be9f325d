package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vasalvit/stitcher"
)

var version = "0.2.0-dev"

const projectURL = "https://github.com/rbedia/circle-stitcher"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "circle-stitcher: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "circle-stitcher [flags] COMMANDS",
		Short: "Generate circle stitching templates as SVG",
		Long: `circle-stitcher draws a string art template from a command string.

Globals, all optional, in this order:
  W float   width and height of the image (default 3.65" / 92.71mm)
  H int     number of holes (default 32)
  OC float  radius of the hole circle (default 0.73" / 18.542mm)
  K float   pointiness, -1 to 1 (default 0)
  N int     number of sides (default 1)
  M float   points per side (default 0)
  IC float  radius of the punched center (default 0.63" / 16.002mm)

Sequences, separated by ';':
  L int[,int...] [S int] [C int]
  L lists the skip lengths, S the start hole, C the number of chords.
  Without C a sequence runs until it would repeat itself.

Examples:
  circle-stitcher -o out.svg "H 16 L 7,1"
  circle-stitcher --mm -o out.svg "H 40 OC 30 L 13 ; L 11 S 1"
  circle-stitcher -o out.svg "H 36 K 0.5 N 3 L 10,1 ; L 5 C 12"`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	rootCmd.Flags().Bool("mm", false, "Measurements are in millimeters")
	rootCmd.Flags().Bool("inch", false, "Measurements are in inches (default)")
	rootCmd.Flags().StringP("out", "o", "", "SVG output file, - for stdout")
	rootCmd.Flags().String("theme", "", "YAML theme file")
	rootCmd.Flags().String("png", "", "Also write a PNG preview to this file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("mm", "inch")
	_ = rootCmd.MarkFlagRequired("out")

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	mm, _ := cmd.Flags().GetBool("mm")
	out, _ := cmd.Flags().GetString("out")
	themePath, _ := cmd.Flags().GetString("theme")
	pngPath, _ := cmd.Flags().GetString("png")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(cmd.ErrOrStderr(), "circle-stitcher: ", log.Ltime)
	}

	unit := stitcher.Inch
	if mm {
		unit = stitcher.Millimeter
	}

	parsed, err := stitcher.Parse(args[0], unit)
	if err != nil {
		return err
	}
	logger.Printf("parsed %d sequence(s) on %d holes", len(parsed.Sequences), parsed.Holes)

	theme, err := stitcher.LoadTheme(themePath)
	if err != nil {
		return err
	}

	layout := stitcher.DefaultLayout()
	credit := stitcher.Credit{Name: "circle-stitcher " + version, URL: projectURL}
	drawing, err := stitcher.NewRenderer(theme, layout, credit).Render(parsed)
	if err != nil {
		return err
	}
	for i, s := range drawing.Sequences {
		logger.Printf("sequence %d: %d chords, %d%s of thread", i+1, s.Chords, s.PhysicalLength, unit.Symbol())
	}

	if err := writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
		return stitcher.WriteSVG(w, drawing, theme, layout, credit)
	}); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)

	if pngPath != "" {
		if err := writeOutput(cmd.OutOrStdout(), pngPath, func(w io.Writer) error {
			return stitcher.WritePNG(w, drawing, theme, layout)
		}); err != nil {
			return err
		}
		logger.Printf("wrote %s", pngPath)
	}

	return nil
}

// writeOutput runs write against the named file, or stdout for "-".
func writeOutput(stdout io.Writer, name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(stdout)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("error creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return f.Close()
}
