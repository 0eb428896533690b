package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/gosketch/pkg/openscad"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportRender   string
	exportMaxError float64
)

var exportCmd = &cobra.Command{
	Use:   "export [script]",
	Short: "Export the closed wires of a replayed sketch as an OpenSCAD polygon",
	Long: `Replay a script and write every closed wire of the resulting sketch as one
OpenSCAD polygon. Nested wires become holes. With --render the polygon is
converted by the openscad tool, e.g. to SVG or DXF.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output .scad file (default: stdout)")
	exportCmd.Flags().StringVar(&exportRender, "render", "", "render the .scad file to this path with openscad")
	exportCmd.Flags().Float64Var(&exportMaxError, "max-error", openscad.DefaultMaxError, "largest chord deviation for arcs, in sketch units")
}

func runExport(cmd *cobra.Command, args []string) {
	if exportRender != "" && exportOutput == "" {
		exitOnError("Error", fmt.Errorf("--render needs --output"))
	}

	s, _, err := replay(args[0])
	exitOnError("Error replaying script", err)
	sk, err := targetSketch(s)
	exitOnError("Error", err)
	wires, err := s.Wires(sk.ID)
	exitOnError("Error", err)

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		exitOnError("Error creating output", err)
		defer f.Close()
		out = f
	}
	exitOnError("Error exporting", openscad.Write(out, sk.Name, wires, exportMaxError))

	if exportRender != "" {
		wd, err := os.Getwd()
		exitOnError("Error", err)
		r := openscad.NewRenderer(wd)
		exitOnError("Error rendering", r.Render(context.Background(), exportOutput, exportRender))
		fmt.Fprintf(os.Stderr, "Rendered %s\n", filepath.Clean(exportRender))
	}
}
