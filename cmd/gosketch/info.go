package main

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [script]",
	Short: "Display measurements of the sketch built by a script",
	Long:  "Replay a script and show entity counts, bounds, edge length statistics and closed wires of the resulting sketch.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	s, _, err := replay(args[0])
	exitOnError("Error replaying script", err)

	sk, err := targetSketch(s)
	exitOnError("Error", err)

	result := analysis.AnalyzeSketch(sk.Store)

	heading("Sketch Information")
	fmt.Printf("Name: %s\n", sk.Name)
	fmt.Printf("Script: %s\n", args[0])
	fmt.Printf("Plane: %s, origin %s, normal %s\n\n", sk.Plane.Name(), sk.Plane.Origin, sk.Plane.Normal())

	fmt.Println("Entities:")
	fmt.Printf("  Points: %d\n", result.PointCount)
	fmt.Printf("  Lines: %d\n", result.LineCount)
	fmt.Printf("  Circles: %d\n", result.CircleCount)
	fmt.Printf("  Arcs: %d\n\n", result.ArcCount)

	if !result.Bounds.IsEmpty() {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.Bounds.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.Bounds.Max))
		fmt.Printf("  Center: %s\n", analysis.FormatVector(result.Bounds.Center()))
		fmt.Printf("  Width: %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
		fmt.Printf("  Height: %s\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
		lo, hi := sk.Plane.WorldBounds(result.Bounds)
		fmt.Printf("  World: %s .. %s\n\n", lo, hi)
	}

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Total: %.6f units\n", result.TotalLength)
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Printf("Wires: %d\n", len(result.Wires))
	for i, w := range result.Wires {
		fmt.Printf("  %d: entities %v, area %.6f, perimeter %.6f\n", i+1, w.Entities, w.Area, w.Perimeter)
	}
}
