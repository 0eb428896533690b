package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/topology"
	"github.com/spf13/cobra"
)

var containsNonZero bool

var containsCmd = &cobra.Command{
	Use:   "contains [script] x y [x y ...]",
	Short: "Classify points against the closed wires of the sketch built by a script",
	Long: `Replay a script, build the closed wires of the resulting sketch and report for every
query point whether it lies inside, outside or on the boundary of each wire.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 || (len(args)-1)%2 != 0 {
			return fmt.Errorf("need a script followed by x y pairs")
		}
		return nil
	},
	Run: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
	containsCmd.Flags().BoolVar(&containsNonZero, "nonzero", false, "use the non-zero winding fill rule instead of even-odd")
}

func runContains(cmd *cobra.Command, args []string) {
	points, err := parsePoints(args[1:])
	exitOnError("Error parsing points", err)

	s, _, err := replay(args[0])
	exitOnError("Error replaying script", err)
	sk, err := targetSketch(s)
	exitOnError("Error", err)

	wires, err := s.Wires(sk.ID)
	exitOnError("Error", err)

	rule := topology.EvenOdd
	if containsNonZero {
		rule = topology.NonZero
	}

	heading("Containment")
	fmt.Printf("Sketch: %s, %d wire(s), fill rule %s\n\n", sk.Name, len(wires), rule)

	for _, p := range points {
		fmt.Printf("Point %s:\n", analysis.FormatVector(p))
		for i, w := range wires {
			region, err := w.Region()
			if err != nil {
				warn("wire %d: %v", i+1, err)
				continue
			}
			fmt.Printf("  wire %d %v: %s\n", i+1, w.Entities(), region.Locate(p, rule))
		}
		if i, ok := topology.Innermost(wires, p); ok {
			fmt.Printf("  innermost: wire %d\n", i+1)
		}
		if id, d := analysis.FindNearestPoint(sk.Store, p); id != 0 {
			fmt.Printf("  nearest point: %d, %s away\n", id, analysis.FormatMeasurement(d, ""))
		}
	}
}

func parsePoints(args []string) ([]geometry.Vector2, error) {
	var points []geometry.Vector2
	for i := 0; i+1 < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("x %q: %w", args[i], err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("y %q: %w", args[i+1], err)
		}
		points = append(points, geometry.Vector2{X: x, Y: y})
	}
	return points, nil
}
