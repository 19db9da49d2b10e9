package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/polygo/convex/convex"
)

// Demo of convex classification and splitting. Input on stdin should be
// newline separated points in the form "x y", with each polygon
// separated by an extra newline. Each input polygon is classified;
// valid ones are optionally split by a line and rendered.

var (
	splitSpec = kingpin.Flag("split", "Split each polygon by the line nx*x+ny*y+c=0, given as \"nx,ny,c\".").String()
	render    = kingpin.Flag("render", "Write the resulting polygons to this PNG file.").String()
	scale     = kingpin.Flag("scale", "Render scale in pixels per unit.").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	var results []*convex.Polygon
	for i, coords := range readCoordinateLists(os.Stdin) {
		dir := convex.ClassifyDirection(coords)
		fmt.Printf("polygon %d: %d points, direction %s\n", i, len(coords), dir)

		poly := convex.NewPolygonFromCoords(coords)
		if poly == nil {
			continue
		}
		fmt.Printf("  kept %d vertices\n", poly.Len())

		if *splitSpec == "" {
			results = append(results, poly)
			continue
		}
		line, err := parseLine(*splitSpec)
		if err != nil {
			log.Fatalf("bad --split value: %v", err)
		}
		front, back := poly.Split(line)
		if front != nil {
			fmt.Printf("  front: %d vertices\n", front.Len())
			results = append(results, front)
		}
		if back != nil {
			fmt.Printf("  back: %d vertices\n", back.Len())
			results = append(results, back)
		}
	}

	if *render != "" && len(results) > 0 {
		if err := convex.RenderPNG(*render, *scale, results...); err != nil {
			log.Fatalf("render failed: %v", err)
		}
		fmt.Println("wrote", *render)
	}
}

func readCoordinateLists(in *os.File) [][]convex.Vector {
	var lists [][]convex.Vector
	var coords []convex.Vector
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		// A blank line ends the current polygon.
		if strings.TrimSpace(line) == "" {
			if len(coords) > 0 {
				lists = append(lists, coords)
				coords = nil
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			log.Fatalf("expected \"x y\", got %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("bad x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("bad y value %q: %v", parts[1], err)
		}
		coords = append(coords, convex.V(x, y))
	}
	if len(coords) > 0 {
		lists = append(lists, coords)
	}
	return lists
}

func parseLine(spec string) (convex.Line, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return convex.Line{}, fmt.Errorf("expected \"nx,ny,c\", got %q", spec)
	}
	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return convex.Line{}, err
		}
		values[i] = v
	}
	n := convex.V(values[0], values[1])
	length := n.Length()
	if length == 0 {
		return convex.Line{}, fmt.Errorf("zero normal in %q", spec)
	}
	// Route through the constructor so the offset stays consistent with
	// the unit normal: the closest point to the origin is -c*n/|n|^2.
	return convex.NewLineFromNormal(n, n.Mul(-values[2]/(length*length))), nil
}
