package convex

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering. RenderPNG dumps one or more polygons to a PNG, each
// in its own color, with the y axis pointing up. Handy for eyeballing
// split results.

const renderPadding = 10

var renderColors = [][3]float64{
	{0, 0.5, 0},
	{0.5, 0, 0.5},
	{0, 0.4, 0.6},
	{0.6, 0.4, 0},
}

// RenderPNG draws the polygons scaled by the given factor and writes a
// PNG to path.
func RenderPNG(path string, scale float64, polygons ...*Polygon) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		min, max := poly.BoundingBox()
		minX = math.Min(minX, min.X)
		minY = math.Min(minY, min.Y)
		maxX = math.Max(maxX, max.X)
		maxY = math.Max(maxY, max.Y)
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range polygons {
		ring := poly.CCW()
		if ring.Len() == 0 {
			continue
		}
		start := ring.At(0).Coordinate()
		c.MoveTo(start.X, start.Y)
		for j := 1; j < ring.Len(); j++ {
			p := ring.At(j).Coordinate()
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		color := renderColors[i%len(renderColors)]
		c.SetRGB(color[0], color[1], color[2])
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// RenderToTerminal renders to a temp file and cats it to stdout for
// terminals that support inline images.
func RenderToTerminal(scale float64, polygons ...*Polygon) error {
	const path = "/tmp/convex_debug.png"
	if err := RenderPNG(path, scale, polygons...); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
