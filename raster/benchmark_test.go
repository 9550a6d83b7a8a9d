package raster

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillRing benchmarks filling a ring split into sectors, clipped
// to a disc, like the cells of one badge slice.
func BenchmarkFillRing(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			center := float64(size) / 2

			var cells []*path.Data
			for i := range 8 {
				cells = append(cells, makeRingSector(center, center, 0.3*center, 0.9*center,
					float64(i)*math.Pi/4, float64(i+1)*math.Pi/4))
			}
			clip := makeCircle(center, center, 0.8*center)
			col := color.NRGBA{R: 0x1e, G: 0xa1, B: 0x6c, A: 255}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				c.Fill(cells, clip, col)
			}
		})
	}
}

// BenchmarkStrokeCircle benchmarks stroking a circle of cubic Bézier
// curves.
func BenchmarkStrokeCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			center := float64(size) / 2
			circle := makeCircle(center, center, 0.45*float64(size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				c.Stroke(circle, 1.3, color.Black)
			}
		})
	}
}

// makeCircle returns a clockwise circle made of four cubic Bézier curves.
func makeCircle(cx, cy, r float64) *path.Data {
	// magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + kr}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + kr}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - kr}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - kr}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// makeRingSector returns the part of the ring between radii r0 and r1
// and angles a0 and a1 (in radians), with the arcs flattened to lines.
func makeRingSector(cx, cy, r0, r1, a0, a1 float64) *path.Data {
	const n = 16
	at := func(r, a float64) vec.Vec2 {
		return vec.Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}

	p := (&path.Data{}).MoveTo(at(r0, a0))
	for i := 0; i <= n; i++ {
		p = p.LineTo(at(r1, a0+(a1-a0)*float64(i)/n))
	}
	for i := n; i >= 0; i-- {
		p = p.LineTo(at(r0, a0+(a1-a0)*float64(i)/n))
	}
	return p.Close()
}
