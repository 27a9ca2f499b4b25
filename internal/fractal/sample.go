package fractal

// Escape returns the number of z <- z^2 + c steps taken before |z|^2
// reaches EscapeRadiusSquared, capped at MaxIterations.
func Escape(cr, ci float64) int {
	zr, zi := 0.0, 0.0
	n := 0
	for n < MaxIterations && zr*zr+zi*zi < EscapeRadiusSquared {
		temp := zr*zr - zi*zi + cr
		zi = 2.0*zr*zi + ci
		zr = temp
		n++
	}
	return n
}

// Sample computes a fresh LargeHeight x LargeWidth grid for v.
func Sample(v Viewport) *Grid {
	return SampleInto(NewGrid(LargeWidth, LargeHeight), v)
}

// SampleInto overwrites g with the counts for v and returns it.
func SampleInto(g *Grid, v Viewport) *Grid {
	xSpan, ySpan := v.Span()
	for y := 0; y < g.Height; y++ {
		ci := v.YMin + (float64(y)/float64(g.Height))*ySpan
		row := g.Counts[y*g.Width : (y+1)*g.Width]
		for x := range row {
			cr := v.XMin + (float64(x)/float64(g.Width))*xSpan
			row[x] = Escape(cr, ci)
		}
	}
	return g
}
