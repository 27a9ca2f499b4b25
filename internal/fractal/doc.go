// Package fractal samples escape-time counts of the Mandelbrot set.
//
// The package defines the data the rest of the pipeline consumes:
//
//   - [Viewport]: rectangular region of the complex plane
//   - [Grid]: LargeHeight x LargeWidth escape counts for one viewport
//   - [Sample]: fills a Grid for a Viewport
//
// # Example
//
//	g := fractal.Sample(fractal.DefaultViewport())
//	fmt.Println(g.At(0, 0), g.Mean())
//
// Sampling is a pure function of the viewport and the package constants.
package fractal
