package zoom_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/zoom"
)

var _ = Describe("Controller", func() {
	var (
		c *zoom.Controller
		v fractal.Viewport
		s zoom.State
	)

	BeforeEach(func() {
		c = zoom.NewDefault()
		v = fractal.DefaultViewport()
		s = zoom.State{}
	})

	It("starts zooming in with no frames counted", func() {
		Expect(s.Direction).To(Equal(zoom.ZoomingIn))
		Expect(s.FrameCount).To(BeZero())
	})

	It("shrinks both spans by the factor on each of the first ten calls", func() {
		flips := 0
		for call := 1; call <= zoom.DefaultMaxFrames; call++ {
			prevX, prevY := v.Span()
			prevDir := s.Direction

			v, s = c.Advance(v, s)

			x, y := v.Span()
			Expect(x).To(BeNumerically("~", prevX*0.9, 1e-12))
			Expect(y).To(BeNumerically("~", prevY*0.9, 1e-12))

			if s.Direction != prevDir {
				flips++
				Expect(call).To(Equal(zoom.DefaultMaxFrames))
			}
			if call < zoom.DefaultMaxFrames {
				Expect(s.FrameCount).To(Equal(call))
			}
		}

		Expect(flips).To(Equal(1))
		Expect(s.Direction).To(Equal(zoom.ZoomingOut))
		Expect(s.FrameCount).To(BeZero())
	})

	It("grows both spans by the inverse factor while zooming out and keeps the center", func() {
		s = zoom.State{Direction: zoom.ZoomingOut}
		v = fractal.Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}
		cx, cy := v.Center()
		prevX, prevY := v.Span()

		v, s = c.Advance(v, s)

		x, y := v.Span()
		Expect(x).To(BeNumerically("~", prevX/0.9, 1e-12))
		Expect(y).To(BeNumerically("~", prevY/0.9, 1e-12))

		nx, ny := v.Center()
		Expect(nx).To(BeNumerically("~", cx, 1e-12))
		Expect(ny).To(BeNumerically("~", cy, 1e-12))
		Expect(s.Direction).To(Equal(zoom.ZoomingOut))
		Expect(s.FrameCount).To(Equal(1))
	})

	It("keeps the viewport ordered across many cycles", func() {
		for i := 0; i < 20*zoom.DefaultMaxFrames; i++ {
			v, s = c.Advance(v, s)
			Expect(v.IsValid()).To(BeTrue())
		}
	})
})
