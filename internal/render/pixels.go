package render

import (
	"image/color"

	"conway-ca/internal/core"

	"github.com/pkg/errors"
)

// Background is the packed 0xRRGGBB colour of dead cells.
const Background uint32 = 0x1B1036

// Palette holds the colours for live cells, indexed by (x+y) mod len(Palette).
var Palette = [...]uint32{
	0xFFFF00,
	0x00FFAA,
	0xFF00FF,
	0x00FFFF,
	0xFFAA00,
	0xAAFF00,
	0xFF6666,
	0x66AAFF,
}

// ErrFrameSize is returned when a frame does not match the expected pixel
// dimensions.
var ErrFrameSize = errors.New("frame size mismatch")

// Frame is a row-major buffer of packed 0xRRGGBB pixels.
type Frame []uint32

// FrameLen returns the pixel count for a grid of the given size at scale.
func FrameLen(s core.Size, scale int) int {
	return s.W * scale * s.H * scale
}

// NewFrame allocates a frame for the fixed board at core.Scale.
func NewFrame() Frame {
	return make(Frame, FrameLen(core.Size{W: core.Width, H: core.Height}, core.Scale))
}

// ColorAt returns the packed colour for the cell at (x, y).
func ColorAt(x, y int, alive bool) uint32 {
	if !alive {
		return Background
	}
	return Palette[(x+y)%len(Palette)]
}

// Draw rasterizes g into buf at core.Scale, overwriting every pixel.
func Draw(buf Frame, g *core.Grid) error {
	return DrawScaled(buf, g, core.Scale)
}

// DrawScaled rasterizes g into buf, expanding each cell to a scale×scale
// block.
func DrawScaled(buf Frame, g *core.Grid, scale int) error {
	s := g.Size()
	if want := FrameLen(s, scale); len(buf) != want {
		return errors.Wrapf(ErrFrameSize, "draw: have %d pixels, want %d", len(buf), want)
	}
	stride := s.W * scale
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := ColorAt(x, y, g.Get(x, y))
			for dy := 0; dy < scale; dy++ {
				row := (y*scale + dy) * stride
				for dx := 0; dx < scale; dx++ {
					buf[row+x*scale+dx] = c
				}
			}
		}
	}
	return nil
}

// RGBA unpacks a 0xRRGGBB value into an opaque colour.
func RGBA(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// FillRGBA converts packed pixels into RGBA bytes in dst.
func FillRGBA(dst []byte, src Frame) error {
	if len(dst) != 4*len(src) {
		return errors.Wrapf(ErrFrameSize, "rgba: have %d bytes, want %d", len(dst), 4*len(src))
	}
	for i, c := range src {
		base := i * 4
		dst[base+0] = uint8(c >> 16)
		dst[base+1] = uint8(c >> 8)
		dst[base+2] = uint8(c)
		dst[base+3] = 0xff
	}
	return nil
}
