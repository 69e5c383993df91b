//go:build ebiten

package render

import (
	"conway-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Presenter uploads packed frames into a single RGBA image and draws it.
type Presenter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPresenter allocates a presenter for frames of w*h pixels.
func NewPresenter(w, h int) *Presenter {
	return &Presenter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// NewBoardPresenter sizes a presenter for the fixed board at core.Scale.
func NewBoardPresenter() *Presenter {
	return NewPresenter(core.Width*core.Scale, core.Height*core.Scale)
}

// Present uploads frame and draws it onto dst. It fails when the frame length
// does not match the presenter's dimensions.
func (p *Presenter) Present(dst *ebiten.Image, frame Frame) error {
	if len(frame) != p.w*p.h {
		return errors.Wrapf(ErrFrameSize, "present: frame has %d pixels, window is %dx%d", len(frame), p.w, p.h)
	}
	if err := FillRGBA(p.buf, frame); err != nil {
		return errors.Wrap(err, "present")
	}
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
	return nil
}

// Size returns the dimensions of the underlying image.
func (p *Presenter) Size() (int, int) { return p.w, p.h }
