//go:build cgo

package hal

import (
	"time"

	"panim/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes.
func RunWindow(hc Config, newApp func(HAL) StepFunc) error {
	if hc.TPS <= 0 {
		hc.TPS = 60
	}
	if hc.Scale <= 0 {
		hc.Scale = 1
	}
	h := newHost(hc)
	defer h.close()
	step := newApp(h)

	g := &hostGame{h: h, step: step, fallback: 1 / float64(hc.TPS)}
	title := hc.Title
	if title == "" {
		title = "panim"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(float64(h.fb.Width())*hc.Scale), int(float64(h.fb.Height())*hc.Scale))
	ebiten.SetTPS(hc.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h        *hostHAL
	fbImg    *ebiten.Image
	step     StepFunc
	fallback float64
}

func (g *hostGame) Update() error {
	if g.h.kbd.poll() {
		return ebiten.Termination
	}
	dt := g.h.t.since(time.Now(), g.fallback)
	g.h.t.step(dt)
	if g.step != nil {
		if err := g.step(dt); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width() || g.fbImg.Bounds().Dy() != fb.Height() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.fbImg.WritePixels(fb.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
