package hal

import "image"

type hostFramebuffer struct {
	img *image.RGBA
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *hostFramebuffer) Width() int          { return f.img.Bounds().Dx() }
func (f *hostFramebuffer) Height() int         { return f.img.Bounds().Dy() }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) Image() *image.RGBA  { return f.img }
func (f *hostFramebuffer) Present() error      { return nil }
