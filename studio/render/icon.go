package render

import (
	"fmt"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon is a parsed SVG document.
type Icon struct {
	svg *oksvg.SvgIcon
}

// ParseIcon parses an SVG document.
func ParseIcon(doc string) (*Icon, error) {
	svg, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("render: parse icon: %w", err)
	}
	return &Icon{svg: svg}, nil
}

// MustParseIcon is ParseIcon for embedded documents.
func MustParseIcon(doc string) *Icon {
	icon, err := ParseIcon(doc)
	if err != nil {
		panic(err)
	}
	return icon
}

// DrawIcon paints icon scaled into the w x h box at (x, y).
func (c *Canvas) DrawIcon(icon *Icon, x, y, w, h, opacity float64) {
	if icon == nil || w <= 0 || h <= 0 {
		return
	}
	icon.svg.SetTarget(x+c.Origin[0], y+c.Origin[1], w, h)
	d := rasterx.NewDasher(c.Width(), c.Height(), c.scanner)
	icon.svg.Draw(d, opacity)
}
