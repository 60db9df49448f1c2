package player

import "panim/studio/render"

var (
	playIcon = render.MustParseIcon(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path d="M6 4 L20 12 L6 20 Z" fill="#f0f0f0"/></svg>`)
	pauseIcon = render.MustParseIcon(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<rect x="5" y="4" width="5" height="16" fill="#f0f0f0"/>` +
		`<rect x="14" y="4" width="5" height="16" fill="#f0f0f0"/></svg>`)
)
