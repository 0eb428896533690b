package display

import "image/color"

// Palette holds the colour of every role
type Palette map[Role]color.RGBA

// Background is the clear colour shared by the frontends
var Background = color.RGBA{R: 15, G: 18, B: 25, A: 255}

// DefaultPalette matches the dark theme of the frontends
func DefaultPalette() Palette {
	return Palette{
		RoleInactive: {R: 90, G: 95, B: 110, A: 255},
		RoleEntity:   {R: 220, G: 220, B: 230, A: 255},
		RoleSelected: {R: 255, G: 220, B: 0, A: 255},
		RoleRegion:   {R: 0, G: 200, B: 255, A: 255},
		RolePreview:  {R: 255, G: 140, B: 0, A: 255},
		RolePoint:    {R: 120, G: 200, B: 120, A: 255},
		RoleCursor:   {R: 255, G: 255, B: 255, A: 160},
	}
}

// Color returns the colour of r, white when the palette has none
func (p Palette) Color(r Role) color.RGBA {
	if c, ok := p[r]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
