package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color sampled from a gradient.
type Color struct {
	colorful.Color
}

// RGBString formats c as a CSS rgb() value, such as "rgb(255, 0, 0)".
func (c Color) RGBString() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func (c Color) String() string { return c.RGBString() }
