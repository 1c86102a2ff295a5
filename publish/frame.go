package publish

import (
	"encoding/binary"
	"fmt"
	"math"

	"honnef.co/go/huecurve/gradient"
)

// Frame is a list of colors as sent to LED receivers.
type Frame []gradient.Color

// MarshalBinary encodes the frame as a little-endian uint16 color count
// followed by one red, green and blue byte per color.
func (f Frame) MarshalBinary() ([]byte, error) {
	if len(f) > math.MaxUint16 {
		return nil, fmt.Errorf("frame of %d colors exceeds %d", len(f), math.MaxUint16)
	}
	data := make([]byte, 2, 2+len(f)*3)
	binary.LittleEndian.PutUint16(data, uint16(len(f)))
	for _, c := range f {
		r, g, b := c.Clamped().RGB255()
		data = append(data, r, g, b)
	}
	return data, nil
}
