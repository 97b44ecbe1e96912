package render

import "image/color"

// Pack converts c into the 32-bit pixel layout used by plasma buffers:
// A<<24 | B<<16 | G<<8 | R, which is R,G,B,A byte order in little-endian memory.
func Pack(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// FillRGBA converts packed pixels into RGBA bytes in buf. buf must hold at
// least 4*len(pixels) bytes.
func FillRGBA(buf []byte, pixels []uint32) {
	buf = buf[:4*len(pixels)]
	for i, p := range pixels {
		base := i * 4
		buf[base+0] = uint8(p)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p >> 16)
		buf[base+3] = uint8(p >> 24)
	}
}

// FillHeightRGBA converts scalar heights into opaque grayscale RGBA pixels,
// mapping 0 to black and max to white. Values outside [0, max] are clamped.
func FillHeightRGBA(buf []byte, heights []float64, max float64) {
	if max <= 0 {
		max = 1
	}
	for i, h := range heights {
		v := h / max
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		g := uint8(v*255 + 0.5)
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 0xff
	}
}

// Fill sets every pixel to p.
func Fill(pixels []uint32, p uint32) {
	for i := range pixels {
		pixels[i] = p
	}
}
