package vic

import "math/bits"

// firstVisibleRaster is the first PAL raster line of the 320x200 visible
// area Frame exposes; everything before/after it and the horizontal border
// columns are cropped rather than rendered, since Frame only carries the
// inner picture.
const firstVisibleRaster = 51

// palette is the standard 16-colour C64 RGBA palette (Pepto's measured
// values), packed as 0xAARRGGBB.
var palette = [16]uint32{
	0xFF000000, 0xFFFFFFFF, 0xFF68372B, 0xFF70A4B2,
	0xFF6F3D86, 0xFF588D43, 0xFF352879, 0xFFB8C76F,
	0xFF6F4F25, 0xFF433900, 0xFF9A6759, 0xFF444444,
	0xFF6C6C6C, 0xFF9AD284, 0xFF6C5EB5, 0xFF959595,
}

func (v *VIC) frameRow() (int, bool) {
	row := int(v.raster) - firstVisibleRaster
	if row < 0 || row >= FrameHeight {
		return 0, false
	}
	return row, true
}

func (v *VIC) plot(row, col int, colorIdx uint8) {
	if col < 0 || col >= FrameWidth {
		return
	}
	v.Frame[row][col] = palette[colorIdx&0x0F]
}

// renderColumn paints the 8 pixels of text/bitmap column col (0..39) of the
// current raster line, then overlays any sprite pixels due this column.
func (v *VIC) renderColumn(col int) {
	row, visible := v.frameRow()

	bg0 := v.regs[0x21]
	var pixels [8]uint8

	switch v.mode {
	case ModeStandardText:
		ch := v.matrixLine[col]
		data := v.bus.VICRead(v.bankBase, v.charsetAddr()|uint16(ch)<<3|uint16(v.rc))
		fg := v.colorLine[col]
		for b := 0; b < 8; b++ {
			if data&(0x80>>b) != 0 {
				pixels[b] = fg
			} else {
				pixels[b] = bg0
			}
		}
	case ModeMulticolorText:
		ch := v.matrixLine[col]
		color := v.colorLine[col]
		data := v.bus.VICRead(v.bankBase, v.charsetAddr()|uint16(ch)<<3|uint16(v.rc))
		if color&0x08 == 0 {
			fg := color & 0x07
			for b := 0; b < 8; b++ {
				if data&(0x80>>b) != 0 {
					pixels[b] = fg
				} else {
					pixels[b] = bg0
				}
			}
		} else {
			mc := [4]uint8{bg0, v.regs[0x22], v.regs[0x23], color & 0x07}
			for pair := 0; pair < 4; pair++ {
				bits := (data >> uint(6-pair*2)) & 0x03
				pixels[pair*2] = mc[bits]
				pixels[pair*2+1] = mc[bits]
			}
		}
	case ModeECMText:
		ch := v.matrixLine[col] & 0x3F
		bank := (v.matrixLine[col] >> 6) & 0x03
		data := v.bus.VICRead(v.bankBase, v.charsetAddr()|uint16(ch)<<3|uint16(v.rc))
		fg := v.colorLine[col]
		bgRegs := [4]uint8{v.regs[0x21], v.regs[0x22], v.regs[0x23], v.regs[0x24]}
		for b := 0; b < 8; b++ {
			if data&(0x80>>b) != 0 {
				pixels[b] = fg
			} else {
				pixels[b] = bgRegs[bank]
			}
		}
	case ModeStandardBitmap:
		data := v.bus.VICRead(v.bankBase, v.bitmapAddr()|uint16(v.vc)<<3|uint16(v.rc))
		hi := v.matrixLine[col] >> 4
		lo := v.matrixLine[col] & 0x0F
		for b := 0; b < 8; b++ {
			if data&(0x80>>b) != 0 {
				pixels[b] = hi
			} else {
				pixels[b] = lo
			}
		}
	case ModeMulticolorBitmap:
		data := v.bus.VICRead(v.bankBase, v.bitmapAddr()|uint16(v.vc)<<3|uint16(v.rc))
		mc := [4]uint8{bg0, v.matrixLine[col] >> 4, v.matrixLine[col] & 0x0F, v.colorLine[col]}
		for pair := 0; pair < 4; pair++ {
			bits := (data >> uint(6-pair*2)) & 0x03
			pixels[pair*2] = mc[bits]
			pixels[pair*2+1] = mc[bits]
		}
	default: // invalid ECM/BMM/MCM combinations output solid black
		for b := range pixels {
			pixels[b] = 0
		}
	}

	if visible {
		for b := 0; b < 8; b++ {
			v.plot(row, col*8+b, pixels[b])
		}
	}
	v.overlaySprites(row, col, visible)
}

// renderBorderColumn paints one column's worth of border colour; used while
// the display state is off (top/bottom border, or before the first bad
// line of the frame ever ran).
func (v *VIC) renderBorderColumn(col int) {
	row, visible := v.frameRow()
	if !visible {
		v.overlaySprites(row, col, visible)
		return
	}
	border := v.regs[0x20]
	for b := 0; b < 8; b++ {
		v.plot(row, col*8+b, border)
	}
	v.overlaySprites(row, col, visible)
}

// overlaySprites draws any sprite pixels falling within column col of row,
// honouring per-sprite priority and recording sprite-sprite / sprite-
// background collisions in $D01E/$D01F.
func (v *VIC) overlaySprites(row, col int, visible bool) {
	if !visible {
		return
	}
	colStart := col * 8
	bg := palette[v.regs[0x21]&0x0F]

	for px := colStart; px < colStart+8 && px < FrameWidth; px++ {
		var spriteMask uint8
		foreground := v.Frame[row][px] != bg
		topColor, topSprite, haveTop := uint8(0), -1, false

		for i := 0; i < 8; i++ {
			s := &v.sprites[i]
			if !s.enabled || !s.displayOn {
				continue
			}
			width := 24
			if s.xExpand {
				width = 48
			}
			x0 := int(s.x) - 24
			if px < x0 || px >= x0+width {
				continue
			}
			bit := px - x0
			if s.xExpand {
				bit /= 2
			}
			on, colorIdx := v.spritePixel(s, bit)
			if !on {
				continue
			}
			spriteMask |= 1 << i
			if !haveTop {
				haveTop = true
				topColor, topSprite = colorIdx, i
			}
		}

		if bits.OnesCount8(spriteMask) >= 2 {
			if spriteMask&^v.regs[0x1E] != 0 {
				v.setIRQ(icrSpriteSprite)
			}
			v.regs[0x1E] |= spriteMask
		}
		if spriteMask != 0 {
			if foreground {
				if spriteMask&^v.regs[0x1F] != 0 {
					v.setIRQ(icrSpriteBg)
				}
				v.regs[0x1F] |= spriteMask
			}
			if !(v.sprites[topSprite].priority && foreground) {
				v.plot(row, px, topColor)
			}
		}
	}
}

// spritePixel returns whether sprite s has an opaque pixel at data-bit
// position bit (0..23) and, if so, its colour index.
func (v *VIC) spritePixel(s *sprite, bit int) (bool, uint8) {
	if bit < 0 || bit >= 24 {
		return false, 0
	}
	byteIdx := bit / 8
	bitIdx := uint(7 - bit%8)
	if !s.multicolor {
		return s.data[byteIdx]&(1<<bitIdx) != 0, s.color
	}
	pairIdx := bit / 2
	byteIdx = pairIdx / 4
	shift := uint(6 - (pairIdx%4)*2)
	bits := (s.data[byteIdx] >> shift) & 0x03
	switch bits {
	case 0:
		return false, 0
	case 1:
		return true, v.regs[0x25] & 0x0F
	case 2:
		return true, s.color
	default:
		return true, v.regs[0x26] & 0x0F
	}
}
