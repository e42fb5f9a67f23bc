package board

import "github.com/katalvlaran/empyreus/core"

// Axis selects a pixel axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// layoutGeometry centres the board in the window.
func (b *Board) layoutGeometry() {
	c := b.cfg
	b.tileSize = Vec{c.TileBase.X + c.TileBorder.X, c.TileBase.Y + c.TileBorder.Y}
	b.pos = Vec{
		(c.Window.X - c.Width*b.tileSize.X - c.TileBorder.X) / 2,
		(c.Window.Y - c.Height*b.tileSize.Y - c.TileBorder.Y) / 2,
	}
	b.posEnd = Vec{b.pos.X + b.tileSize.X*c.Width, b.pos.Y + b.tileSize.Y*c.Height}
}

// Pos is the pixel of the board's top-left corner.
func (b *Board) Pos() Vec { return b.pos }

// PosEnd is the pixel just past the board's bottom-right corner.
func (b *Board) PosEnd() Vec { return b.posEnd }

// Size is the board's pixel extent.
func (b *Board) Size() Vec { return Vec{b.posEnd.X - b.pos.X, b.posEnd.Y - b.pos.Y} }

// TileSize is the tile pitch: sprite plus border.
func (b *Board) TileSize() Vec { return b.tileSize }

// CentrePixel is the pixel at the centre of cell c.
func (b *Board) CentrePixel(c core.Coord) Vec {
	return Vec{
		int((float64(c.X)+0.5)*float64(b.tileSize.X)) + b.pos.X,
		int((float64(c.Y)+0.5)*float64(b.tileSize.Y)) + b.pos.Y,
	}
}

// AxisFromPixel maps pixel p on axis a to a cell index. ok is false when
// the pixel lies outside the board on that axis.
func (b *Board) AxisFromPixel(a Axis, p int) (idx int, ok bool) {
	origin, pitch, dim := b.pos.X, b.tileSize.X, b.cfg.Width
	if a == AxisY {
		origin, pitch, dim = b.pos.Y, b.tileSize.Y, b.cfg.Height
	}
	idx = floorDiv(p-origin, pitch)
	if idx < 0 || idx > dim-1 {
		return 0, false
	}
	return idx, true
}

// CellFromPixel maps a pixel to a cell, axis by axis. The host should treat
// the pixel as on the board only when both okX and okY hold.
func (b *Board) CellFromPixel(px, py int) (x, y int, okX, okY bool) {
	x, okX = b.AxisFromPixel(AxisX, px)
	y, okY = b.AxisFromPixel(AxisY, py)
	return x, y, okX, okY
}

// floorDiv rounds towards negative infinity; d > 0.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
