package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// SnapshotOptions controls offscreen rendering of a generation.
type SnapshotOptions struct {
	CellPx  int
	Gap     int
	Palette Palette
}

// DefaultSnapshotOptions draws 8px cells separated by 1px grid lines.
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{CellPx: 8, Gap: 1, Palette: DefaultPalette()}
}

func (o SnapshotOptions) normalized() SnapshotOptions {
	if o.CellPx <= 0 {
		o.CellPx = 1
	}
	if o.Gap < 0 || o.Gap >= o.CellPx {
		o.Gap = 0
	}
	if o.Palette.Alive == nil || o.Palette.Empty == nil {
		o.Palette = DefaultPalette()
	}
	return o
}

// drawSnapshot renders a w*h generation onto a new gg context. The caller
// closes it.
func drawSnapshot(cells []uint8, w, h int, opts SnapshotOptions) (*gg.Context, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells for a %dx%d grid", len(cells), w, h)
	}
	opts = opts.normalized()
	dc := gg.NewContext(w*opts.CellPx, h*opts.CellPx)
	dc.ClearWithColor(gg.FromColor(opts.Palette.Empty))

	dc.SetColor(opts.Palette.Alive)
	size := float64(opts.CellPx - opts.Gap)
	for i, c := range cells {
		if c == 0 {
			continue
		}
		x, y := i%w, i/w
		dc.DrawRectangle(float64(x*opts.CellPx), float64(y*opts.CellPx), size, size)
	}
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("render: fill cells: %w", err)
	}
	return dc, nil
}

// Snapshot renders a generation to an image.
func Snapshot(cells []uint8, w, h int, opts SnapshotOptions) (image.Image, error) {
	dc, err := drawSnapshot(cells, w, h, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SavePNG renders a generation and writes it to path.
func SavePNG(path string, cells []uint8, w, h int, opts SnapshotOptions) error {
	dc, err := drawSnapshot(cells, w, h, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
