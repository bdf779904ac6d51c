package fyneui

import (
	"fyne.io/fyne/v2"

	"exifview/internal/ui/builder"
)

// gridLayout places each object in the cell recorded for it. Column widths
// and row heights are the largest minimum among the single-span objects in
// them; every column gets the same share of any extra width.
type gridLayout struct {
	cells   map[fyne.CanvasObject]builder.Cell
	padding float32
}

func newGridLayout(padding float32) *gridLayout {
	return &gridLayout{
		cells:   make(map[fyne.CanvasObject]builder.Cell),
		padding: padding,
	}
}

func (gl *gridLayout) place(obj fyne.CanvasObject, cell builder.Cell) {
	gl.cells[obj] = cell
}

func (gl *gridLayout) reset() {
	gl.cells = make(map[fyne.CanvasObject]builder.Cell)
}

func (gl *gridLayout) measure(objects []fyne.CanvasObject) (cols, rows []float32) {
	for _, obj := range objects {
		cell, ok := gl.cells[obj]
		if !ok {
			continue
		}
		for len(cols) < cell.Col+cell.Width {
			cols = append(cols, 0)
		}
		for len(rows) < cell.Row+cell.Height {
			rows = append(rows, 0)
		}
		if !obj.Visible() {
			continue
		}

		objMin := obj.MinSize()
		if cell.Width == 1 && objMin.Width > cols[cell.Col] {
			cols[cell.Col] = objMin.Width
		}
		if cell.Height == 1 && objMin.Height > rows[cell.Row] {
			rows[cell.Row] = objMin.Height
		}
	}
	return cols, rows
}

func (gl *gridLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	cols, rows := gl.measure(objects)
	if len(cols) == 0 {
		return
	}

	minSize := gl.MinSize(objects)
	extra := (containerSize.Width - minSize.Width) / float32(len(cols))
	if extra > 0 {
		for i := range cols {
			cols[i] += extra
		}
	}

	xs := offsets(cols, gl.padding)
	ys := offsets(rows, gl.padding)

	for _, obj := range objects {
		cell, ok := gl.cells[obj]
		if !ok {
			continue
		}
		end := cell.Col + cell.Width
		bottom := cell.Row + cell.Height
		width := xs[end] - xs[cell.Col] - gl.padding
		height := ys[bottom] - ys[cell.Row] - gl.padding

		obj.Move(fyne.NewPos(xs[cell.Col], ys[cell.Row]))
		obj.Resize(fyne.NewSize(width, height))
	}
}

func (gl *gridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	cols, rows := gl.measure(objects)
	if len(cols) == 0 {
		return fyne.NewSize(0, 0)
	}
	xs := offsets(cols, gl.padding)
	ys := offsets(rows, gl.padding)
	return fyne.NewSize(xs[len(cols)]-gl.padding, ys[len(rows)]-gl.padding)
}

// offsets returns the start of each track plus the end of the last one.
func offsets(tracks []float32, padding float32) []float32 {
	out := make([]float32, len(tracks)+1)
	for i, size := range tracks {
		out[i+1] = out[i] + size + padding
	}
	return out
}

// sizeLayout stretches its objects over the container and never reports a
// minimum below the hint.
type sizeLayout struct {
	hint fyne.Size
}

func (sl *sizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(containerSize)
	}
}

func (sl *sizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := sl.hint
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size = size.Max(obj.MinSize())
	}
	return size
}
