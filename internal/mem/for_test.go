package mem

// CellsDump provides page data for testing.
type CellsDump[T any] struct {
	Bases []uint
	Sizes []uint
	Pages [][]T
}

// Dump memory pages for testing.
func (m *Cells[T]) Dump() (d CellsDump[T]) {
	d.Bases = m.bases
	d.Sizes = m.sizes
	d.Pages = m.pages
	return d
}
