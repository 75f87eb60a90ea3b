package mem

import "fmt"

// DefaultPageSize provides a default for Cells.PageSize.
const DefaultPageSize = 64

// PagedCore provides the page bookkeeping common to any paged memory model.
type PagedCore struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint

	// Limit specifies the number of addressable cells; any load or store at,
	// or past, it results in an error. Zero means unlimited.
	Limit uint

	bases []uint
	sizes []uint
}

// LimitError indicates that a memory operation, like load or store, exceeded a limit.
type LimitError struct {
	Addr  uint
	Limit uint
	Op    string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("%v @%v exceeds limit %v", lim.Op, lim.Addr, lim.Limit)
}

func (m *PagedCore) checkLimit(addr uint, op string) error {
	if m.Limit != 0 && addr >= m.Limit {
		return LimitError{addr, m.Limit, op}
	}
	return nil
}

func (m *PagedCore) findPage(addr uint) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

func (m *PagedCore) allocPage(pageID int, addr uint) (base, size uint, isNew bool) {
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			lastEnd := m.bases[i] + m.sizes[i]
			if base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		m.bases = append(m.bases, base)
		m.sizes = append(m.sizes, size)
		return base, size, true
	}

	base = m.bases[pageID]
	if addr < base {
		size = m.PageSize
		nextBase := base
		base = addr / m.PageSize * m.PageSize
		if gapSize := nextBase - base; size > gapSize {
			size = gapSize
		}
		m.bases = append(m.bases, 0)
		m.sizes = append(m.sizes, 0)
		copy(m.bases[pageID+1:], m.bases[pageID:])
		copy(m.sizes[pageID+1:], m.sizes[pageID:])
		m.bases[pageID] = base
		m.sizes[pageID] = size
		return base, size, true
	}

	return base, m.sizes[pageID], false
}

// Cells implements a sparse paged memory of T-typed cells.
// Cells that were never stored read as the zero T, and never allocate.
type Cells[T any] struct {
	PagedCore
	pages [][]T
}

// Allocated returns an address one position higher than the last position in
// the last page allocated so far.
func (m *Cells[T]) Allocated() uint {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + uint(len(m.pages[i]))
	}
	return 0
}

// Load returns the cell value at addr.
// Returns an error if addr exceeds any Limit.
func (m *Cells[T]) Load(addr uint) (val T, err error) {
	if err := m.checkLimit(addr, "load"); err != nil {
		return val, err
	}
	if len(m.pages) == 0 {
		return val, nil
	}
	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if i := int(addr) - int(base); 0 <= i && i < len(page) {
		return page[i], nil
	}
	return val, nil
}

// Stor stores values into consecutive cells starting at addr, allocating
// pages as necessary. Returns an error if Limit would be exceeded; no
// partial store is done.
func (m *Cells[T]) Stor(addr uint, values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if err := m.checkLimit(addr+uint(len(values))-1, "stor"); err != nil {
		return err
	}
	if m.PageSize == 0 {
		m.PageSize = DefaultPageSize
	}

	end := addr + uint(len(values))
	for pageID := m.findPage(addr); addr < end; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if skip := int(addr) - int(base); skip > 0 {
			if uint(skip) >= size {
				continue
			}
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += uint(n)
	}
	return nil
}

// Each calls f for every allocated cell in address order, until f returns
// false.
func (m *Cells[T]) Each(f func(addr uint, val T) bool) {
	for pageID, page := range m.pages {
		base := m.bases[pageID]
		for i, val := range page {
			if !f(base+uint(i), val) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m's pages; T values themselves are copied
// shallowly.
func (m *Cells[T]) Clone() *Cells[T] {
	c := &Cells[T]{PagedCore: PagedCore{
		PageSize: m.PageSize,
		Limit:    m.Limit,
		bases:    append([]uint(nil), m.bases...),
		sizes:    append([]uint(nil), m.sizes...),
	}}
	c.pages = make([][]T, len(m.pages))
	for i, page := range m.pages {
		c.pages[i] = append([]T(nil), page...)
	}
	return c
}

func (m *Cells[T]) allocPage(pageID int, addr uint) (base, size uint, page []T) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if !isNew {
		return base, size, m.pages[pageID]
	}
	page = make([]T, size)
	if pageID == len(m.pages) {
		m.pages = append(m.pages, page)
	} else {
		m.pages = append(m.pages, nil)
		copy(m.pages[pageID+1:], m.pages[pageID:])
		m.pages[pageID] = page
	}
	return base, size, page
}
