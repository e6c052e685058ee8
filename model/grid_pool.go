package model

import "sync"

// CellPool recycles cell tables between generations
type CellPool struct {
	pool sync.Pool
}

func NewCellPool() *CellPool {
	return &CellPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &[][]bool{}
			},
		},
	}
}

// Get returns a cleared table with width rows of height columns
func (p *CellPool) Get(width, height int) [][]bool {
	rows := *p.pool.Get().(*[][]bool)
	return resetTable(rows, width, height)
}

// Put hands a retired table back to the pool
func (p *CellPool) Put(rows [][]bool) {
	if rows == nil {
		return
	}
	p.pool.Put(&rows)
}

// newTable allocates a table from the pool, or from the heap when pool is nil
func newTable(pool *CellPool, width, height int) [][]bool {
	if pool != nil {
		return pool.Get(width, height)
	}
	return resetTable(nil, width, height)
}

// resetTable resizes rows to width x height, reusing its backing arrays where it can
func resetTable(rows [][]bool, width, height int) [][]bool {
	if cap(rows) < width {
		rows = make([][]bool, width)
	}
	rows = rows[:width]
	for i := range rows {
		if cap(rows[i]) < height {
			rows[i] = make([]bool, height)
			continue
		}
		rows[i] = rows[i][:height]
		clear(rows[i])
	}
	return rows
}
