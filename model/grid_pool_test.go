package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPoolGetIsCleared(t *testing.T) {
	p := NewCellPool()

	rows := p.Get(2, 3)
	require.Len(t, rows, 2)
	rows[0][1] = true
	rows[1][2] = true
	p.Put(rows)

	for _, dims := range [][2]int{{2, 3}, {4, 1}, {1, 5}} {
		got := p.Get(dims[0], dims[1])
		require.Len(t, got, dims[0])
		for _, row := range got {
			require.Len(t, row, dims[1])
			for _, alive := range row {
				assert.False(t, alive)
			}
		}
		p.Put(got)
	}
}

func TestCellPoolPutNil(t *testing.T) {
	p := NewCellPool()
	// Should not panic.
	p.Put(nil)
	assert.Len(t, p.Get(1, 1), 1)
}
