package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	assert.Empty(t, chunks(0, 9))
	assert.Equal(t, [][2]int{{0, 3}}, chunks(3, 9))

	got := chunks(20000, 9)
	assert.Equal(t, [][2]int{{0, 7281}, {7281, 14562}, {14562, 20000}}, got)
	for _, c := range got {
		assert.LessOrEqual(t, (c[1]-c[0])*9, maxParams)
	}
}

func TestValuesClause(t *testing.T) {
	assert.Equal(t, "($1, $2), ($3, $4), ($5, $6)", valuesClause(3, 2))
	assert.Equal(t, "($1)", valuesClause(1, 1))
}
