package postgresql

import (
	"strconv"
	"strings"
)

// maxParams is the postgres limit on bind parameters in one statement.
const maxParams = 65535

// chunks splits n rows of width columns into [from, to) ranges that each fit
// in a single statement.
func chunks(n, width int) [][2]int {
	per := maxParams / width
	var out [][2]int
	for from := 0; from < n; from += per {
		to := from + per
		if to > n {
			to = n
		}
		out = append(out, [2]int{from, to})
	}
	return out
}

// valuesClause renders "($1, $2), ($3, $4)" for rows tuples of width columns.
func valuesClause(rows, width int) string {
	var b strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := 0; c < width; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}
