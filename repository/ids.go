package repository

import "time"

// idGen hands out time-derived ids that stay strictly increasing even when
// two inserts land on the same millisecond. Callers must hold their own lock.
type idGen struct {
	last int64
}

func (g *idGen) next() int64 {
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
