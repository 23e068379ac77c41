package course2osm

import "sync/atomic"

const (
	DEFAULT_FIRST_ID = int64(1)
)

// IDGenerator hands out monotonically increasing identifiers for synthesized OSM nodes and ways.
// Nodes and ways share one sequence, so an id is unique across both kinds within a conversion.
type IDGenerator struct {
	next int64
}

// NewIDGenerator returns generator which first call of Next() returns given id
func NewIDGenerator(first int64) *IDGenerator {
	return &IDGenerator{next: first - 1}
}

// Next returns next free identifier. Safe for concurrent use.
func (gen *IDGenerator) Next() int64 {
	return atomic.AddInt64(&gen.next, 1)
}

// Peek returns identifier which will be returned by the next call of Next()
func (gen *IDGenerator) Peek() int64 {
	return atomic.LoadInt64(&gen.next) + 1
}
