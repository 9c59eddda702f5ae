package screening

import (
	"fmt"
	"sync/atomic"
)

// Generator produces unique session IDs.
type Generator struct {
	counter atomic.Uint64
}

// NewGenerator creates an ID generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next session ID.
func (g *Generator) Next() string {
	return fmt.Sprintf("scr-%d", g.counter.Add(1))
}
