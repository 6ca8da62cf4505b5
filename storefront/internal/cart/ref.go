package cart

import (
	"fmt"
	"sync"
	"time"
)

const DefaultRefPrefix = "SAH"

// RefGenerator hands out PREFIX-YYMMDD-NNN references from a counter that
// starts at 1 and lives only as long as the process. The gateway assigns the
// authoritative reference; this one identifies a submission attempt.
type RefGenerator struct {
	prefix string

	mu      sync.Mutex
	counter int
}

func NewRefGenerator(prefix string) *RefGenerator {
	if prefix == "" {
		prefix = DefaultRefPrefix
	}
	return &RefGenerator{prefix: prefix, counter: 1}
}

func (g *RefGenerator) Next(now time.Time) string {
	g.mu.Lock()
	n := g.counter
	g.counter++
	g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%03d", g.prefix, now.Format("060102"), n)
}
