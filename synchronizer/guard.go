package synchronizer

// guard marks the span of a relay. A handler that finds it held is observing
// the Synchronizer's own write and must not relay it back.
type guard struct {
	depth int
}

// acquire takes the guard. It returns false, and a nil release, when a relay
// is already in progress.
func (g *guard) acquire() (release func(), ok bool) {
	if g.depth > 0 {
		return nil, false
	}
	g.depth++
	return func() { g.depth-- }, true
}
