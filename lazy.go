package lazyrpn

// Lazy is a deferred integer computation. Forcing it runs the computation
// again every time, side effects included; nothing is cached.
type Lazy func() int

// Force runs the computation and returns its result.
func (l Lazy) Force() int {
	return l()
}

// Const returns a Lazy yielding n.
func Const(n int) Lazy {
	return func() int { return n }
}

// Compose returns a Lazy which calls fn(a, b) when forced. a and b are handed
// to fn unforced; fn decides whether and how often to force them.
func Compose(a, b Lazy, fn Fn) Lazy {
	return func() int {
		return fn(a, b)
	}
}
