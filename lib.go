package lazyrpn

import (
	"io"
)

// Digits appends b as a decimal digit to a: a*10 + b.
func Digits(a, b Lazy) int {
	return a()*10 + b()
}

// Seq forces a for its side effects and returns b.
func Seq(a, b Lazy) int {
	a()
	return b()
}

// Cond returns b if a is non-zero and 0 otherwise. b is not forced when a is
// zero.
func Cond(a, b Lazy) int {
	if a() != 0 {
		return b()
	}
	return 0
}

// Repeat forces b a times and returns 0. A negative count forces b never.
func Repeat(a, b Lazy) int {
	for n := a(); n > 0; n-- {
		b()
	}
	return 0
}

// Constant returns a function which ignores its operands and returns n.
func Constant(n int) Fn {
	return func(Lazy, Lazy) int {
		return n
	}
}

// Echo returns a function which writes s to w and returns 0 without forcing
// its operands. Write errors are ignored.
func Echo(w io.Writer, s string) Fn {
	return func(Lazy, Lazy) int {
		io.WriteString(w, s)
		return 0
	}
}

// LoadLib registers the extension functions:
//
//	!	Digits
//	,	Seq
//	?	Cond
//	$	Repeat
//	P	Echo(out, "P")
//	1	Constant(1)
//
// It stops at the first token that cannot be registered.
func LoadLib(c *Calculator, out io.Writer) error {
	lib := []struct {
		tok rune
		fn  Fn
	}{
		{'!', Digits},
		{',', Seq},
		{'?', Cond},
		{'$', Repeat},
		{'P', Echo(out, "P")},
		{'1', Constant(1)},
	}
	for _, l := range lib {
		if err := c.DefineFunction(l.tok, l.fn); err != nil {
			return err
		}
	}
	return nil
}
