// Package lazyrpn implements a postfix calculator over single-character
// tokens whose operands are evaluated lazily.
//
// Every token is either a literal, which pushes a value, or a binary function,
// which pops two operands and pushes their combination. Operands are Lazy
// values: a function receives them unforced and may force each one any number
// of times, including zero. That is enough to write short-circuiting and
// looping operators without any help from the evaluator:
//
//	c := lazyrpn.New()
//	c.DefineFunction('?', func(a, b lazyrpn.Lazy) int {
//		if a() != 0 {
//			return b()
//		}
//		return 0
//	})
//
// New tokens may be registered at any time, but a token can never be
// registered twice.
package lazyrpn

import (
	"sort"
	"strings"
	"sync"
)

// Calculator holds the registry of literals and functions. Registration and
// evaluation may be used from several goroutines; each evaluation owns its
// own stack.
type Calculator struct {
	mu  sync.RWMutex
	ops map[rune]FnInfo
}

// New returns a calculator with the literals 0, 2 and 4 and the functions
// + - * / defined.
func New() *Calculator {
	c := &Calculator{
		ops: make(map[rune]FnInfo, len(ops)),
	}
	for tok, fi := range ops {
		c.ops[tok] = fi
	}
	return c
}

// DefineLiteral registers lit as the literal for tok.
func (c *Calculator) DefineLiteral(tok rune, lit Literal) error {
	if lit == nil {
		return &DefineError{Token: tok, Kind: FtLiteral, Err: ErrNilFunc}
	}
	return c.define(tok, makeLit(lit))
}

// DefineFunction registers fn as the binary function for tok.
func (c *Calculator) DefineFunction(tok rune, fn Fn) error {
	if fn == nil {
		return &DefineError{Token: tok, Kind: FtFunction, Err: ErrNilFunc}
	}
	return c.define(tok, makeFn(fn))
}

func (c *Calculator) define(tok rune, fi FnInfo) error {
	if tok < 0 || tok > MaxToken {
		return &DefineError{Token: tok, Kind: fi.ft, Err: ErrInvalidToken}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ops[tok]; ok {
		return &DefineError{Token: tok, Kind: fi.ft, Err: ErrAlreadyDefined}
	}
	c.ops[tok] = fi
	return nil
}

// Kind returns how tok is registered.
func (c *Calculator) Kind(tok rune) Ft {
	return c.lookup(tok).ft
}

// Tokens returns every registered token in ascending order.
func (c *Calculator) Tokens() []rune {
	c.mu.RLock()
	toks := make([]rune, 0, len(c.ops))
	for tok := range c.ops {
		toks = append(toks, tok)
	}
	c.mu.RUnlock()
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	return toks
}

func (c *Calculator) lookup(tok rune) FnInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ops[tok]
}

// Parse turns input into a single Lazy without forcing it. Nothing registered
// for the tokens of input runs until the result is forced.
func (c *Calculator) Parse(input string) (Lazy, error) {
	return c.ParseReader(strings.NewReader(input))
}

// Calculate parses input and forces the result.
func (c *Calculator) Calculate(input string) (int, error) {
	l, err := c.Parse(input)
	if err != nil {
		return 0, err
	}
	return l.Force(), nil
}
