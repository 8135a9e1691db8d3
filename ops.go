package lazyrpn

// Ft is the kind of a registry entry.
type Ft int

const (
	FtUndefined Ft = iota
	FtLiteral
	FtFunction
)

func (ft Ft) String() string {
	switch ft {
	case FtLiteral:
		return "literal"
	case FtFunction:
		return "function"
	}
	return "undefined"
}

// MaxToken is the largest token that can be registered. Tokens are 7-bit
// ASCII characters.
const MaxToken = 127

// Fn is a binary operator. a is the operand pushed first, b the one pushed
// last. Neither has been forced when Fn is called.
type Fn func(a, b Lazy) int

// Literal produces the value of a literal token.
type Literal func() int

// FnInfo is the registration of one token.
type FnInfo struct {
	ft  Ft
	lit Literal
	fn  Fn
}

func makeLit(lit Literal) FnInfo {
	return FnInfo{ft: FtLiteral, lit: lit}
}

func makeFn(fn Fn) FnInfo {
	return FnInfo{ft: FtFunction, fn: fn}
}

var ops map[rune]FnInfo

func init() {
	ops = make(map[rune]FnInfo)
	ops['0'] = makeLit(func() int { return 0 })
	ops['2'] = makeLit(func() int { return 2 })
	ops['4'] = makeLit(func() int { return 4 })
	ops['+'] = makeFn(doPlus)
	ops['-'] = makeFn(doMinus)
	ops['*'] = makeFn(doMul)
	ops['/'] = makeFn(doDiv)
}

func doPlus(a, b Lazy) int {
	return a() + b()
}

func doMinus(a, b Lazy) int {
	return a() - b()
}

func doMul(a, b Lazy) int {
	return a() * b()
}

// doDiv truncates toward zero. A zero divisor panics with Go's runtime
// "integer divide by zero" error when the value is forced.
func doDiv(a, b Lazy) int {
	return a() / b()
}
