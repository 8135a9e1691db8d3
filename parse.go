package lazyrpn

import (
	"bufio"
	"io"

	"fortio.org/log"
)

type parser struct {
	buf *bufio.Reader
	pos int
}

func newParser(r io.Reader) *parser {
	return &parser{
		buf: bufio.NewReader(r),
	}
}

// readRune returns the next token. Bytes that are not valid UTF-8 come back
// as utf8.RuneError, which can never be registered.
func (p *parser) readRune() (rune, error) {
	r, _, err := p.buf.ReadRune()
	if err == nil {
		p.pos++
	}
	return r, err
}

// Pos returns the number of tokens read so far.
func (p *parser) Pos() int {
	return p.pos
}

type stack struct {
	items []Lazy
}

func (s *stack) push(l Lazy) {
	s.items = append(s.items, l)
}

func (s *stack) pop() Lazy {
	l := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return l
}

func (s *stack) depth() int {
	return len(s.items)
}

// ParseReader is like Parse but reads its tokens from r. Errors from r other
// than io.EOF are returned as they are.
func (c *Calculator) ParseReader(r io.Reader) (Lazy, error) {
	p := newParser(r)
	var s stack
	for {
		tok, err := p.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		fi := c.lookup(tok)
		switch fi.ft {
		case FtLiteral:
			log.LogVf("%d: literal %q, depth %d", p.Pos(), tok, s.depth()+1)
			s.push(Lazy(fi.lit))
		case FtFunction:
			if s.depth() < 2 {
				return nil, &TokenError{Pos: p.Pos(), Token: tok, Depth: s.depth(), Err: ErrSyntax}
			}
			b := s.pop()
			a := s.pop()
			log.LogVf("%d: function %q, depth %d", p.Pos(), tok, s.depth()+1)
			s.push(Compose(a, b, fi.fn))
		default:
			return nil, &TokenError{Pos: p.Pos(), Token: tok, Depth: s.depth(), Err: ErrUnknownOperator}
		}
	}
	if s.depth() != 1 {
		return nil, &TokenError{Pos: p.Pos() + 1, Depth: s.depth(), Err: ErrSyntax}
	}
	return s.pop(), nil
}
