package encode

import "strings"

// Sink is the output capability the serializer drives. Fragments are
// written incrementally; Snapshot returns everything written so far.
// Sinks carry call-local state and are not safe for concurrent use;
// each serialization call builds its own sink tree.
type Sink interface {
	Write(s string)
	Newline()
	Snapshot() string
}

// Buffer is the concrete sink, accumulating into memory.
type Buffer struct {
	sb strings.Builder
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Write(s string) {
	b.sb.WriteString(s)
}

func (b *Buffer) Newline() {
	b.sb.WriteByte('\n')
}

func (b *Buffer) Snapshot() string {
	return b.sb.String()
}

// The wrapper sinks below hold an inner Sink and intercept Write,
// forwarding Newline and Snapshot. Bracketing, quoting and separation
// stay independent concerns, so a dialect can swap any of them without
// touching the recursive descent.

type quoted struct {
	inner Sink
}

// Quoted wraps each written fragment in double quotes.
func Quoted(s Sink) Sink {
	return &quoted{inner: s}
}

func (q *quoted) Write(s string)   { q.inner.Write(`"` + s + `"`) }
func (q *quoted) Newline()         { q.inner.Newline() }
func (q *quoted) Snapshot() string { return q.inner.Snapshot() }

type bracketed struct {
	inner       Sink
	open, close string
}

// Curly wraps each written fragment in { }.
func Curly(s Sink) Sink {
	return &bracketed{inner: s, open: "{", close: "}"}
}

// Square wraps each written fragment in [ ].
func Square(s Sink) Sink {
	return &bracketed{inner: s, open: "[", close: "]"}
}

func (b *bracketed) Write(s string)   { b.inner.Write(b.open + s + b.close) }
func (b *bracketed) Newline()         { b.inner.Newline() }
func (b *bracketed) Snapshot() string { return b.inner.Snapshot() }

type commas struct {
	inner Sink
	first bool
}

// Commas writes a literal comma before every fragment after the first.
// The first flag is set only at construction: one Commas instance
// corresponds to exactly one composite's member list.
func Commas(s Sink) Sink {
	return &commas{inner: s, first: true}
}

func (c *commas) Write(s string) {
	if !c.first {
		c.inner.Write(",")
	}
	c.first = false
	c.inner.Write(s)
}

func (c *commas) Newline()         { c.inner.Newline() }
func (c *commas) Snapshot() string { return c.inner.Snapshot() }
