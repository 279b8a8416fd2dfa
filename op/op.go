// SPDX-License-Identifier: MIT

package op

// Display symbols shared by the law and suite packages.
const (
	Plus    = "+"
	Minus   = "-"
	Times   = "·"
	Star    = "⋆"
	Circle  = "∘"
	Divide  = "÷"
	Join    = "∨"
	Meet    = "∧"
	Not     = "¬"
	Inverse = "⁻¹"
	Conj    = "*"
)

// Unary is a one-argument operation A → A with a display symbol.
type Unary[A any] struct {
	fn     func(A) A
	symbol string
}

// NewUnary wraps fn under the given symbol. Panics on nil fn.
func NewUnary[A any](symbol string, fn func(A) A) Unary[A] {
	if fn == nil {
		panic("op: NewUnary(nil)")
	}
	return Unary[A]{fn: fn, symbol: symbol}
}

// Apply evaluates the operation.
func (u Unary[A]) Apply(a A) A { return u.fn(a) }

// Symbol returns the display symbol.
func (u Unary[A]) Symbol() string { return u.symbol }

// Func exposes the underlying callable.
func (u Unary[A]) Func() func(A) A { return u.fn }

// Valid reports whether the handle wraps a callable (zero values do not).
func (u Unary[A]) Valid() bool { return u.fn != nil }

// WithSymbol returns a copy of u rendered under symbol.
func (u Unary[A]) WithSymbol(symbol string) Unary[A] {
	u.symbol = symbol
	return u
}

// Binary is a two-argument operation A × A → A with a display symbol.
type Binary[A any] struct {
	fn     func(A, A) A
	symbol string
}

// NewBinary wraps fn under the given symbol. Panics on nil fn.
func NewBinary[A any](symbol string, fn func(A, A) A) Binary[A] {
	if fn == nil {
		panic("op: NewBinary(nil)")
	}
	return Binary[A]{fn: fn, symbol: symbol}
}

// Apply evaluates a ⋆ b.
func (b Binary[A]) Apply(x, y A) A { return b.fn(x, y) }

// Symbol returns the display symbol.
func (b Binary[A]) Symbol() string { return b.symbol }

// Func exposes the underlying callable.
func (b Binary[A]) Func() func(A, A) A { return b.fn }

// Valid reports whether the handle wraps a callable.
func (b Binary[A]) Valid() bool { return b.fn != nil }

// WithSymbol returns a copy of b rendered under symbol.
func (b Binary[A]) WithSymbol(symbol string) Binary[A] {
	b.symbol = symbol
	return b
}

// Partial is a unary operation that may be undefined for some inputs,
// e.g. the multiplicative inverse, which only exists for units.
type Partial[A any] struct {
	fn     func(A) (A, bool)
	symbol string
}

// NewPartial wraps fn under the given symbol. Panics on nil fn.
func NewPartial[A any](symbol string, fn func(A) (A, bool)) Partial[A] {
	if fn == nil {
		panic("op: NewPartial(nil)")
	}
	return Partial[A]{fn: fn, symbol: symbol}
}

// Apply evaluates the operation; ok is false outside its domain.
func (p Partial[A]) Apply(a A) (A, bool) { return p.fn(a) }

// Symbol returns the display symbol.
func (p Partial[A]) Symbol() string { return p.symbol }

// Valid reports whether the handle wraps a callable.
func (p Partial[A]) Valid() bool { return p.fn != nil }

// WithSymbol returns a copy of p rendered under symbol.
func (p Partial[A]) WithSymbol(symbol string) Partial[A] {
	p.symbol = symbol
	return p
}

// Total lifts a Unary into a Partial that is defined everywhere.
func Total[A any](u Unary[A]) Partial[A] {
	return NewPartial(u.symbol, func(a A) (A, bool) { return u.fn(a), true })
}

// Action is a scalar action S × V → V.
type Action[S, V any] struct {
	fn     func(S, V) V
	symbol string
}

// NewAction wraps fn under the given symbol. Panics on nil fn.
func NewAction[S, V any](symbol string, fn func(S, V) V) Action[S, V] {
	if fn == nil {
		panic("op: NewAction(nil)")
	}
	return Action[S, V]{fn: fn, symbol: symbol}
}

// Apply evaluates s·v.
func (a Action[S, V]) Apply(s S, v V) V { return a.fn(s, v) }

// Symbol returns the display symbol.
func (a Action[S, V]) Symbol() string { return a.symbol }

// Valid reports whether the handle wraps a callable.
func (a Action[S, V]) Valid() bool { return a.fn != nil }

// WithSymbol returns a copy of a rendered under symbol.
func (a Action[S, V]) WithSymbol(symbol string) Action[S, V] {
	a.symbol = symbol
	return a
}

// Mapping is a named function between carriers A → B. The name is used in
// rendered expressions as name(a).
type Mapping[A, B any] struct {
	fn   func(A) B
	name string
}

// NewMapping wraps fn under the given name. Panics on nil fn.
func NewMapping[A, B any](name string, fn func(A) B) Mapping[A, B] {
	if fn == nil {
		panic("op: NewMapping(nil)")
	}
	return Mapping[A, B]{fn: fn, name: name}
}

// Apply evaluates f(a).
func (m Mapping[A, B]) Apply(a A) B { return m.fn(a) }

// Name returns the display name.
func (m Mapping[A, B]) Name() string { return m.name }

// Valid reports whether the handle wraps a callable.
func (m Mapping[A, B]) Valid() bool { return m.fn != nil }

// WithName returns a copy of m rendered under name.
func (m Mapping[A, B]) WithName(name string) Mapping[A, B] {
	m.name = name
	return m
}

// Endo views a Unary as a Mapping A → A, named by its symbol.
func Endo[A any](u Unary[A]) Mapping[A, A] {
	return NewMapping(u.symbol, u.fn)
}

// Form is a two-argument map V × W → X (bilinear forms, inner products).
type Form[V, W, X any] struct {
	fn   func(V, W) X
	name string
}

// NewForm wraps fn under the given name. Panics on nil fn.
func NewForm[V, W, X any](name string, fn func(V, W) X) Form[V, W, X] {
	if fn == nil {
		panic("op: NewForm(nil)")
	}
	return Form[V, W, X]{fn: fn, name: name}
}

// Apply evaluates f(v, w).
func (f Form[V, W, X]) Apply(v V, w W) X { return f.fn(v, w) }

// Name returns the display name.
func (f Form[V, W, X]) Name() string { return f.name }

// Valid reports whether the handle wraps a callable.
func (f Form[V, W, X]) Valid() bool { return f.fn != nil }
