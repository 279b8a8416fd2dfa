// SPDX-License-Identifier: MIT

package op

// Implies derives material implication a → b = ¬a ∨ b.
func Implies[A any](join Binary[A], not Unary[A]) Binary[A] {
	return NewBinary("→", func(a, b A) A { return join.fn(not.fn(a), b) })
}

// Xor derives symmetric difference (a ∨ b) ∧ ¬(a ∧ b).
func Xor[A any](join, meet Binary[A], not Unary[A]) Binary[A] {
	return NewBinary("⊕", func(a, b A) A {
		return meet.fn(join.fn(a, b), not.fn(meet.fn(a, b)))
	})
}

// Difference derives relative complement a ∧ ¬b.
func Difference[A any](meet Binary[A], not Unary[A]) Binary[A] {
	return NewBinary("∖", func(a, b A) A { return meet.fn(a, not.fn(b)) })
}

// Square returns x ↦ x⋆x.
func Square[A any](mul Binary[A]) Unary[A] {
	return NewUnary("²", func(a A) A { return mul.fn(a, a) })
}

// Power returns the left-normed power ((x⋆x)⋆x)⋆… with n factors.
// Panics for n < 1; there is no identity to fall back on.
func Power[A any](mul Binary[A], x A, n int) A {
	if n < 1 {
		panic("op: Power(n<1)")
	}
	acc := x
	for i := 1; i < n; i++ {
		acc = mul.fn(acc, x)
	}
	return acc
}

// Flip returns (a, b) ↦ b ⋆ a under the same symbol.
func Flip[A any](b Binary[A]) Binary[A] {
	return NewBinary(b.symbol, func(x, y A) A { return b.fn(y, x) })
}

// Compose returns a ↦ g(f(a)), named "g∘f".
func Compose[A, B, C any](f Mapping[A, B], g Mapping[B, C]) Mapping[A, C] {
	return NewMapping(g.name+Circle+f.name, func(a A) C { return g.fn(f.fn(a)) })
}
