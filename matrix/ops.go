// SPDX-License-Identifier: MIT

package matrix

// validatePair checks that both operands are present.
func validatePair[T Number](op string, a, b *Dense[T]) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	return nil
}

// sameShape checks that a and b have identical dimensions.
func sameShape[T Number](op string, a, b *Dense[T]) error {
	if err := validatePair(op, a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return matrixErrorf(op, ErrDimensionMismatch)
	}
	return nil
}

// Add returns a+b element-wise.
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := sameShape("Add", a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}
	return out, nil
}

// Sub returns a-b element-wise.
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := sameShape("Sub", a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}
	return out, nil
}

// Mul returns the matrix product a·b.
// Stage 1 (Validate): a.Cols == b.Rows.
// Stage 2 (Execute): i→k→j loop order over the flat buffers.
// Complexity: O(r*k*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validatePair("Mul", a, b); err != nil {
		return nil, err
	}
	if a.c != b.r {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}
	out := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}
	return out, nil
}

// Scale returns s·a.
func Scale[T Number](s T, a *Dense[T]) *Dense[T] {
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Neg returns -a.
func Neg[T Number](a *Dense[T]) *Dense[T] {
	out := a.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}
	return out
}

// Transpose returns aᵀ.
func Transpose[T Number](a *Dense[T]) *Dense[T] {
	out := &Dense[T]{r: a.c, c: a.r, data: make([]T, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}
	return out
}

// Anticommutator returns a·b + b·a, the (unnormalized) Jordan product.
func Anticommutator[T Number](a, b *Dense[T]) (*Dense[T], error) {
	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf("Anticommutator", err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf("Anticommutator", err)
	}
	return Add(ab, ba)
}

// Equal reports whether a and b have the same shape and entries.
// Two nil matrices are equal.
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry is zero.
func IsZero[T Number](a *Dense[T]) bool {
	for _, v := range a.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsStrictlyUpper reports whether a is square with zeros on and below the
// diagonal.
func IsStrictlyUpper[T Number](a *Dense[T]) bool {
	if a.r != a.c {
		return false
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j <= i; j++ {
			if a.data[i*a.c+j] != 0 {
				return false
			}
		}
	}
	return true
}

// MustAdd is Add for operands whose shapes agree by construction.
// Panics on error.
func MustAdd[T Number](a, b *Dense[T]) *Dense[T] { return must(Add(a, b)) }

// MustMul is Mul for operands whose shapes agree by construction.
// Panics on error.
func MustMul[T Number](a, b *Dense[T]) *Dense[T] { return must(Mul(a, b)) }

// MustAnticommutator is Anticommutator for operands whose shapes agree by
// construction. Panics on error.
func MustAnticommutator[T Number](a, b *Dense[T]) *Dense[T] { return must(Anticommutator(a, b)) }

func must[T Number](m *Dense[T], err error) *Dense[T] {
	if err != nil {
		panic(err)
	}
	return m
}
