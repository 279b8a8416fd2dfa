// SPDX-License-Identifier: MIT

// Package printable renders carrier values for counterexample traces.
//
// Rendering never affects whether a law passes; laws call a Printable only
// on the failure path.
package printable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/constraints"
)

// Printable renders a value as a short human-readable string.
type Printable[A any] interface {
	Render(a A) string
}

// Func adapts a plain function to Printable.
type Func[A any] func(a A) string

// Render implements Printable.
func (f Func[A]) Render(a A) string { return f(a) }

// Default renders with fmt's %v verb.
func Default[A any]() Printable[A] {
	return Func[A](func(a A) string { return fmt.Sprintf("%v", a) })
}

// Quoted renders strings and string-like values with %q.
func Quoted[A ~string]() Printable[A] {
	return Func[A](func(a A) string { return strconv.Quote(string(a)) })
}

// Float renders floats with the given number of decimals and trims trailing
// zeros, so 2.500 prints as 2.5 and 3.000 as 3. Panics if precision < 0.
func Float[F constraints.Float](precision int) Printable[F] {
	if precision < 0 {
		panic("printable: Float(precision<0)")
	}
	return Func[F](func(f F) string {
		s := strconv.FormatFloat(float64(f), 'f', precision, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	})
}

var dumper = spew.ConfigState{
	Indent:                  "",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders composite values (nested structs, pointers, maps) on a single
// line with go-spew, following pointers and sorting map keys.
func Dump[A any]() Printable[A] {
	return Func[A](func(a A) string { return dumper.Sprintf("%+v", a) })
}

// Seq renders a slice as [x₁, x₂, …] using elem for each element.
func Seq[A any](elem Printable[A]) Printable[[]A] {
	return Func[[]A](func(xs []A) string {
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = elem.Render(x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	})
}

// Pair renders two values as (a, b).
func Pair[A, B any](pa Printable[A], pb Printable[B]) func(A, B) string {
	return func(a A, b B) string {
		return "(" + pa.Render(a) + ", " + pb.Render(b) + ")"
	}
}

// OrDefault returns p, or Default when p is nil.
func OrDefault[A any](p Printable[A]) Printable[A] {
	if p == nil {
		return Default[A]()
	}
	return p
}

// Triple renders three values as (a, b, c).
func Triple[A, B, C any](pa Printable[A], pb Printable[B], pc Printable[C]) func(A, B, C) string {
	return func(a A, b B, c C) string {
		return "(" + pa.Render(a) + ", " + pb.Render(b) + ", " + pc.Render(c) + ")"
	}
}
