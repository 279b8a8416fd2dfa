// SPDX-License-Identifier: MIT

package suite

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kosmos/law"
)

// LawSuite is a named collection of laws for one algebraic structure.
// FullLaws is a superset of Laws that may add slower or redundant checks.
type LawSuite interface {
	Name() string
	Laws() []law.TestingLaw
	FullLaws() []law.TestingLaw
}

// Suite is the concrete LawSuite built by the composition functions.
// A Suite is immutable; the accessors return fresh slices.
type Suite struct {
	name  string
	laws  []law.TestingLaw
	extra []law.TestingLaw // FullLaws = laws ++ extra
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// Laws returns the fast law set.
func (s *Suite) Laws() []law.TestingLaw { return append([]law.TestingLaw(nil), s.laws...) }

// FullLaws returns Laws followed by the additional exhaustive checks.
func (s *Suite) FullLaws() []law.TestingLaw {
	out := make([]law.TestingLaw, 0, len(s.laws)+len(s.extra))
	out = append(out, s.laws...)
	return append(out, s.extra...)
}

// String lists the suite and its law names, one per line.
func (s *Suite) String() string {
	var b strings.Builder
	b.WriteString(s.name)
	for _, l := range s.laws {
		b.WriteString("\n  " + l.Name())
	}
	for _, l := range s.extra {
		b.WriteString("\n  " + l.Name() + " (full)")
	}
	return b.String()
}

// New builds a suite from scratch.
func New(name string, laws ...law.TestingLaw) (*Suite, error) {
	return compose(name, nil, laws, nil)
}

// Extend builds a stronger suite: the parent's laws come first, followed
// by laws. The parent's full-only checks are carried over, so the result
// is a superset of the parent in both views by construction.
func Extend(parent LawSuite, name string, laws ...law.TestingLaw) (*Suite, error) {
	return compose(name, []LawSuite{parent}, laws, nil)
}

// WithFull returns a copy of s whose FullLaws additionally contain extra.
func WithFull(s *Suite, extra ...law.TestingLaw) (*Suite, error) {
	return compose(s.name, []LawSuite{s}, nil, extra)
}

// Concat merges several suites in order. A law instance reached through
// more than one suite is kept once; distinct laws with equal names are
// rejected.
func Concat(name string, suites ...LawSuite) (*Suite, error) {
	return compose(name, suites, nil, nil)
}

// compose is the single construction path. Parents contribute their
// Laws then their full-only checks; own laws and extras are appended.
func compose(name string, parents []LawSuite, laws, extra []law.TestingLaw) (*Suite, error) {
	s := &Suite{name: name}
	seen := make(map[string]law.TestingLaw)
	add := func(dst *[]law.TestingLaw, l law.TestingLaw) error {
		if l == nil {
			return fmt.Errorf("%w: in %s", ErrNilLaw, name)
		}
		if prev, ok := seen[l.Name()]; ok {
			if prev == l {
				return nil
			}
			return fmt.Errorf("%w: %q in %s", ErrDuplicateLaw, l.Name(), name)
		}
		seen[l.Name()] = l
		*dst = append(*dst, l)
		return nil
	}

	for _, p := range parents {
		if p == nil {
			return nil, fmt.Errorf("%w: nil parent suite of %s", ErrNilLaw, name)
		}
		for _, l := range p.Laws() {
			if err := add(&s.laws, l); err != nil {
				return nil, err
			}
		}
	}
	for _, l := range laws {
		if err := add(&s.laws, l); err != nil {
			return nil, err
		}
	}
	for _, p := range parents {
		for _, l := range p.FullLaws() {
			if err := add(&s.extra, l); err != nil {
				return nil, err
			}
		}
	}
	for _, l := range extra {
		if err := add(&s.extra, l); err != nil {
			return nil, err
		}
	}

	if len(s.laws)+len(s.extra) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySuite, name)
	}
	return s, nil
}

// VerifySuperset reports ErrNotSuperset unless every law of weak appears
// in strong, comparing Laws with Laws and FullLaws with FullLaws by name.
func VerifySuperset(strong, weak LawSuite) error {
	if missing := missing(strong.Laws(), weak.Laws()); len(missing) > 0 {
		return fmt.Errorf("%w: %s lacks %s laws %s", ErrNotSuperset, strong.Name(), weak.Name(), strings.Join(missing, ", "))
	}
	if missing := missing(strong.FullLaws(), weak.FullLaws()); len(missing) > 0 {
		return fmt.Errorf("%w: %s lacks %s full laws %s", ErrNotSuperset, strong.Name(), weak.Name(), strings.Join(missing, ", "))
	}
	return nil
}

// VerifyFull reports ErrNotSuperset unless FullLaws contains every law of
// Laws.
func VerifyFull(s LawSuite) error {
	if missing := missing(s.FullLaws(), s.Laws()); len(missing) > 0 {
		return fmt.Errorf("%w: full laws of %s omit %s", ErrNotSuperset, s.Name(), strings.Join(missing, ", "))
	}
	return nil
}

// Names returns the law names of ls in order.
func Names(ls []law.TestingLaw) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name()
	}
	return out
}

func missing(have, want []law.TestingLaw) []string {
	names := make(map[string]struct{}, len(have))
	for _, l := range have {
		names[l.Name()] = struct{}{}
	}
	var out []string
	for _, l := range want {
		if _, ok := names[l.Name()]; !ok {
			out = append(out, l.Name())
		}
	}
	return out
}
