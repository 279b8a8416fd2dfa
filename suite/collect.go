// SPDX-License-Identifier: MIT

package suite

import "github.com/katalvlaran/kosmos/law"

// collector gathers freshly constructed laws and keeps the first
// construction error, so suite bodies read as a flat list of laws.
type collector struct {
	laws  []law.TestingLaw
	extra []law.TestingLaw
	err   error
}

// law appends to the fast set. It accepts a constructor's results as is.
func (c *collector) law(l law.TestingLaw, err error) {
	c.keep(&c.laws, l, err)
}

// full appends to the full-only set.
func (c *collector) full(l law.TestingLaw, err error) {
	c.keep(&c.extra, l, err)
}

func (c *collector) keep(dst *[]law.TestingLaw, l law.TestingLaw, err error) {
	if c.err != nil {
		return
	}
	if err != nil {
		c.err = err
		return
	}
	*dst = append(*dst, l)
}

// suite returns a parent suite, recording its construction error.
func (c *collector) suite(s *Suite, err error) LawSuite {
	if c.err == nil && err != nil {
		c.err = err
	}
	if s == nil {
		return nil
	}
	return s
}

// build composes the collected laws on top of parents.
func (c *collector) build(name string, parents ...LawSuite) (*Suite, error) {
	if c.err != nil {
		return nil, c.err
	}
	return compose(name, parents, c.laws, c.extra)
}
