/*
Package lines indexes the content boundaries of the lines of a text.

For every line, the index knows the first and the last cluster which is not
punctuation or space. A hiatus across a line break (a verse boundary) is
only valid if the earlier vowel is the last content cluster of its line and
the later vowel is the first content cluster of the following line. This
keeps decorative punctuation at the start or end of a line from hiding the
true content boundary.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lines

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/hiatus/cluster"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Bounds holds the cluster indices of the first and the last content
// cluster of a line. Lines without any content cluster have Empty set.
type Bounds struct {
	First, Last int
	Empty       bool
}

// Index maps line numbers to Bounds. It is built once and read-only
// afterwards.
type Index struct {
	bounds *treemap.Map // line number -> Bounds
}

// Build creates the index for a sequence of clusters. Predicate isPunct
// tells if the cluster at a given index is punctuation or space.
func Build(clusters []cluster.Cluster, isPunct func(int) bool) *Index {
	ix := &Index{bounds: treemap.NewWithIntComparator()}
	for i, c := range clusters {
		var b Bounds
		if v, found := ix.bounds.Get(c.Line); found {
			b = v.(Bounds)
		} else {
			b = Bounds{First: -1, Last: -1, Empty: true}
		}
		if !isPunct(i) {
			if b.Empty {
				b.First = i
				b.Empty = false
			}
			b.Last = i
		}
		ix.bounds.Put(c.Line, b)
	}
	T().Debugf("line index holds %d lines", ix.bounds.Size())
	return ix
}

// Lines returns the number of lines carrying at least one cluster.
func (ix *Index) Lines() int {
	return ix.bounds.Size()
}

// Bounds returns the content bounds of a line. If the line carries no
// clusters at all, found is false.
func (ix *Index) Bounds(line int) (b Bounds, found bool) {
	v, found := ix.bounds.Get(line)
	if !found {
		return Bounds{First: -1, Last: -1, Empty: true}, false
	}
	return v.(Bounds), true
}

// First returns the index of the first content cluster of a line.
// It is absent if the line is empty or consists of punctuation only.
func (ix *Index) First(line int) (int, bool) {
	b, _ := ix.Bounds(line)
	return b.First, !b.Empty
}

// Last returns the index of the last content cluster of a line.
// It is absent if the line is empty or consists of punctuation only.
func (ix *Index) Last(line int) (int, bool) {
	b, _ := ix.Bounds(line)
	return b.Last, !b.Empty
}

// IsLineEnd is true if cluster i is the last content cluster of line.
func (ix *Index) IsLineEnd(i, line int) bool {
	last, ok := ix.Last(line)
	return ok && last == i
}

// IsLineStart is true if cluster j is the first content cluster of line.
func (ix *Index) IsLineStart(j, line int) bool {
	first, ok := ix.First(line)
	return ok && first == j
}
