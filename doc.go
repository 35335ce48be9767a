/*
Package hiatus finds hiatus in polytonic Greek text.

Description

A hiatus is the meeting of two vowel sounds which are pronounced as separate
syllables, i.e. which do not form a diphthong. Package hiatus scans Greek
text and flags every such place, distinguishing three kinds:

	IntraWord   (I)  the vowels are adjacent inside a word
	Interword   (B)  only punctuation or space separates the vowels
	AcrossLine  (V)  the vowels meet across a line break (a verse boundary)

Detection works on grapheme clusters, i.e. a base letter plus its combining
diacritics. Diacritics matter: a diaeresis on the second vowel breaks up a
diphthong (πραΰς), a breathing on the first vowel marks a word onset and
suppresses the diphthong decision, and an iota subscript may optionally be
treated as forming a diphthong.

Typical Usage

	result := hiatus.Detect(text, hiatus.WithLookahead(8))
	for n, occ := range result.Occurrences {
	    fmt.Printf("%d %s line %s: %s|%s\n", n+1, occ.Kind.Code(), occ.LineLabel(),
	        occ.LeftText, occ.RightText)
	}

Detect is a pure function of its input. It performs no I/O and keeps no state
between calls, therefore clients may run it concurrently on independent
texts. Positions reported are relative to the NFC-normalized text, which is
available as Result.Text.

The Pipeline

Text is normalized to NFC and split into clusters (package cluster). Every
cluster is classified (package greek), and the content boundaries of every
line are indexed (package lines). The scanner then looks ahead from every
vowel cluster for the next vowel cluster, at most K clusters away. The first
vowel cluster found either forms a diphthong (scanning from this start
cluster stops), or a hiatus (which is recorded, and scanning stops as well).
Vowel clusters separated by letters or digits are skipped.

For display purposes, both sides of a hiatus are finally widened to include
a neighbouring cluster if this neighbour forms a diphthong with it.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hiatus

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultLookahead is the default number of clusters the scanner looks ahead
// from a vowel cluster.
const DefaultLookahead = 8
