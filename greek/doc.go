/*
Package greek classifies clusters of polytonic Greek text.

All predicates of this package operate on the text of a single cluster, i.e.
a base letter plus its combining diacritics (see package cluster). Diacritics
may be present either pre-composed into a single code-point or as separate
combining marks. To treat both representations alike, every predicate
inspects the canonical decomposition (NFD) of a cluster. The compatibility
decomposition (NFKD) is consulted solely as an additional check for the
iota subscript.

The rule tables of this package (vowels, diphthongs, pre-composed letters
carrying a diaeresis or an iota subscript) are fixed and never modified
after package initialization.

Caveats

Classification is orthographic, not phonological. A pair of base letters
either is in the diphthong table or it is not; no attempt is made to model
synizesis, crasis, or any other phenomenon beyond the fixed rule set.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package greek

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
