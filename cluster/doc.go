/*
Package cluster splits normalized text into grapheme clusters.

A cluster, for the purpose of hiatus detection, is a run of one base
code-point (canonical combining class 0) followed by all of the combining
marks immediately trailing it. This is a deliberately narrower notion than
the extended grapheme clusters of UAX#29: polytonic Greek text is written
with a base letter plus combining diacritics (accents, breathings, diaeresis,
iota subscript), and the detector needs exactly this base-plus-marks unit.

Typical Usage

	text := norm.NFC.String(input)
	clusters := cluster.Segment(text)
	for _, c := range clusters {
	    fmt.Printf("%q on line %d\n", c.Text, c.Line)
	}

Input is expected to be NFC-normalized. Segmenting never fails: a leading
combining mark without a base starts a cluster of its own, and each invalid
UTF-8 byte becomes a cluster of its own.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cluster

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
