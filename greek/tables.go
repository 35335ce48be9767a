package greek

// Combining marks relevant for classification.
const (
	CombiningDiaeresis = '\u0308'
	IotaSubscript      = '\u0345' // COMBINING GREEK YPOGEGRAMMENI
	SmoothBreathing    = '\u0313' // COMBINING COMMA ABOVE (psili)
	RoughBreathing     = '\u0314' // COMBINING REVERSED COMMA ABOVE (dasia)
)

// Vowels are the seven Greek vowel letters, lowercase.
const Vowels = "αεηιουω"

// letters with a diaeresis composed into a single code-point
const precomposedDiaeresis = "ϊΐϋΰΪΫ"

var diphthongs = map[string]struct{}{
	"αι": {}, "αυ": {}, "ει": {}, "ευ": {},
	"οι": {}, "ου": {}, "υι": {}, "ωι": {},
	// long vowels with iota subscript; single letters, they will never
	// match a pair of base letters
	"ῃ": {}, "ῳ": {},
}

var precomposedIotaSubscript = map[string]struct{}{
	"ᾳ": {}, "ᾴ": {}, "ᾲ": {}, "ᾷ": {}, "ᾀ": {}, "ᾁ": {}, "ᾂ": {}, "ᾃ": {}, "ᾄ": {}, "ᾅ": {}, "ᾆ": {}, "ᾇ": {},
	"ῃ": {}, "ῄ": {}, "ῂ": {}, "ῇ": {}, "ᾐ": {}, "ᾑ": {}, "ᾒ": {}, "ᾓ": {}, "ᾔ": {}, "ᾕ": {}, "ᾖ": {}, "ᾗ": {},
	"ῳ": {}, "ῴ": {}, "ῲ": {}, "ῷ": {}, "ᾠ": {}, "ᾡ": {}, "ᾢ": {}, "ᾣ": {}, "ᾤ": {}, "ᾥ": {}, "ᾦ": {}, "ᾧ": {},
}

// IsDiphthong is true if pair, usually a concatenation of two base letters,
// is listed in the table of diphthongs.
func IsDiphthong(pair string) bool {
	_, ok := diphthongs[pair]
	return ok
}
