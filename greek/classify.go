package greek

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/hiatus/cluster"
	"golang.org/x/text/unicode/norm"
)

// BaseLetter returns the first non-combining code-point of the canonical
// decomposition of s, lowercased. If there is none, BaseLetter returns "".
func BaseLetter(s string) string {
	for _, r := range norm.NFD.String(s) {
		if !cluster.IsCombining(r) {
			return string(unicode.ToLower(r))
		}
	}
	return ""
}

// IsVowel is true if any non-combining code-point of the canonical
// decomposition of s is a Greek vowel letter (in either case).
func IsVowel(s string) bool {
	for _, r := range norm.NFD.String(s) {
		if cluster.IsCombining(r) {
			continue
		}
		if strings.ContainsRune(Vowels, unicode.ToLower(r)) {
			return true
		}
	}
	return false
}

// HasDiaeresis is true if s carries a diaeresis, either as part of a
// pre-composed letter or as a combining mark.
func HasDiaeresis(s string) bool {
	if strings.ContainsAny(s, precomposedDiaeresis) {
		return true
	}
	return strings.ContainsRune(norm.NFD.String(s), CombiningDiaeresis)
}

// HasIotaSubscript is true if s carries an iota subscript (ypogegrammeni).
//
// The mark is searched for in the canonical and in the compatibility
// decomposition of s, in the decomposition mapping of every single
// code-point of s, and finally s is compared against a fixed list of
// pre-composed letters.
func HasIotaSubscript(s string) bool {
	if strings.ContainsRune(norm.NFD.String(s), IotaSubscript) {
		return true
	}
	if strings.ContainsRune(norm.NFKD.String(s), IotaSubscript) {
		return true
	}
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], r)
		if d := norm.NFKD.Properties(buf[:n]).Decomposition(); len(d) > 0 {
			if strings.ContainsRune(string(d), IotaSubscript) {
				return true
			}
		}
	}
	_, ok := precomposedIotaSubscript[s]
	return ok
}

// HasBreathing is true if s carries a smooth or a rough breathing.
func HasBreathing(s string) bool {
	nfd := norm.NFD.String(s)
	return strings.ContainsRune(nfd, SmoothBreathing) || strings.ContainsRune(nfd, RoughBreathing)
}

// IsPunctOrSpace is true if every code-point of s is white space, punctuation
// or a symbol.
func IsPunctOrSpace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		return false
	}
	return true
}

// OnlyPunctOrSpace is true if s contains neither letters nor numbers.
// It is used for the text between two vowel clusters, which may contain
// combining marks and control characters besides punctuation and space.
func OnlyPunctOrSpace(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Traits bundles the results of all the predicates for a single cluster.
type Traits struct {
	Base          string // lowercase base letter
	Vowel         bool   // is a vowel cluster
	Diaeresis     bool   // carries a diaeresis
	IotaSubscript bool   // carries an iota subscript
	Breathing     bool   // carries a smooth or rough breathing
	PunctOrSpace  bool   // consists of punctuation, symbols or space only
}

// Classify computes the Traits of cluster text s.
func Classify(s string) Traits {
	return Traits{
		Base:          BaseLetter(s),
		Vowel:         IsVowel(s),
		Diaeresis:     HasDiaeresis(s),
		IotaSubscript: HasIotaSubscript(s),
		Breathing:     HasBreathing(s),
		PunctOrSpace:  IsPunctOrSpace(s),
	}
}
