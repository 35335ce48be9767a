package greek

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestBaseLetter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cases := []struct{ in, base string }{
		{"ἅ", "α"},       // ἅ => α
		{"Ἀ", "α"},       // Ἀ => α
		{"ῦ", "υ"},       // ῦ => υ
		{"έ", "ε"}, // decomposed έ => ε
		{"́", ""},             // lone combining mark
		{",", ","},
		{"", ""},
	}
	for _, c := range cases {
		if b := BaseLetter(c.in); b != c.base {
			t.Errorf("expected base letter of %+q to be %+q, is %+q", c.in, c.base, b)
		}
	}
}

func TestIsVowel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	vowels := []string{"ἅ", "Ω", "ῳ", "ϊ", "ᾼ"}
	for _, v := range vowels {
		if !IsVowel(v) {
			t.Errorf("expected %+q to be a vowel cluster", v)
		}
	}
	others := []string{"Γ", "σ", "́", " ", "a", ""}
	for _, o := range others {
		if IsVowel(o) {
			t.Errorf("expected %+q not to be a vowel cluster", o)
		}
	}
}

func TestHasDiaeresis(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, s := range []string{"ϊ", "ϊ", "ῒ", "Ϋ", "ΐ"} {
		if !HasDiaeresis(s) {
			t.Errorf("expected %+q to carry a diaeresis", s)
		}
	}
	for _, s := range []string{"ι", "ἰ", "ύ"} {
		if HasDiaeresis(s) {
			t.Errorf("expected %+q not to carry a diaeresis", s)
		}
	}
}

func TestHasIotaSubscript(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, s := range []string{"ᾳ", "ᾳ", "ᾼ", "ῇ", "ᾧ", "ῴ"} {
		if !HasIotaSubscript(s) {
			t.Errorf("expected %+q to carry an iota subscript", s)
		}
	}
	for _, s := range []string{"α", "ἀ", "ι", "ᾶ"} {
		if HasIotaSubscript(s) {
			t.Errorf("expected %+q not to carry an iota subscript", s)
		}
	}
}

func TestHasBreathing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, s := range []string{"ἀ", "ἁ", "ἁ", "ᾅ", "ῥ"} {
		if !HasBreathing(s) {
			t.Errorf("expected %+q to carry a breathing", s)
		}
	}
	for _, s := range []string{"ά", "α", "ϊ"} {
		if HasBreathing(s) {
			t.Errorf("expected %+q not to carry a breathing", s)
		}
	}
}

func TestPunctuation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, s := range []string{" ", ",", "·", "+", "\n", "·", "—"} {
		if !IsPunctOrSpace(s) {
			t.Errorf("expected %+q to be punctuation or space", s)
		}
	}
	for _, s := range []string{"α", "1", "́"} {
		if IsPunctOrSpace(s) {
			t.Errorf("expected %+q not to be punctuation or space", s)
		}
	}
	for _, s := range []string{"", ", ", " ́", "· "} {
		if !OnlyPunctOrSpace(s) {
			t.Errorf("expected %+q to contain neither letters nor numbers", s)
		}
	}
	for _, s := range []string{" δ ", "1", ", a"} {
		if OnlyPunctOrSpace(s) {
			t.Errorf("expected %+q to contain letters or numbers", s)
		}
	}
}

func TestDiphthongTable(t *testing.T) {
	for _, d := range []string{"αι", "αυ", "ει", "ευ", "οι", "ου", "υι", "ωι"} {
		if !IsDiphthong(d) {
			t.Errorf("expected %q to be a diphthong", d)
		}
	}
	for _, d := range []string{"ια", "ηι", "αε", "εο", "α", ""} {
		if IsDiphthong(d) {
			t.Errorf("expected %q not to be a diphthong", d)
		}
	}
}

func TestClassifier(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	c := NewClassifier(0)
	tr := c.Classify("ἅ")
	if !tr.Vowel || !tr.Breathing || tr.Base != "α" {
		t.Errorf("unexpected traits for rough-breathing alpha: %+v", tr)
	}
	c.Classify("ἅ")
	c.Classify("γ")
	if c.Len() != 2 {
		t.Errorf("expected classifier to remember 2 cluster texts, has %d", c.Len())
	}
	if c.Classify("γ").Vowel {
		t.Errorf("expected gamma not to be a vowel")
	}
}
