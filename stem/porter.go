//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package stem implements the Porter stemmer with the NLTK extensions.
//
// The extensions add an irregular-forms table, keep short "-ies"/"-ied" words
// as "-ie", fold "alli" before the step 2 table, and add the "logi" rule.
// Words are treated as ASCII; other bytes count as consonants.
package stem

import "strings"

// Porter returns the stem of word. The word is lowercased first.
func Porter(word string) string {
	word = strings.ToLower(word)
	if len(word) <= 2 {
		return word
	}
	if base, ok := irregular[word]; ok {
		return base
	}
	for _, step := range steps {
		word = step(word)
	}
	return word
}

var steps = []func(string) string{
	step1a, step1b, step1c, step2, step3, step4, step5a, step5b,
}

var irregular = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// rule rewrites suffix to repl when when(base) holds; base is the word minus suffix.
// A nil when always holds.
type rule struct {
	suffix string
	repl   string
	when   func(base string) bool
}

// rewrite applies the first rule whose suffix matches. A matching rule whose
// condition fails stops the search and leaves word unchanged.
func rewrite(word string, rules []rule) string {
	for _, r := range rules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		base := word[:len(word)-len(r.suffix)]
		if r.when == nil || r.when(base) {
			return base + r.repl
		}
		return word
	}
	return word
}

func consonant(w string, i int) bool {
	switch w[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !consonant(w, i-1)
	}
	return true
}

func hasVowel(w string) bool {
	for i := range len(w) {
		if !consonant(w, i) {
			return true
		}
	}
	return false
}

// measure counts vowel-consonant sequences, the m of [C](VC)^m[V].
func measure(w string) int {
	m := 0
	vowelRun := false
	for i := range len(w) {
		if consonant(w, i) {
			if vowelRun {
				m++
			}
			vowelRun = false
		} else {
			vowelRun = true
		}
	}
	return m
}

func positive(base string) bool { return measure(base) > 0 }

func aboveOne(base string) bool { return measure(base) > 1 }

func doubleConsonant(w string) bool {
	n := len(w)
	return n >= 2 && w[n-1] == w[n-2] && consonant(w, n-1)
}

// cvc reports a consonant-vowel-consonant ending whose last letter is not w, x or y.
// Two-letter vowel-consonant words also qualify.
func cvc(w string) bool {
	n := len(w)
	if n == 2 {
		return !consonant(w, 0) && consonant(w, 1)
	}
	if n < 3 {
		return false
	}
	switch w[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return consonant(w, n-3) && !consonant(w, n-2) && consonant(w, n-1)
}

var step1aRules = []rule{
	{suffix: "sses", repl: "ss"},
	{suffix: "ies", repl: "i"},
	{suffix: "ss", repl: "ss"},
	{suffix: "s", repl: ""},
}

func step1a(w string) string {
	if len(w) == 4 && strings.HasSuffix(w, "ies") {
		return w[:1] + "ie"
	}
	return rewrite(w, step1aRules)
}

var step1bRestore = []rule{
	{suffix: "at", repl: "ate"},
	{suffix: "bl", repl: "ble"},
	{suffix: "iz", repl: "ize"},
}

func step1b(w string) string {
	switch {
	case strings.HasSuffix(w, "ied"):
		if len(w) == 4 {
			return w[:1] + "ie"
		}
		return w[:len(w)-3] + "i"
	case strings.HasSuffix(w, "eed"):
		if base := w[:len(w)-3]; positive(base) {
			return base + "ee"
		}
		return w
	}

	var base string
	switch {
	case strings.HasSuffix(w, "ed") && hasVowel(w[:len(w)-2]):
		base = w[:len(w)-2]
	case strings.HasSuffix(w, "ing") && hasVowel(w[:len(w)-3]):
		base = w[:len(w)-3]
	default:
		return w
	}

	for _, r := range step1bRestore {
		if strings.HasSuffix(base, r.suffix) {
			return base[:len(base)-len(r.suffix)] + r.repl
		}
	}
	if doubleConsonant(base) {
		switch base[len(base)-1] {
		case 'l', 's', 'z':
			return base
		}
		return base[:len(base)-1]
	}
	if measure(base) == 1 && cvc(base) {
		return base + "e"
	}
	return base
}

func step1c(w string) string {
	if !strings.HasSuffix(w, "y") {
		return w
	}
	base := w[:len(w)-1]
	if len(base) > 1 && consonant(base, len(base)-1) {
		return base + "i"
	}
	return w
}

var step2Rules = []rule{
	{"ational", "ate", positive},
	{"tional", "tion", positive},
	{"enci", "ence", positive},
	{"anci", "ance", positive},
	{"izer", "ize", positive},
	{"bli", "ble", positive},
	{"alli", "al", positive},
	{"entli", "ent", positive},
	{"eli", "e", positive},
	{"ousli", "ous", positive},
	{"ization", "ize", positive},
	{"ation", "ate", positive},
	{"ator", "ate", positive},
	{"alism", "al", positive},
	{"iveness", "ive", positive},
	{"fulness", "ful", positive},
	{"ousness", "ous", positive},
	{"aliti", "al", positive},
	{"iviti", "ive", positive},
	{"biliti", "ble", positive},
	{"fulli", "ful", positive},
}

func step2(w string) string {
	if strings.HasSuffix(w, "alli") && positive(w[:len(w)-4]) {
		return step2(w[:len(w)-4] + "al")
	}
	for _, r := range step2Rules {
		if strings.HasSuffix(w, r.suffix) {
			return rewrite(w, []rule{r})
		}
	}
	// "logi" keeps its "l" when measuring.
	if strings.HasSuffix(w, "logi") {
		if positive(w[:len(w)-3]) {
			return w[:len(w)-1]
		}
	}
	return w
}

var step3Rules = []rule{
	{"icate", "ic", positive},
	{"ative", "", positive},
	{"alize", "al", positive},
	{"iciti", "ic", positive},
	{"ical", "ic", positive},
	{"ful", "", positive},
	{"ness", "", positive},
}

func step3(w string) string { return rewrite(w, step3Rules) }

var step4Rules = []rule{
	{"al", "", aboveOne},
	{"ance", "", aboveOne},
	{"ence", "", aboveOne},
	{"er", "", aboveOne},
	{"ic", "", aboveOne},
	{"able", "", aboveOne},
	{"ible", "", aboveOne},
	{"ant", "", aboveOne},
	{"ement", "", aboveOne},
	{"ment", "", aboveOne},
	{"ent", "", aboveOne},
	{"ion", "", func(base string) bool {
		n := len(base)
		return aboveOne(base) && n > 0 && (base[n-1] == 's' || base[n-1] == 't')
	}},
	{"ou", "", aboveOne},
	{"ism", "", aboveOne},
	{"ate", "", aboveOne},
	{"iti", "", aboveOne},
	{"ous", "", aboveOne},
	{"ive", "", aboveOne},
	{"ize", "", aboveOne},
}

func step4(w string) string { return rewrite(w, step4Rules) }

func step5a(w string) string {
	if !strings.HasSuffix(w, "e") {
		return w
	}
	base := w[:len(w)-1]
	switch m := measure(base); {
	case m > 1, m == 1 && !cvc(base):
		return base
	}
	return w
}

func step5b(w string) string {
	if strings.HasSuffix(w, "ll") && aboveOne(w[:len(w)-1]) {
		return w[:len(w)-1]
	}
	return w
}
