//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tokenizer

import (
	"regexp"
	"strings"
)

type substitution struct {
	re   *regexp.Regexp
	repl string
}

func subst(pattern, repl string) substitution {
	return substitution{re: regexp.MustCompile(pattern), repl: repl}
}

func applyAll(text string, subs []substitution) string {
	for _, s := range subs {
		text = s.re.ReplaceAllString(text, s.repl)
	}
	return text
}

var (
	startingQuotes = []substitution{
		subst("([«“‘„]|`+)", " ${1} "),
		subst(`^"`, "``"),
		subst("(``)", " ${1} "),
		subst(`([ (\[{<])("|'{2})`, "${1} `` "),
	}
	punctuation = []substitution{
		subst(`([^.])(\.)([\])}>"']*)\s*$`, "${1} ${2}${3} "),
		subst(`([:,])([^\d])`, " ${1} ${2}"),
		subst(`([:,])$`, " ${1} "),
		subst(`\.{2,}`, " ${0} "),
		subst(`[;@#$%&]`, " ${0} "),
		subst(`[?!]`, " ${0} "),
		subst(`([^'])' `, "${1} ' "),
		subst(`[*]`, " ${0} "),
	}
	brackets = []substitution{
		subst(`[\]\[(){}<>]`, " ${0} "),
		subst(`--`, " -- "),
	}
	endingQuotes = []substitution{
		subst(`([»”’])`, " ${1} "),
		subst(`''`, " '' "),
		subst(`"`, " '' "),
		subst(`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} "),
		subst(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} "),
	}
	contractions = []substitution{
		subst(`(?i)\b(can)(not)\b`, " ${1} ${2} "),
		subst(`(?i)\b(d)('ye)\b`, " ${1} ${2} "),
		subst(`(?i)\b(gim)(me)\b`, " ${1} ${2} "),
		subst(`(?i)\b(gon)(na)\b`, " ${1} ${2} "),
		subst(`(?i)\b(got)(ta)\b`, " ${1} ${2} "),
		subst(`(?i)\b(lem)(me)\b`, " ${1} ${2} "),
		subst(`(?i)\b(more)('n)\b`, " ${1} ${2} "),
		subst(`(?i)\b(wan)(na)\s`, " ${1} ${2} "),
		subst(`(?i) ('t)(is)\b`, " ${1} ${2} "),
		subst(`(?i) ('t)(was)\b`, " ${1} ${2} "),
	}
)

// Option configures the word tokenizer.
type Option func(*options)

type options struct {
	splitSentences bool
}

// WithSentenceSplitting toggles Punkt sentence splitting before word rules.
// It is on by default; when off, the text is treated as one sentence.
func WithSentenceSplitting(enabled bool) Option {
	return func(o *options) {
		o.splitSentences = enabled
	}
}

type word struct {
	opts options
}

// NewWord returns the Treebank-style word tokenizer.
func NewWord(opt ...Option) Tokenizer {
	opts := options{splitSentences: true}
	for _, o := range opt {
		o(&opts)
	}
	return &word{opts: opts}
}

// Tokenize implements Tokenizer.
func (w *word) Tokenize(text string) []string {
	text = Normalize(text)
	tokens := make([]string, 0, len(text)/4)
	if text == "" {
		return tokens
	}
	sents := []string{text}
	if w.opts.splitSentences {
		// Without the model the text is scored as a single sentence.
		if split, err := Sentences(text); err == nil && len(split) > 0 {
			sents = split
		}
	}
	for _, s := range sents {
		tokens = append(tokens, treebank(s)...)
	}
	return tokens
}

func treebank(sentence string) []string {
	text := applyAll(sentence, startingQuotes)
	text = applyAll(text, punctuation)
	text = applyAll(text, brackets)
	text = " " + text + " "
	text = applyAll(text, endingQuotes)
	text = applyAll(text, contractions)
	return strings.Fields(text)
}
