//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenizer splits text samples into word tokens for the scoring metrics.
//
// Three rule sets are provided:
//   - Word: Punkt sentence splitting followed by Treebank-style word rules. It
//     separates punctuation, brackets, quotes and English contractions.
//   - MTEval13a: the mteval-v13a rules used by BLEU. Case is preserved.
//   - Alnum: lowercased letter/digit runs with optional stemming, used by ROUGE.
//
// All tokenizers are pure and safe for concurrent use.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits text into tokens. Empty input yields an empty slice.
	Tokenize(text string) []string
}

// Func adapts a plain function to Tokenizer.
type Func func(text string) []string

// Tokenize calls f(text).
func (f Func) Tokenize(text string) []string {
	return f(text)
}

// Normalize applies NFKC normalization, turns control characters into spaces
// and trims the result.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
	return strings.TrimSpace(text)
}

// Lower lowercases text with Unicode case rules.
func Lower(text string) string {
	// Casers keep state, one per call.
	return cases.Lower(language.Und).String(text)
}

// LowerAll lowercases every token in place and returns tokens.
func LowerAll(tokens []string) []string {
	for i, tok := range tokens {
		tokens[i] = Lower(tok)
	}
	return tokens
}
