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
	"strings"
	"unicode"
)

// minStemLength is the shortest token handed to the stemmer.
const minStemLength = 4

type alnum struct {
	stemmer func(string) string
}

// NewAlnum returns a tokenizer that lowercases text and keeps runs of letters
// and digits. When stemmer is non-nil it is applied to ASCII tokens of at least
// four bytes.
func NewAlnum(stemmer func(string) string) Tokenizer {
	return &alnum{stemmer: stemmer}
}

// Tokenize implements Tokenizer.
func (a *alnum) Tokenize(text string) []string {
	text = Lower(Normalize(text))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if a.stemmer != nil && len(tok) >= minStemLength && isASCII(tok) {
			tok = a.stemmer(tok)
		}
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
