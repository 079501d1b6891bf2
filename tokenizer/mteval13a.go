//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tokenizer

import "strings"

var (
	mtevalEntities = strings.NewReplacer(
		"&quot;", `"`,
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
	)
	mtevalRules = []substitution{
		// Symbols and punctuation except apostrophe, comma, hyphen and period.
		subst("([{-~\\[-` -&(-+:-@/])", " ${1} "),
		subst(`([^0-9])([.,])`, "${1} ${2} "),
		subst(`([.,])([^0-9])`, " ${1} ${2}"),
		subst(`([0-9])(-)`, "${1} ${2} "),
	}
)

type mteval13a struct{}

// NewMTEval13a returns the mteval-v13a tokenizer. Case is preserved.
func NewMTEval13a() Tokenizer {
	return mteval13a{}
}

// Tokenize implements Tokenizer.
func (mteval13a) Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "<skipped>", "")
	text = strings.ReplaceAll(text, "-\n", "")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.Contains(text, "&") {
		text = mtevalEntities.Replace(text)
	}
	text = Normalize(text)
	if text == "" {
		return []string{}
	}
	text = applyAll(" "+text+" ", mtevalRules)
	return strings.Fields(text)
}
