//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package schema

import (
	"fmt"
	"sort"
)

// Preset names.
const (
	PresetGPTGoogle    = "gpt-google"
	PresetGeminiYandex = "gemini-yandex"
	PresetAllEngines   = "all-engines"
)

var presets = map[string]Schema{
	PresetGPTGoogle: {
		Delimiter:   ";",
		ColumnCount: 6,
		Reference:   3,
		Hypotheses:  []Column{{Index: 4, Label: "GPT"}, {Index: 5, Label: "Google"}},
	},
	PresetGeminiYandex: {
		Delimiter:   ",",
		ColumnCount: 6,
		Reference:   3,
		Hypotheses:  []Column{{Index: 4, Label: "Gemini"}, {Index: 5, Label: "Yandex"}},
	},
	PresetAllEngines: {
		Delimiter:   ";",
		ColumnCount: 7,
		Reference:   2,
		Hypotheses: []Column{
			{Index: 3, Label: "GPT"},
			{Index: 4, Label: "Google"},
			{Index: 5, Label: "Gemini"},
			{Index: 6, Label: "Yandex"},
		},
	},
}

// Default returns the gpt-google schema: six columns, reference at 3 and
// hypotheses GPT and Google at 4 and 5.
func Default() *Schema {
	s, _ := Preset(PresetGPTGoogle)
	return s
}

// Preset returns a copy of the named schema.
func Preset(name string) (*Schema, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (known: %v)", ErrConfiguration, name, PresetNames())
	}
	return p.clone(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
