//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package meteor

import "sort"

// matcher reports whether hypothesis token i may align with reference token j.
type matcher func(i, j int) bool

// pair is one aligned (hypothesis, reference) index pair.
type pair struct {
	hyp, ref int
}

// beamWidth bounds the partial alignments kept per hypothesis token.
const beamWidth = 64

// alignment is a partial alignment built up during a stage.
type alignment struct {
	hypTo   []int
	refUsed []bool
	matches int
	chunks  int
	dist    int
}

func (a *alignment) link(i, j int) *alignment {
	next := &alignment{
		hypTo:   append([]int(nil), a.hypTo...),
		refUsed: append([]bool(nil), a.refUsed...),
		matches: a.matches + 1,
		dist:    a.dist + abs(i-j),
	}
	next.hypTo[i] = j
	next.refUsed[j] = true
	next.chunks = chunksOf(next.hypTo)
	return next
}

// better orders alignments by more matches, then fewer chunks, then smaller
// total positional distance.
func (a *alignment) better(b *alignment) bool {
	if a.matches != b.matches {
		return a.matches > b.matches
	}
	if a.chunks != b.chunks {
		return a.chunks < b.chunks
	}
	return a.dist < b.dist
}

// align runs the stages in order. Each stage only sees tokens left unaligned by
// earlier stages. Within a stage a beam search over hypothesis tokens keeps the
// alignments with the most matches and, among those, the fewest chunks.
func align(hyp, ref []string, stages []matcher) []pair {
	best := &alignment{hypTo: make([]int, len(hyp)), refUsed: make([]bool, len(ref))}
	for i := range best.hypTo {
		best.hypTo[i] = -1
	}

	for _, match := range stages {
		beam := []*alignment{best}
		for i := range hyp {
			if best.hypTo[i] >= 0 {
				continue
			}
			next := make([]*alignment, 0, len(beam)*2)
			for _, a := range beam {
				next = append(next, a)
				for j := range ref {
					if !a.refUsed[j] && match(i, j) {
						next = append(next, a.link(i, j))
					}
				}
			}
			sort.SliceStable(next, func(x, y int) bool { return next[x].better(next[y]) })
			if len(next) > beamWidth {
				next = next[:beamWidth]
			}
			beam = next
		}
		best = beam[0]
	}

	pairs := make([]pair, 0, len(hyp))
	for i, j := range best.hypTo {
		if j >= 0 {
			pairs = append(pairs, pair{hyp: i, ref: j})
		}
	}
	return pairs
}

// chunksOf counts chunks of an alignment indexed by hypothesis position.
func chunksOf(hypTo []int) int {
	chunks := 0
	for i, j := range hypTo {
		if j < 0 {
			continue
		}
		if i == 0 || hypTo[i-1] < 0 || hypTo[i-1] != j-1 {
			chunks++
		}
	}
	return chunks
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// countChunks counts maximal runs of pairs adjacent in both sequences.
func countChunks(pairs []pair) int {
	if len(pairs) == 0 {
		return 0
	}
	sorted := append([]pair(nil), pairs...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].hyp < sorted[b].hyp })
	chunks := 1
	for k := 1; k < len(sorted); k++ {
		prev, cur := sorted[k-1], sorted[k]
		if cur.hyp != prev.hyp+1 || cur.ref != prev.ref+1 {
			chunks++
		}
	}
	return chunks
}
