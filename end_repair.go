// Copyright © 2024 iskold
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package autocycler

import (
	"bytes"
	"regexp"
	"sync"
)

// SequenceEndRepair replaces the half-k sentinel dots at each sequence's ends
// with matching real bytes found elsewhere, so the sentinels don't create
// dead-end tips in the graph. The sentinel ends are trimmed off during
// overlap trimming, so it doesn't matter if a replacement is 'wrong'. Each
// sequence is repaired by its own worker against a read-only snapshot of all
// sequence bytes; writes are disjoint, so no locking is needed.
func SequenceEndRepair(seqs []*Sequence, kSize, threads int) {
	overlapSize := kSize - 1
	if overlapSize == 0 || len(seqs) == 0 {
		return
	}
	if threads < 1 {
		threads = 1
	}

	allSeqs := make([][]byte, 0, len(seqs)*2)
	for _, s := range seqs {
		allSeqs = append(allSeqs,
			append([]byte(nil), s.ForwardSeq...),
			append([]byte(nil), s.ReverseSeq...))
	}

	jobs := make(chan *Sequence, threads)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seq := range jobs {
				repairSequenceEnds(seq, allSeqs, overlapSize)
			}
		}()
	}
	for _, s := range seqs {
		jobs <- s
	}
	close(jobs)
	wg.Wait()
}

func repairSequenceEnds(seq *Sequence, allSeqs [][]byte, overlapSize int) {
	// Dots are wildcards, all other bytes (ACGTN after upper-casing) are
	// regex literals.
	startRe := regexp.MustCompile(string(seq.ForwardSeq[:overlapSize]))
	endRe := regexp.MustCompile(string(seq.ForwardSeq[len(seq.ForwardSeq)-overlapSize:]))

	var matches [][]byte
	for _, s := range allSeqs {
		matches = append(matches, startRe.FindAll(s, -1)...)
	}
	copy(seq.ForwardSeq[:overlapSize], findBestMatch(matches))

	matches = matches[:0]
	for _, s := range allSeqs {
		matches = append(matches, endRe.FindAll(s, -1)...)
	}
	copy(seq.ForwardSeq[len(seq.ForwardSeq)-overlapSize:], findBestMatch(matches))

	seq.ReverseSeq = ReverseComplement(seq.ForwardSeq)
}

// findBestMatch picks the best of the regex matches: fewest dots, then most
// occurrences, then first alphabetically. The sequence always matches itself,
// so at least one match exists.
func findBestMatch(matches [][]byte) []byte {
	counts := make(map[string]int, len(matches))
	for _, m := range matches {
		counts[string(m)]++
	}
	dotCount := func(m []byte) int {
		return bytes.Count(m, []byte{'.'})
	}
	best := matches[0]
	bestDots := dotCount(best)
	for _, m := range matches[1:] {
		dots := dotCount(m)
		switch {
		case dots < bestDots:
		case dots > bestDots:
			continue
		case counts[string(m)] > counts[string(best)]:
		case counts[string(m)] < counts[string(best)]:
			continue
		case bytes.Compare(m, best) >= 0:
			continue
		}
		best, bestDots = m, dots
	}
	return best
}
