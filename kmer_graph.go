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
	"sort"
	"strings"
)

var alphabet = [4]byte{'A', 'C', 'G', 'T'}

// Kmer records every place a length-k window occurs across the input
// sequences. The window bytes are a sub-slice of a Sequence buffer, so the
// index stores each k-mer's sequence without copying it.
type Kmer struct {
	seq       []byte
	Positions []Position
}

func (k *Kmer) Seq() []byte {
	return k.seq
}

func (k *Kmer) AddPosition(seqID uint16, strand bool, pos int) {
	k.Positions = append(k.Positions, NewPosition(seqID, strand, pos))
}

// Depth is how many times this k-mer appears in the input sequences.
func (k *Kmer) Depth() int {
	return len(k.Positions)
}

// FirstPosition reports whether any occurrence sits at the start of an input
// sequence, i.e. its center offset is the leftmost possible one.
func (k *Kmer) FirstPosition(halfK int) bool {
	for _, p := range k.Positions {
		if p.Pos() == halfK {
			return true
		}
	}
	return false
}

func (k *Kmer) String() string {
	positions := make([]string, len(k.Positions))
	for i, p := range k.Positions {
		positions[i] = p.String()
	}
	return string(k.seq) + ":" + strings.Join(positions, ",")
}

// KmerGraph is a bidirectional De Bruijn index over all input sequences.
// Every window of each sequence's forward and reverse strand is added, so for
// every k-mer entry the reverse-complement entry also exists.
type KmerGraph struct {
	KSize int
	Kmers map[string]*Kmer
}

func NewKmerGraph(kSize int) *KmerGraph {
	return &KmerGraph{KSize: kSize, Kmers: make(map[string]*Kmer)}
}

func (g *KmerGraph) AddSequences(seqs []*Sequence, assemblyCount int) {
	for _, seq := range seqs {
		g.AddSequence(seq, assemblyCount)
	}
}

// AddSequence inserts every length-k window of both strands, each with a
// Position recording the window's center offset on that strand. Forward and
// reverse windows are added in lockstep to keep the pairing invariant.
// assemblyCount sizes position vectors, since most k-mers occur once per
// assembly.
func (g *KmerGraph) AddSequence(seq *Sequence, assemblyCount int) {
	k := g.KSize
	halfK := k / 2
	forward, reverse := seq.ForwardSeq, seq.ReverseSeq
	n := len(forward) - k + 1
	for forwardStart := 0; forwardStart < n; forwardStart++ {
		reverseStart := n - 1 - forwardStart
		g.add(forward[forwardStart:forwardStart+k], seq.ID, Forward, forwardStart+halfK, assemblyCount)
		g.add(reverse[reverseStart:reverseStart+k], seq.ID, Reverse, reverseStart+halfK, assemblyCount)
	}
}

func (g *KmerGraph) add(window []byte, seqID uint16, strand bool, pos, assemblyCount int) {
	key := string(window)
	kmer, ok := g.Kmers[key]
	if !ok {
		kmer = &Kmer{seq: window, Positions: make([]Position, 0, assemblyCount)}
		g.Kmers[key] = kmer
	}
	kmer.AddPosition(seqID, strand, pos)
}

// NextKmers returns the k-mers in the graph which overlap the given k-mer by
// k-1 bases on the right side, e.g. ACGACT -> CGACTA, CGACTG.
func (g *KmerGraph) NextKmers(kmer []byte) []*Kmer {
	k := len(kmer)
	probe := make([]byte, k)
	copy(probe, kmer[1:])
	var next []*Kmer
	for _, base := range alphabet {
		probe[k-1] = base
		if km, ok := g.Kmers[string(probe)]; ok {
			next = append(next, km)
		}
	}
	return next
}

// PrevKmers returns the k-mers in the graph which overlap the given k-mer by
// k-1 bases on the left side, e.g. ACGACT -> AACGAC, GACGAC.
func (g *KmerGraph) PrevKmers(kmer []byte) []*Kmer {
	k := len(kmer)
	probe := make([]byte, k)
	copy(probe[1:], kmer[:k-1])
	var prev []*Kmer
	for _, base := range alphabet {
		probe[0] = base
		if km, ok := g.Kmers[string(probe)]; ok {
			prev = append(prev, km)
		}
	}
	return prev
}

// IterateKmers returns the Kmer objects in ascending lexicographic order of
// their sequence. Unitig numbering depends on this order being deterministic.
func (g *KmerGraph) IterateKmers() []*Kmer {
	keys := make([]string, 0, len(g.Kmers))
	for key := range g.Kmers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	kmers := make([]*Kmer, len(keys))
	for i, key := range keys {
		kmers[i] = g.Kmers[key]
	}
	return kmers
}

// Reverse returns the reverse-complement Kmer object. Since all k-mers are
// added on both strands, the reverse-complement entry always exists.
func (g *KmerGraph) Reverse(kmer *Kmer) *Kmer {
	rev, ok := g.Kmers[string(ReverseComplement(kmer.seq))]
	if !ok {
		panic("autocycler: reverse-complement k-mer missing from graph")
	}
	return rev
}
