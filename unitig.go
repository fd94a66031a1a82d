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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// UnitigStrand is one oriented endpoint of a link: a unitig on a particular
// strand.
type UnitigStrand struct {
	Unitig *Unitig
	Strand bool
}

func (us UnitigStrand) Number() uint32 {
	return us.Unitig.Number
}

// SignedNumber encodes strand into the sign: negative means reverse.
func (us UnitigStrand) SignedNumber() int32 {
	if us.Strand {
		return int32(us.Unitig.Number)
	}
	return -int32(us.Unitig.Number)
}

// Unitig is one node of the graph: a maximal non-branching k-mer chain
// collapsed to a byte sequence, present on both strands, with the adjacency
// and the input-contig positions of each strand.
type Unitig struct {
	Number uint32
	Depth  float64

	ForwardSeq []byte
	ReverseSeq []byte

	ForwardPositions []Position
	ReversePositions []Position

	ForwardNext []UnitigStrand
	ForwardPrev []UnitigStrand
	ReverseNext []UnitigStrand
	ReversePrev []UnitigStrand

	// k-mer chain state, only alive between construction and SimplifySeqs.
	// endKmers holds the seed and all forward extensions in order;
	// startKmers holds backward extensions in discovery order (so the full
	// chain is reverse(startKmers) then endKmers). firstReverseKmer tracks
	// the reverse complement of the chain's last k-mer.
	endKmers         []*Kmer
	startKmers       []*Kmer
	firstReverseKmer *Kmer
}

// NewUnitigFromKmers seeds a unitig with a k-mer and its reverse complement.
func NewUnitigFromKmers(number uint32, forwardKmer, reverseKmer *Kmer) *Unitig {
	return &Unitig{
		Number:           number,
		endKmers:         []*Kmer{forwardKmer},
		firstReverseKmer: reverseKmer,
	}
}

// UnitigFromSegmentLine parses a GFA S-line.
func UnitigFromSegmentLine(line string) (*Unitig, error) {
	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	if len(parts) < 3 {
		return nil, errors.New("GFA segment line has too few fields")
	}
	number, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "parsing segment number")
	}
	forward := []byte(parts[2])
	depth := 0.0
	for _, p := range parts[3:] {
		if strings.HasPrefix(p, "DP:f:") {
			depth, err = strconv.ParseFloat(p[5:], 64)
			if err != nil {
				return nil, errors.Wrap(err, "parsing segment depth")
			}
		}
	}
	return &Unitig{
		Number:     uint32(number),
		Depth:      depth,
		ForwardSeq: forward,
		ReverseSeq: ReverseComplement(forward),
	}, nil
}

func (u *Unitig) AddKmerToEnd(forwardKmer, reverseKmer *Kmer) {
	u.endKmers = append(u.endKmers, forwardKmer)
	u.firstReverseKmer = reverseKmer
}

func (u *Unitig) AddKmerToStart(forwardKmer, reverseKmer *Kmer) {
	u.startKmers = append(u.startKmers, forwardKmer)
}

// SimplifySeqs collapses the per-k-mer storage into one byte buffer per
// strand, sets the mean k-mer depth, and copies the chain-end positions onto
// the unitig. The k-mer chain is released afterwards.
func (u *Unitig) SimplifySeqs() {
	chain := make([]*Kmer, 0, len(u.startKmers)+len(u.endKmers))
	for i := len(u.startKmers) - 1; i >= 0; i-- {
		chain = append(chain, u.startKmers[i])
	}
	chain = append(chain, u.endKmers...)

	first := chain[0]
	forward := make([]byte, 0, len(first.Seq())+len(chain)-1)
	forward = append(forward, first.Seq()...)
	totalDepth := 0
	for _, k := range chain {
		totalDepth += k.Depth()
	}
	for _, k := range chain[1:] {
		seq := k.Seq()
		forward = append(forward, seq[len(seq)-1])
	}
	u.ForwardSeq = forward
	u.ReverseSeq = ReverseComplement(forward)
	u.Depth = float64(totalDepth) / float64(len(chain))
	u.ForwardPositions = append([]Position(nil), first.Positions...)
	u.ReversePositions = append([]Position(nil), u.firstReverseKmer.Positions...)

	u.endKmers, u.startKmers, u.firstReverseKmer = nil, nil, nil
}

// TrimOverlaps removes the half-k overlap from both ends of both strands and
// rebases the positions into trimmed coordinates. Called once per unitig,
// right after link creation.
func (u *Unitig) TrimOverlaps(kSize int) {
	halfK := kSize / 2
	if len(u.ForwardSeq) < 2*halfK+1 {
		panic("autocycler: unitig too short to trim overlaps")
	}
	u.ForwardSeq = u.ForwardSeq[halfK : len(u.ForwardSeq)-halfK]
	u.ReverseSeq = u.ReverseSeq[halfK : len(u.ReverseSeq)-halfK]
	for i := range u.ForwardPositions {
		u.ForwardPositions[i] = u.ForwardPositions[i].shift(-halfK)
	}
	for i := range u.ReversePositions {
		u.ReversePositions[i] = u.ReversePositions[i].shift(-halfK)
	}
}

func (u *Unitig) Length() int {
	return len(u.ForwardSeq)
}

// Seq returns the unitig's sequence on the given strand.
func (u *Unitig) Seq(strand bool) []byte {
	if strand {
		return u.ForwardSeq
	}
	return u.ReverseSeq
}

// RemoveSeqFromStart trims n bytes from the start of the forward strand. The
// forward strand's start moves later in every path, so forward positions
// shift forward by n. Callers guarantee the unitig keeps length >= 1.
func (u *Unitig) RemoveSeqFromStart(n int) {
	u.ForwardSeq = u.ForwardSeq[n:]
	u.ReverseSeq = u.ReverseSeq[:len(u.ReverseSeq)-n]
	for i := range u.ForwardPositions {
		u.ForwardPositions[i] = u.ForwardPositions[i].shift(n)
	}
}

// RemoveSeqFromEnd trims n bytes from the end of the forward strand, which is
// the start of the reverse strand.
func (u *Unitig) RemoveSeqFromEnd(n int) {
	u.ForwardSeq = u.ForwardSeq[:len(u.ForwardSeq)-n]
	u.ReverseSeq = u.ReverseSeq[n:]
	for i := range u.ReversePositions {
		u.ReversePositions[i] = u.ReversePositions[i].shift(n)
	}
}

// AddSeqToStart prepends bytes to the forward strand; forward positions shift
// back by the added amount.
func (u *Unitig) AddSeqToStart(seq []byte) {
	forward := make([]byte, 0, len(seq)+len(u.ForwardSeq))
	forward = append(forward, seq...)
	forward = append(forward, u.ForwardSeq...)
	u.ForwardSeq = forward
	u.ReverseSeq = append(u.ReverseSeq, ReverseComplement(seq)...)
	for i := range u.ForwardPositions {
		u.ForwardPositions[i] = u.ForwardPositions[i].shift(-len(seq))
	}
}

// AddSeqToEnd appends bytes to the forward strand; reverse positions shift
// back by the added amount.
func (u *Unitig) AddSeqToEnd(seq []byte) {
	u.ForwardSeq = append(u.ForwardSeq, seq...)
	reverse := make([]byte, 0, len(seq)+len(u.ReverseSeq))
	reverse = append(reverse, ReverseComplement(seq)...)
	reverse = append(reverse, u.ReverseSeq...)
	u.ReverseSeq = reverse
	for i := range u.ReversePositions {
		u.ReversePositions[i] = u.ReversePositions[i].shift(-len(seq))
	}
}

// RemoveSequence drops all positions belonging to the given sequence ID.
func (u *Unitig) RemoveSequence(seqID uint16) {
	u.ForwardPositions = removeSeqPositions(u.ForwardPositions, seqID)
	u.ReversePositions = removeSeqPositions(u.ReversePositions, seqID)
}

func removeSeqPositions(positions []Position, seqID uint16) []Position {
	kept := positions[:0]
	for _, p := range positions {
		if p.SeqID != seqID {
			kept = append(kept, p)
		}
	}
	return kept
}

// RecalculateDepth sets the depth from the current positions: one traversal
// per forward-strand position.
func (u *Unitig) RecalculateDepth() {
	u.Depth = float64(len(u.ForwardPositions))
}

func (u *Unitig) ClearPositions() {
	u.ForwardPositions = nil
	u.ReversePositions = nil
}

// GFASegmentLine renders the unitig as a GFA S-line.
func (u *Unitig) GFASegmentLine() string {
	return fmt.Sprintf("S\t%d\t%s\tDP:f:%s",
		u.Number, u.ForwardSeq, strconv.FormatFloat(u.Depth, 'f', 2, 64))
}
