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

import "bytes"

// SimplifyStructure iteratively shifts common sequence from branch regions
// into flanking repeat unitigs until a pass moves nothing, then renumbers.
// Every input path spells the same bytes before and after.
func SimplifyStructure(g *UnitigGraph, seqs []*Sequence) {
	for {
		if expandRepeats(g, seqs) == 0 {
			break
		}
	}
	g.RenumberUnitigs()
}

// expandRepeats makes one pass over all unitigs, trying an in-shift and an
// out-shift on each. For example, it will turn this:
//
//	ACTACTCAACT                 GCTACGACTAC
//	           \               /
//	            ATCGACTACGCTACG
//	           /               \
//	GACTACGAACT                 GCTATTGTACC
//
// into this:
//
//	ACTACTC                         CGACTAC
//	       \                       /
//	        AACTATCGACTACGCTACGGCTA
//	       /                       \
//	GACTACG                         TTGTACC
//
// Unitigs at the start or end of an input sequence's path stay put, and no
// unitig is ever reduced to zero length. Returns the total bytes shifted.
func expandRepeats(g *UnitigGraph, seqs []*Sequence) int {
	fixedStarts, fixedEnds := getFixedUnitigStartsAndEnds(g, seqs)
	halfK := g.KSize / 2
	totalShifted := 0
	for _, u := range g.Unitigs {
		inputs := getExclusiveInputs(u)
		if len(inputs) >= 2 && !fixedStarts[u.Number] {
			shiftOkay := true
			for _, in := range inputs {
				if in.Strand && fixedEnds[in.Number()] {
					shiftOkay = false
				}
				if !in.Strand && fixedStarts[in.Number()] {
					shiftOkay = false
				}
			}
			if shiftOkay {
				totalShifted += shiftSequenceIn(inputs, u, halfK)
			}
		}
		outputs := getExclusiveOutputs(u)
		if len(outputs) >= 2 && !fixedEnds[u.Number] {
			shiftOkay := true
			for _, out := range outputs {
				if out.Strand && fixedStarts[out.Number()] {
					shiftOkay = false
				}
				if !out.Strand && fixedEnds[out.Number()] {
					shiftOkay = false
				}
			}
			if shiftOkay {
				totalShifted += shiftSequenceOut(u, outputs, halfK)
			}
		}
	}
	return totalShifted
}

// shiftSequenceIn removes the common sequence from the ends of the source
// unitigs and prepends it to the destination. Guards: never reduce a source
// to zero length, and never let a destination position reach the start of a
// path. Returns the amount shifted.
func shiftSequenceIn(sources []UnitigStrand, destination *Unitig, halfK int) int {
	commonSeq := getCommonEndSeq(sources)
	if len(commonSeq) == 0 {
		return 0
	}

	for _, source := range sources {
		if source.Unitig.Length() == len(commonSeq) {
			commonSeq = commonSeq[1:]
			break
		}
	}
	for len(commonSeq) > 0 && anyPositionAtOrBelow(destination.ForwardPositions, len(commonSeq)+halfK) {
		commonSeq = commonSeq[1:]
	}
	if len(commonSeq) == 0 {
		return 0
	}

	for _, source := range sources {
		if source.Strand {
			source.Unitig.RemoveSeqFromEnd(len(commonSeq))
		} else {
			source.Unitig.RemoveSeqFromStart(len(commonSeq))
		}
	}
	destination.AddSeqToStart(commonSeq)
	return len(commonSeq)
}

// shiftSequenceOut removes the common sequence from the starts of the source
// unitigs and appends it to the destination, with the mirrored guards.
func shiftSequenceOut(destination *Unitig, sources []UnitigStrand, halfK int) int {
	commonSeq := getCommonStartSeq(sources)
	if len(commonSeq) == 0 {
		return 0
	}

	for _, source := range sources {
		if source.Unitig.Length() == len(commonSeq) {
			commonSeq = commonSeq[:len(commonSeq)-1]
			break
		}
	}
	for len(commonSeq) > 0 && anyPositionAtOrBelow(destination.ReversePositions, len(commonSeq)+halfK) {
		commonSeq = commonSeq[:len(commonSeq)-1]
	}
	if len(commonSeq) == 0 {
		return 0
	}

	for _, source := range sources {
		if source.Strand {
			source.Unitig.RemoveSeqFromStart(len(commonSeq))
		} else {
			source.Unitig.RemoveSeqFromEnd(len(commonSeq))
		}
	}
	destination.AddSeqToEnd(commonSeq)
	return len(commonSeq)
}

func anyPositionAtOrBelow(positions []Position, limit int) bool {
	for _, p := range positions {
		if p.Pos() <= limit {
			return true
		}
	}
	return false
}

// getFixedUnitigStartsAndEnds returns the unitigs whose start and whose end
// cannot move, in terms of each unitig's forward strand: for every input
// sequence path, the first unitig's entry side and the last unitig's exit
// side are fixed.
func getFixedUnitigStartsAndEnds(g *UnitigGraph, seqs []*Sequence) (map[uint32]bool, map[uint32]bool) {
	fixedStarts := make(map[uint32]bool)
	fixedEnds := make(map[uint32]bool)
	for _, seq := range seqs {
		path := g.GetUnitigPathForSequence(seq)
		if len(path) == 0 {
			continue
		}
		first := path[0]
		if first.Strand {
			fixedStarts[first.Number] = true
		} else {
			fixedEnds[first.Number] = true
		}
		last := path[len(path)-1]
		if last.Strand {
			fixedEnds[last.Number] = true
		} else {
			fixedStarts[last.Number] = true
		}
	}
	return fixedStarts, fixedEnds
}

// getExclusiveInputs returns the unitigs which lead only to the given unitig.
// If any input also leads elsewhere, no shift is safe and the result is
// empty.
func getExclusiveInputs(u *Unitig) []UnitigStrand {
	var inputs []UnitigStrand
	for _, prev := range u.ForwardPrev {
		prevNext := prev.Unitig.ForwardNext
		if !prev.Strand {
			prevNext = prev.Unitig.ReverseNext
		}
		if len(prevNext) != 1 {
			return nil
		}
		if !prevNext[0].Strand || prevNext[0].Number() != u.Number {
			return nil
		}
		inputs = append(inputs, prev)
	}
	return inputs
}

// getExclusiveOutputs is the symmetric query: unitigs the given unitig leads
// to, each reachable only from it.
func getExclusiveOutputs(u *Unitig) []UnitigStrand {
	var outputs []UnitigStrand
	for _, next := range u.ForwardNext {
		nextPrev := next.Unitig.ForwardPrev
		if !next.Strand {
			nextPrev = next.Unitig.ReversePrev
		}
		if len(nextPrev) != 1 {
			return nil
		}
		if !nextPrev[0].Strand || nextPrev[0].Number() != u.Number {
			return nil
		}
		outputs = append(outputs, next)
	}
	return outputs
}

// getCommonStartSeq returns the longest prefix shared by all given unitigs,
// each read on its given strand.
func getCommonStartSeq(unitigs []UnitigStrand) []byte {
	if len(unitigs) == 0 {
		return nil
	}
	prefix := append([]byte(nil), unitigs[0].Unitig.Seq(unitigs[0].Strand)...)
	for _, us := range unitigs {
		seq := us.Unitig.Seq(us.Strand)
		for !bytes.HasPrefix(seq, prefix) {
			prefix = prefix[:len(prefix)-1]
			if len(prefix) == 0 {
				return nil
			}
		}
	}
	return prefix
}

// getCommonEndSeq returns the longest suffix shared by all given unitigs,
// each read on its given strand.
func getCommonEndSeq(unitigs []UnitigStrand) []byte {
	if len(unitigs) == 0 {
		return nil
	}
	first := unitigs[0].Unitig.Seq(unitigs[0].Strand)
	suffixLen := len(first)
	for _, us := range unitigs {
		seq := us.Unitig.Seq(us.Strand)
		if len(seq) < suffixLen {
			suffixLen = len(seq)
		}
		for suffixLen > 0 && !bytes.HasSuffix(seq, first[len(first)-suffixLen:]) {
			suffixLen--
		}
		if suffixLen == 0 {
			return nil
		}
	}
	return append([]byte(nil), first[len(first)-suffixLen:]...)
}
