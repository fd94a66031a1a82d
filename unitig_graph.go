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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PathStep is one oriented unitig in a sequence's path through the graph.
type PathStep struct {
	Number uint32
	Strand bool
}

func (s PathStep) String() string {
	if s.Strand {
		return fmt.Sprintf("%d+", s.Number)
	}
	return fmt.Sprintf("%d-", s.Number)
}

// UnitigGraph is a compacted De Bruijn graph: unitigs on both strands with
// k-1 overlaps trimmed off, so concatenating along any path spells the
// original bytes with no duplication.
type UnitigGraph struct {
	Unitigs     []*Unitig
	KSize       int
	UnitigIndex map[uint32]*Unitig
}

// NewUnitigGraphFromKmerGraph collapses all non-branching k-mer chains of the
// index into unitigs and wires up the double-stranded adjacency.
func NewUnitigGraphFromKmerGraph(kg *KmerGraph) *UnitigGraph {
	g := &UnitigGraph{
		KSize:       kg.KSize,
		UnitigIndex: make(map[uint32]*Unitig),
	}
	g.buildUnitigsFromKmerGraph(kg)
	for _, u := range g.Unitigs {
		u.SimplifySeqs()
	}
	g.createLinks()
	g.TrimOverlaps()
	g.RenumberUnitigs()
	g.CheckLinks()
	return g
}

func (g *UnitigGraph) buildUnitigsFromKmerGraph(kg *KmerGraph) {
	seen := make(map[string]bool, len(kg.Kmers))
	halfK := g.KSize / 2
	var unitigNumber uint32
	for _, forwardKmer := range kg.IterateKmers() {
		if seen[string(forwardKmer.Seq())] {
			continue
		}
		reverseKmer := kg.Reverse(forwardKmer)
		unitigNumber++
		unitig := NewUnitigFromKmers(unitigNumber, forwardKmer, reverseKmer)
		seen[string(forwardKmer.Seq())] = true
		seen[string(reverseKmer.Seq())] = true

		// Extend the unitig forward.
		forK, revK := forwardKmer, reverseKmer
		for {
			if revK.FirstPosition(halfK) {
				break
			}
			nextKmers := kg.NextKmers(forK.Seq())
			if len(nextKmers) != 1 {
				break
			}
			forK = nextKmers[0]
			if seen[string(forK.Seq())] {
				break
			}
			prevKmers := kg.PrevKmers(forK.Seq())
			if len(prevKmers) != 1 {
				break
			}
			revK = kg.Reverse(forK)
			if forK.FirstPosition(halfK) {
				break
			}
			unitig.AddKmerToEnd(forK, revK)
			seen[string(forK.Seq())] = true
			seen[string(revK.Seq())] = true
		}

		// Extend the unitig backward.
		forK = forwardKmer
		for {
			if forK.FirstPosition(halfK) {
				break
			}
			prevKmers := kg.PrevKmers(forK.Seq())
			if len(prevKmers) != 1 {
				break
			}
			forK = prevKmers[0]
			if seen[string(forK.Seq())] {
				break
			}
			nextKmers := kg.NextKmers(forK.Seq())
			if len(nextKmers) != 1 {
				break
			}
			revK = kg.Reverse(forK)
			if revK.FirstPosition(halfK) {
				break
			}
			unitig.AddKmerToStart(forK, revK)
			seen[string(forK.Seq())] = true
			seen[string(revK.Seq())] = true
		}

		g.Unitigs = append(g.Unitigs, unitig)
	}
}

// createLinks connects unitigs sharing a k-1 suffix/prefix. A same-strand
// connection is added together with its mirror on the opposite strands; a
// strand-switching connection is added in one direction only, and its mirror
// is added when the other unitig is processed.
func (g *UnitigGraph) createLinks() {
	pieceLen := g.KSize - 1

	// Index unitigs by their k-1 starting sequences.
	forwardStarts := make(map[string][]int)
	reverseStarts := make(map[string][]int)
	for i, u := range g.Unitigs {
		forwardStarts[string(u.ForwardSeq[:pieceLen])] = append(forwardStarts[string(u.ForwardSeq[:pieceLen])], i)
		reverseStarts[string(u.ReverseSeq[:pieceLen])] = append(reverseStarts[string(u.ReverseSeq[:pieceLen])], i)
	}

	for _, a := range g.Unitigs {
		endingForwardSeq := string(a.ForwardSeq[len(a.ForwardSeq)-pieceLen:])
		endingReverseSeq := string(a.ReverseSeq[len(a.ReverseSeq)-pieceLen:])

		for _, j := range forwardStarts[endingForwardSeq] {
			b := g.Unitigs[j]
			// a+ -> b+ and the mirror b- -> a-
			a.ForwardNext = append(a.ForwardNext, UnitigStrand{b, Forward})
			b.ForwardPrev = append(b.ForwardPrev, UnitigStrand{a, Forward})
			b.ReverseNext = append(b.ReverseNext, UnitigStrand{a, Reverse})
			a.ReversePrev = append(a.ReversePrev, UnitigStrand{b, Reverse})
		}
		for _, j := range reverseStarts[endingForwardSeq] {
			b := g.Unitigs[j]
			// a+ -> b- (the mirror b+ -> a- is found from b's side)
			a.ForwardNext = append(a.ForwardNext, UnitigStrand{b, Reverse})
			b.ReversePrev = append(b.ReversePrev, UnitigStrand{a, Forward})
		}
		for _, j := range forwardStarts[endingReverseSeq] {
			b := g.Unitigs[j]
			// a- -> b+ (the mirror b- -> a+ is found from b's side)
			a.ReverseNext = append(a.ReverseNext, UnitigStrand{b, Forward})
			b.ForwardPrev = append(b.ForwardPrev, UnitigStrand{a, Reverse})
		}
	}
}

func (g *UnitigGraph) TrimOverlaps() {
	for _, u := range g.Unitigs {
		u.TrimOverlaps(g.KSize)
	}
}

func (g *UnitigGraph) buildUnitigIndex() {
	g.UnitigIndex = make(map[uint32]*Unitig, len(g.Unitigs))
	for _, u := range g.Unitigs {
		g.UnitigIndex[u.Number] = u
	}
}

// RenumberUnitigs sorts by length (decreasing), sequence (lexicographic) and
// depth (decreasing), then assigns numbers 1..n, making serialized output
// reproducible.
func (g *UnitigGraph) RenumberUnitigs() {
	sort.SliceStable(g.Unitigs, func(i, j int) bool {
		a, b := g.Unitigs[i], g.Unitigs[j]
		if a.Length() != b.Length() {
			return a.Length() > b.Length()
		}
		if c := bytes.Compare(a.ForwardSeq, b.ForwardSeq); c != 0 {
			return c < 0
		}
		return a.Depth > b.Depth
	})
	for i, u := range g.Unitigs {
		u.Number = uint32(i + 1)
	}
	g.buildUnitigIndex()
}

// findStartingUnitig returns the unitig and strand where the given sequence
// begins. Exactly one must exist.
func (g *UnitigGraph) findStartingUnitig(seqID uint16) UnitigStrand {
	var starting []UnitigStrand
	for _, u := range g.Unitigs {
		for _, p := range u.ForwardPositions {
			if p.SeqID == seqID && p.Strand() && p.Pos() == 0 {
				starting = append(starting, UnitigStrand{u, Forward})
			}
		}
		for _, p := range u.ReversePositions {
			if p.SeqID == seqID && p.Strand() && p.Pos() == 0 {
				starting = append(starting, UnitigStrand{u, Reverse})
			}
		}
	}
	if len(starting) != 1 {
		panic(fmt.Sprintf("autocycler: expected exactly one starting unitig for sequence %d, found %d",
			seqID, len(starting)))
	}
	return starting[0]
}

// getNextUnitig returns the next unitig in a sequence's path: the neighbor
// holding a position that continues the walk at pos + current length.
func (g *UnitigGraph) getNextUnitig(seqID uint16, seqStrand bool, u *Unitig, strand bool, pos int) (UnitigStrand, int, bool) {
	nextPos := pos + u.Length()
	nextUnitigs := u.ForwardNext
	if !strand {
		nextUnitigs = u.ReverseNext
	}
	for _, next := range nextUnitigs {
		positions := next.Unitig.ForwardPositions
		if !next.Strand {
			positions = next.Unitig.ReversePositions
		}
		for _, p := range positions {
			if p.SeqID == seqID && p.Strand() == seqStrand && p.Pos() == nextPos {
				return next, nextPos, true
			}
		}
	}
	return UnitigStrand{}, 0, false
}

// GetUnitigPathForSequence walks the graph from the sequence's starting
// unitig, following matching positions, and returns the oriented unitigs
// visited.
func (g *UnitigGraph) GetUnitigPathForSequence(seq *Sequence) []PathStep {
	var path []PathStep
	u := g.findStartingUnitig(seq.ID)
	pos := 0
	for {
		path = append(path, PathStep{u.Number(), u.Strand})
		next, nextPos, ok := g.getNextUnitig(seq.ID, Forward, u.Unitig, u.Strand, pos)
		if !ok {
			break
		}
		u, pos = next, nextPos
	}
	return path
}

// GetUnitigPathForSequenceSigned is GetUnitigPathForSequence with strands
// encoded as signs.
func (g *UnitigGraph) GetUnitigPathForSequenceSigned(seq *Sequence) []int32 {
	path := g.GetUnitigPathForSequence(seq)
	signed := make([]int32, len(path))
	for i, step := range path {
		if step.Strand {
			signed[i] = int32(step.Number)
		} else {
			signed[i] = -int32(step.Number)
		}
	}
	return signed
}

// GetSequenceFromPath concatenates unitig sequences along the path.
func (g *UnitigGraph) GetSequenceFromPath(path []PathStep) []byte {
	var sequence []byte
	for _, step := range path {
		u, ok := g.UnitigIndex[step.Number]
		if !ok {
			panic(fmt.Sprintf("autocycler: unitig %d not found in unitig index", step.Number))
		}
		sequence = append(sequence, u.Seq(step.Strand)...)
	}
	return sequence
}

// GetSequenceFromPathSigned is GetSequenceFromPath for sign-encoded paths.
func (g *UnitigGraph) GetSequenceFromPathSigned(path []int32) []byte {
	steps := make([]PathStep, len(path))
	for i, x := range path {
		steps[i] = PathStep{Number: uint32(abs32(x)), Strand: x >= 0}
	}
	return g.GetSequenceFromPath(steps)
}

// ReversePath reverses the order and flips every strand.
func ReversePath(path []PathStep) []PathStep {
	reversed := make([]PathStep, len(path))
	for i, step := range path {
		reversed[len(path)-1-i] = PathStep{step.Number, !step.Strand}
	}
	return reversed
}

// ParseUnitigPath parses a GFA path string such as "2+,1-".
func ParseUnitigPath(pathStr string) ([]PathStep, error) {
	fields := strings.Split(pathStr, ",")
	path := make([]PathStep, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			return nil, errors.Errorf("invalid path element: %q", f)
		}
		var strand bool
		switch f[len(f)-1] {
		case '+':
			strand = Forward
		case '-':
			strand = Reverse
		default:
			return nil, errors.Errorf("invalid path strand: %q", f)
		}
		number, err := strconv.ParseUint(f[:len(f)-1], 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "parsing unitig number")
		}
		path = append(path, PathStep{uint32(number), strand})
	}
	return path, nil
}

// CreateSequenceAndPositions registers a sequence's forward and reverse paths
// as positions on the unitigs they traverse, returning the sequence shell.
func (g *UnitigGraph) CreateSequenceAndPositions(seqID uint16, length int,
	filename, header string, cluster uint16, forwardPath []PathStep) *Sequence {
	reversePath := ReversePath(forwardPath)
	g.addPositionsFromPath(forwardPath, Forward, seqID, length)
	g.addPositionsFromPath(reversePath, Reverse, seqID, length)
	return NewSequenceWithoutSeq(seqID, filename, header, length, cluster)
}

func (g *UnitigGraph) addPositionsFromPath(path []PathStep, pathStrand bool, seqID uint16, length int) {
	pos := 0
	for _, step := range path {
		u, ok := g.UnitigIndex[step.Number]
		if !ok {
			panic(fmt.Sprintf("autocycler: unitig %d not found in unitig index", step.Number))
		}
		if step.Strand {
			u.ForwardPositions = append(u.ForwardPositions, NewPosition(seqID, pathStrand, pos))
		} else {
			u.ReversePositions = append(u.ReversePositions, NewPosition(seqID, pathStrand, pos))
		}
		pos += u.Length()
	}
	if pos != length {
		panic("autocycler: position calculation mismatch")
	}
}

// TotalLength is the summed length of all unitigs.
func (g *UnitigGraph) TotalLength() int {
	total := 0
	for _, u := range g.Unitigs {
		total += u.Length()
	}
	return total
}

// LinkCount counts directed edges (both strand directions).
func (g *UnitigGraph) LinkCount() int {
	count := 0
	for _, u := range g.Unitigs {
		count += len(u.ForwardNext) + len(u.ReverseNext)
	}
	return count
}

func (g *UnitigGraph) MaxUnitigNumber() uint32 {
	var max uint32
	for _, u := range g.Unitigs {
		if u.Number > max {
			max = u.Number
		}
	}
	return max
}

// LinkExists looks for the link a -> b in a's next lists.
func (g *UnitigGraph) LinkExists(aNum uint32, aStrand bool, bNum uint32, bStrand bool) bool {
	a, ok := g.UnitigIndex[aNum]
	if !ok {
		return false
	}
	nextLinks := a.ForwardNext
	if !aStrand {
		nextLinks = a.ReverseNext
	}
	for _, next := range nextLinks {
		if next.Number() == bNum && next.Strand == bStrand {
			return true
		}
	}
	return false
}

// LinkExistsPrev looks for the link a -> b in b's prev lists.
func (g *UnitigGraph) LinkExistsPrev(aNum uint32, aStrand bool, bNum uint32, bStrand bool) bool {
	b, ok := g.UnitigIndex[bNum]
	if !ok {
		return false
	}
	prevLinks := b.ForwardPrev
	if !bStrand {
		prevLinks = b.ReversePrev
	}
	for _, prev := range prevLinks {
		if prev.Number() == aNum && prev.Strand == aStrand {
			return true
		}
	}
	return false
}

// CheckLinks panics unless every link has its strand mirror, every next link
// has a matching prev link, and every linked unitig is in the index.
func (g *UnitigGraph) CheckLinks() {
	check := func(aNum uint32, aStrand bool, b UnitigStrand) {
		if !g.LinkExists(aNum, aStrand, b.Number(), b.Strand) {
			panic("autocycler: missing next link")
		}
		if !g.LinkExistsPrev(aNum, aStrand, b.Number(), b.Strand) {
			panic("autocycler: missing prev link")
		}
		if !g.LinkExists(b.Number(), !b.Strand, aNum, !aStrand) {
			panic("autocycler: missing next link")
		}
		if !g.LinkExistsPrev(b.Number(), !b.Strand, aNum, !aStrand) {
			panic("autocycler: missing prev link")
		}
		if _, ok := g.UnitigIndex[b.Number()]; !ok {
			panic("autocycler: unitig missing from index")
		}
	}
	for _, a := range g.Unitigs {
		for _, b := range a.ForwardNext {
			check(a.Number, Forward, b)
		}
		for _, b := range a.ReverseNext {
			check(a.Number, Reverse, b)
		}
		for _, b := range a.ForwardPrev {
			check(b.Number(), b.Strand, UnitigStrand{a, Forward})
		}
		for _, b := range a.ReversePrev {
			check(b.Number(), b.Strand, UnitigStrand{a, Reverse})
		}
	}
}

// CreateLink inserts the directed link a -> b (signed numbers, negative for
// reverse strand) and its mirror -b -> -a, unless the link is its own mirror.
func (g *UnitigGraph) CreateLink(startNum, endNum int32) {
	g.createLinkOneWay(startNum, endNum)
	if startNum != -endNum {
		g.createLinkOneWay(-endNum, -startNum)
	}
}

func (g *UnitigGraph) createLinkOneWay(startNum, endNum int32) {
	start := g.mustGetUnitig(uint32(abs32(startNum)))
	end := g.mustGetUnitig(uint32(abs32(endNum)))
	startStrand, endStrand := startNum > 0, endNum > 0

	if startStrand {
		start.ForwardNext = append(start.ForwardNext, UnitigStrand{end, endStrand})
	} else {
		start.ReverseNext = append(start.ReverseNext, UnitigStrand{end, endStrand})
	}
	if endStrand {
		end.ForwardPrev = append(end.ForwardPrev, UnitigStrand{start, startStrand})
	} else {
		end.ReversePrev = append(end.ReversePrev, UnitigStrand{start, startStrand})
	}
}

// DeleteLink removes the directed link a -> b and its mirror -b -> -a.
// Missing links are a no-op.
func (g *UnitigGraph) DeleteLink(startNum, endNum int32) {
	g.deleteLinkOneWay(startNum, endNum)
	g.deleteLinkOneWay(-endNum, -startNum)
}

func (g *UnitigGraph) deleteLinkOneWay(startNum, endNum int32) {
	start := g.mustGetUnitig(uint32(abs32(startNum)))
	end := g.mustGetUnitig(uint32(abs32(endNum)))
	startStrand, endStrand := startNum > 0, endNum > 0

	removeMatches := func(links []UnitigStrand, number uint32, strand bool) []UnitigStrand {
		kept := links[:0]
		for _, l := range links {
			if l.Number() == number && l.Strand == strand {
				continue
			}
			kept = append(kept, l)
		}
		return kept
	}

	if startStrand {
		start.ForwardNext = removeMatches(start.ForwardNext, end.Number, endStrand)
	} else {
		start.ReverseNext = removeMatches(start.ReverseNext, end.Number, endStrand)
	}
	if endStrand {
		end.ForwardPrev = removeMatches(end.ForwardPrev, start.Number, startStrand)
	} else {
		end.ReversePrev = removeMatches(end.ReversePrev, start.Number, startStrand)
	}
}

// DeleteOutgoingLinks removes every link leaving the given oriented unitig.
func (g *UnitigGraph) DeleteOutgoingLinks(signedNum int32) {
	u := g.mustGetUnitig(uint32(abs32(signedNum)))
	nextUnitigs := u.ForwardNext
	if signedNum < 0 {
		nextUnitigs = u.ReverseNext
	}
	nextNumbers := make([]int32, 0, len(nextUnitigs))
	for _, next := range nextUnitigs {
		nextNumbers = append(nextNumbers, next.SignedNumber())
	}
	for _, nextNum := range nextNumbers {
		g.DeleteLink(signedNum, nextNum)
	}
}

// DeleteIncomingLinks removes every link entering the given oriented unitig.
func (g *UnitigGraph) DeleteIncomingLinks(signedNum int32) {
	u := g.mustGetUnitig(uint32(abs32(signedNum)))
	prevUnitigs := u.ForwardPrev
	if signedNum < 0 {
		prevUnitigs = u.ReversePrev
	}
	prevNumbers := make([]int32, 0, len(prevUnitigs))
	for _, prev := range prevUnitigs {
		prevNumbers = append(prevNumbers, prev.SignedNumber())
	}
	for _, prevNum := range prevNumbers {
		g.DeleteLink(prevNum, signedNum)
	}
}

func (g *UnitigGraph) mustGetUnitig(number uint32) *Unitig {
	u, ok := g.UnitigIndex[number]
	if !ok {
		panic(fmt.Sprintf("autocycler: unitig %d not found in unitig index", number))
	}
	return u
}

// DeleteDanglingLinks drops links to unitigs no longer in the graph. Run this
// after any code which deletes unitigs.
func (g *UnitigGraph) DeleteDanglingLinks() {
	present := make(map[uint32]bool, len(g.Unitigs))
	for _, u := range g.Unitigs {
		present[u.Number] = true
	}
	keep := func(links []UnitigStrand) []UnitigStrand {
		kept := links[:0]
		for _, l := range links {
			if present[l.Number()] {
				kept = append(kept, l)
			}
		}
		return kept
	}
	for _, u := range g.Unitigs {
		u.ForwardNext = keep(u.ForwardNext)
		u.ForwardPrev = keep(u.ForwardPrev)
		u.ReverseNext = keep(u.ReverseNext)
		u.ReversePrev = keep(u.ReversePrev)
	}
}

// RemoveSequenceFromGraph strips all positions with the given sequence ID.
// Depths are unchanged; run RecalculateDepths afterwards.
func (g *UnitigGraph) RemoveSequenceFromGraph(seqID uint16) {
	for _, u := range g.Unitigs {
		u.RemoveSequence(seqID)
	}
}

// RecalculateDepths sets each unitig's depth from its positions. Useful after
// adding or removing paths.
func (g *UnitigGraph) RecalculateDepths() {
	for _, u := range g.Unitigs {
		u.RecalculateDepth()
	}
}

// RemoveZeroDepthUnitigs deletes unitigs with no remaining coverage.
func (g *UnitigGraph) RemoveZeroDepthUnitigs() {
	kept := g.Unitigs[:0]
	for _, u := range g.Unitigs {
		if u.Depth > 0 {
			kept = append(kept, u)
		}
	}
	g.Unitigs = kept
	g.DeleteDanglingLinks()
	g.buildUnitigIndex()
}

func (g *UnitigGraph) ClearPositions() {
	for _, u := range g.Unitigs {
		u.ClearPositions()
	}
}

// ConnectedComponents unions the graph treating all four adjacency lists as
// undirected. Components are sorted internally and by first element.
func (g *UnitigGraph) ConnectedComponents() [][]uint32 {
	visited := make(map[uint32]bool)
	var components [][]uint32
	for _, u := range g.Unitigs {
		if visited[u.Number] {
			continue
		}
		var component []uint32
		stack := []uint32{u.Number}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[current] {
				continue
			}
			visited[current] = true
			component = append(component, current)
			for neighbor := range g.connectedUnitigs(current) {
				if !visited[neighbor] {
					stack = append(stack, neighbor)
				}
			}
		}
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

func (g *UnitigGraph) connectedUnitigs(number uint32) map[uint32]bool {
	connections := make(map[uint32]bool)
	u, ok := g.UnitigIndex[number]
	if !ok {
		return connections
	}
	for _, c := range u.ForwardNext {
		connections[c.Number()] = true
	}
	for _, c := range u.ForwardPrev {
		connections[c.Number()] = true
	}
	for _, c := range u.ReverseNext {
		connections[c.Number()] = true
	}
	for _, c := range u.ReversePrev {
		connections[c.Number()] = true
	}
	return connections
}

// ComponentIsCircularLoop reports whether a connected component forms one
// simple circular loop: every unitig has exactly one entry per adjacency list
// and walking forward returns to the start after visiting each unitig once.
func (g *UnitigGraph) ComponentIsCircularLoop(component []uint32) bool {
	if len(component) == 0 {
		return false
	}
	first := component[0]
	num := first
	strand := Forward
	visited := make(map[uint32]bool)
	for num != first || len(visited) == 0 {
		if visited[num] {
			return false
		}
		visited[num] = true
		u, ok := g.UnitigIndex[num]
		if !ok {
			return false
		}
		if len(u.ForwardNext) != 1 || len(u.ForwardPrev) != 1 ||
			len(u.ReverseNext) != 1 || len(u.ReversePrev) != 1 {
			return false
		}
		next := u.ForwardNext[0]
		if !strand {
			next = u.ReverseNext[0]
		}
		num = next.Number()
		strand = next.Strand
	}
	return len(visited) == len(component)
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
