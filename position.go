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

import "fmt"

const posMask = 1<<31 - 1

// Position is a compact (sequence ID, strand, offset) triple marking where a
// piece of an input contig occurs. The strand bit and the 31-bit offset share
// one word.
type Position struct {
	SeqID        uint16
	strandAndPos uint32
}

func NewPosition(seqID uint16, strand bool, pos int) Position {
	v := uint32(pos) & posMask
	if strand {
		v |= 1 << 31
	}
	return Position{SeqID: seqID, strandAndPos: v}
}

// Strand reports whether the position lies on the sequence's forward strand.
func (p Position) Strand() bool {
	return p.strandAndPos>>31 == 1
}

// Pos is the offset along the path strand.
func (p Position) Pos() int {
	return int(p.strandAndPos & posMask)
}

// shift moves the offset by delta, keeping the strand bit.
func (p Position) shift(delta int) Position {
	return NewPosition(p.SeqID, p.Strand(), p.Pos()+delta)
}

func (p Position) String() string {
	strand := "-"
	if p.Strand() {
		strand = "+"
	}
	return fmt.Sprintf("%d%s%d", p.SeqID, strand, p.Pos())
}
