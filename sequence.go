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
	"strings"
)

// Sequence holds one input contig with views of both strands. When built for
// graph construction, ForwardSeq carries half-k sentinel bytes ('.') at each
// end so that k-mers centered on the first and last real bases exist; end
// repair later overwrites the sentinels where a real substitute is found.
type Sequence struct {
	ID       uint16
	Filename string
	Header   string
	Length   int
	Cluster  uint16

	ForwardSeq []byte
	ReverseSeq []byte
}

// NewSequence builds a Sequence without sentinel padding.
func NewSequence(id uint16, seq []byte, filename, header string, length int) *Sequence {
	forward := bytes.ToUpper(seq)
	return &Sequence{
		ID:         id,
		Filename:   filename,
		Header:     header,
		Length:     length,
		ForwardSeq: forward,
		ReverseSeq: ReverseComplement(forward),
	}
}

// NewPaddedSequence builds a Sequence with halfK sentinel bytes on each end.
func NewPaddedSequence(id uint16, seq []byte, filename, header string, length, halfK int) *Sequence {
	forward := make([]byte, 0, length+2*halfK)
	for i := 0; i < halfK; i++ {
		forward = append(forward, '.')
	}
	forward = append(forward, bytes.ToUpper(seq)...)
	for i := 0; i < halfK; i++ {
		forward = append(forward, '.')
	}
	return &Sequence{
		ID:         id,
		Filename:   filename,
		Header:     header,
		Length:     length,
		ForwardSeq: forward,
		ReverseSeq: ReverseComplement(forward),
	}
}

// NewSequenceWithoutSeq builds a Sequence shell carrying only metadata, as
// recovered from a GFA path line.
func NewSequenceWithoutSeq(id uint16, filename, header string, length int, cluster uint16) *Sequence {
	return &Sequence{
		ID:       id,
		Filename: filename,
		Header:   header,
		Length:   length,
		Cluster:  cluster,
	}
}

// ContigName is the first whitespace-delimited field of the header.
func (s *Sequence) ContigName() string {
	fields := strings.Fields(s.Header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
