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

// Strand constants. Forward is the orientation a sequence was given in,
// reverse is its reverse complement.
const (
	Forward = true
	Reverse = false
)

var complementTable [256]byte

func init() {
	for i := range complementTable {
		complementTable[i] = 'N'
	}
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'U', 'A'},
		{'a', 't'}, {'c', 'g'}, {'g', 'c'}, {'t', 'a'}, {'u', 'a'},
		{'N', 'N'}, {'n', 'n'}, {'.', '.'}, {'-', '-'},
	}
	for _, p := range pairs {
		complementTable[p[0]] = p[1]
	}
}

// ReverseComplement returns the reverse complement of a DNA sequence as a new
// byte slice. Upper- and lowercase ACGTUN are complemented with their case
// kept; '.' and '-' map to themselves; every other byte complements to N.
func ReverseComplement(seq []byte) []byte {
	rc := make([]byte, len(seq))
	for i, b := range seq {
		rc[len(seq)-1-i] = complementTable[b]
	}
	return rc
}
