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
	"path/filepath"
	"strings"
)

// ReconstructOriginalSequence returns the exact original bytes of one input
// contig by walking its path through the graph.
func (g *UnitigGraph) ReconstructOriginalSequence(seq *Sequence) []byte {
	path := g.GetUnitigPathForSequence(seq)
	sequence := g.GetSequenceFromPath(path)
	if len(sequence) != seq.Length {
		panic("autocycler: reconstructed sequence does not have expected length")
	}
	return sequence
}

// SaveOriginalSeqs reconstructs every input contig and writes the original
// FASTA files into outDir, grouped by their recorded filename. Files whose
// name ends in .gz are written gzipped.
func SaveOriginalSeqs(outDir string, g *UnitigGraph, seqs []*Sequence) error {
	byFilename := make(map[string][]*Sequence)
	var filenames []string
	for _, seq := range seqs {
		if _, ok := byFilename[seq.Filename]; !ok {
			filenames = append(filenames, seq.Filename)
		}
		byFilename[seq.Filename] = append(byFilename[seq.Filename], seq)
	}
	for _, filename := range filenames {
		outFile := filepath.Join(outDir, filename)
		outfh, gw, w, err := outStream(outFile, strings.HasSuffix(filename, ".gz"))
		if err != nil {
			return err
		}
		for _, seq := range byFilename[filename] {
			fmt.Fprintf(outfh, ">%s\n%s\n", seq.Header, g.ReconstructOriginalSequence(seq))
		}
		outfh.Flush()
		if gw != nil {
			gw.Close()
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
