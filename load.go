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
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
)

// MaxSequences is the largest number of input contigs: the 16-bit ID space
// with room for a sign.
const MaxSequences = 32767

var assemblyExtensions = []string{
	".fasta", ".fasta.gz", ".fa", ".fa.gz", ".fna", ".fna.gz",
}

// FindAllAssemblies returns the FASTA files under the given directory,
// sorted.
func FindAllAssemblies(dir string) ([]string, error) {
	var assemblies []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, ext := range assemblyExtensions {
			if strings.HasSuffix(name, ext) {
				assemblies = append(assemblies, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, dir)
	}
	sort.Strings(assemblies)
	return assemblies, nil
}

// LoadSequences reads every contig of every assembly in the directory, gives
// each a unique ID, pads the ends with half-k sentinels, and repairs the
// sentinel ends. Contigs shorter than k are skipped. Returns the sequences
// and the assembly count.
func LoadSequences(assembliesDir string, kSize, threads int) ([]*Sequence, int, error) {
	assemblies, err := FindAllAssemblies(assembliesDir)
	if err != nil {
		return nil, 0, err
	}
	halfK := kSize / 2
	seqID := 0
	var sequences []*Sequence
	for _, assembly := range assemblies {
		reader, err := fastx.NewDefaultReader(assembly)
		if err != nil {
			return nil, 0, errors.Wrap(err, assembly)
		}
		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, 0, errors.Wrap(err, assembly)
			}
			if len(record.Seq.Seq) < kSize {
				continue
			}
			seqID++
			if seqID > MaxSequences {
				return nil, 0, errors.Errorf("no more than %d input sequences are allowed", MaxSequences)
			}
			header := strings.Join(strings.Fields(string(record.Name)), " ")
			sequences = append(sequences, NewPaddedSequence(uint16(seqID), record.Seq.Seq,
				filepath.Base(assembly), header, len(record.Seq.Seq), halfK))
		}
	}
	SequenceEndRepair(sequences, kSize, threads)
	return sequences, len(assemblies), nil
}
