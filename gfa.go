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

// SaveGFA serializes the graph as GFA 1.0: header with the k-mer size, one
// S-line per unitig, one L-line per directed edge (always 0M, overlaps are
// already trimmed), and one P-line per input sequence.
func (g *UnitigGraph) SaveGFA(gfaFilename string, sequences []*Sequence) error {
	outfh, gw, w, err := outStream(gfaFilename, strings.HasSuffix(gfaFilename, ".gz"))
	if err != nil {
		return err
	}
	defer func() {
		outfh.Flush()
		if gw != nil {
			gw.Close()
		}
		w.Close()
	}()

	fmt.Fprintf(outfh, "H\tVN:Z:1.0\tKM:i:%d\n", g.KSize)
	for _, u := range g.Unitigs {
		fmt.Fprintln(outfh, u.GFASegmentLine())
	}
	for _, a := range g.Unitigs {
		for _, b := range a.ForwardNext {
			fmt.Fprintf(outfh, "L\t%d\t+\t%d\t%s\t0M\n", a.Number, b.Number(), strandStr(b.Strand))
		}
		for _, b := range a.ReverseNext {
			fmt.Fprintf(outfh, "L\t%d\t-\t%d\t%s\t0M\n", a.Number, b.Number(), strandStr(b.Strand))
		}
	}
	for _, seq := range sequences {
		fmt.Fprintln(outfh, g.GFAPathLine(seq))
	}
	return nil
}

func strandStr(strand bool) string {
	if strand {
		return "+"
	}
	return "-"
}

// GFAPathLine renders a sequence's path through the graph as a GFA P-line.
// The cluster tag is omitted when the sequence is unassigned.
func (g *UnitigGraph) GFAPathLine(seq *Sequence) string {
	path := g.GetUnitigPathForSequence(seq)
	steps := make([]string, len(path))
	for i, step := range path {
		steps[i] = step.String()
	}
	clusterTag := ""
	if seq.Cluster > 0 {
		clusterTag = fmt.Sprintf("\tCL:i:%d", seq.Cluster)
	}
	return fmt.Sprintf("P\t%d\t%s\t*\tLN:i:%d\tFN:Z:%s\tHD:Z:%s%s",
		seq.ID, strings.Join(steps, ","), seq.Length, seq.Filename, seq.Header, clusterTag)
}

// UnitigGraphFromGFAFile loads a (possibly gzipped) GFA file.
func UnitigGraphFromGFAFile(gfaFilename string) (*UnitigGraph, []*Sequence, error) {
	lines, err := loadFileLines(gfaFilename)
	if err != nil {
		return nil, nil, err
	}
	g, seqs, err := UnitigGraphFromGFALines(lines)
	if err != nil {
		return nil, nil, errors.Wrap(err, gfaFilename)
	}
	return g, seqs, nil
}

// UnitigGraphFromGFALines is the mirror of SaveGFA. It rejects link lines
// with a non-0M overlap, headers without the k-mer tag, path lines missing a
// required tag, and references to unknown unitigs.
func UnitigGraphFromGFALines(gfaLines []string) (*UnitigGraph, []*Sequence, error) {
	g := &UnitigGraph{UnitigIndex: make(map[uint32]*Unitig)}
	var linkLines, pathLines []string
	sawHeader := false
	for _, line := range gfaLines {
		parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
		switch parts[0] {
		case "H":
			if err := g.readGFAHeaderLine(parts); err != nil {
				return nil, nil, err
			}
			sawHeader = true
		case "S":
			u, err := UnitigFromSegmentLine(line)
			if err != nil {
				return nil, nil, err
			}
			g.Unitigs = append(g.Unitigs, u)
		case "L":
			linkLines = append(linkLines, line)
		case "P":
			pathLines = append(pathLines, line)
		}
	}
	if !sawHeader {
		return nil, nil, errors.New("could not find a valid k-mer tag (e.g. KM:i:51) in the GFA header line. " +
			"Are you sure this is an Autocycler-generated GFA file?")
	}
	g.buildUnitigIndex()
	if err := g.buildLinksFromGFA(linkLines); err != nil {
		return nil, nil, err
	}
	sequences, err := g.buildPathsFromGFA(pathLines)
	if err != nil {
		return nil, nil, err
	}
	g.CheckLinks()
	return g, sequences, nil
}

func (g *UnitigGraph) readGFAHeaderLine(parts []string) error {
	for _, p := range parts {
		if strings.HasPrefix(p, "KM:i:") {
			k, err := strconv.Atoi(p[5:])
			if err == nil {
				g.KSize = k
				return nil
			}
		}
	}
	return errors.New("could not find a valid k-mer tag (e.g. KM:i:51) in the GFA header line. " +
		"Are you sure this is an Autocycler-generated GFA file?")
}

func (g *UnitigGraph) buildLinksFromGFA(linkLines []string) error {
	for _, line := range linkLines {
		parts := strings.Split(line, "\t")
		if len(parts) < 6 || parts[5] != "0M" {
			return errors.New("non-zero overlap found on the GFA link line. " +
				"Are you sure this is an Autocycler-generated GFA file?")
		}
		seg1, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return errors.Wrap(err, "parsing link segment 1")
		}
		seg2, err := strconv.ParseUint(parts[3], 10, 32)
		if err != nil {
			return errors.Wrap(err, "parsing link segment 2")
		}
		strand1, strand2 := parts[2] == "+", parts[4] == "+"
		u1, ok := g.UnitigIndex[uint32(seg1)]
		if !ok {
			return errors.Errorf("link refers to nonexistent unitig: %d", seg1)
		}
		u2, ok := g.UnitigIndex[uint32(seg2)]
		if !ok {
			return errors.Errorf("link refers to nonexistent unitig: %d", seg2)
		}
		if strand1 {
			u1.ForwardNext = append(u1.ForwardNext, UnitigStrand{u2, strand2})
		} else {
			u1.ReverseNext = append(u1.ReverseNext, UnitigStrand{u2, strand2})
		}
		if strand2 {
			u2.ForwardPrev = append(u2.ForwardPrev, UnitigStrand{u1, strand1})
		} else {
			u2.ReversePrev = append(u2.ReversePrev, UnitigStrand{u1, strand1})
		}
	}
	return nil
}

func (g *UnitigGraph) buildPathsFromGFA(pathLines []string) ([]*Sequence, error) {
	var sequences []*Sequence
	for _, line := range pathLines {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			return nil, errors.New("GFA path line has too few fields")
		}
		seqID, err := strconv.ParseUint(parts[1], 10, 16)
		if err != nil {
			return nil, errors.Wrap(err, "parsing sequence ID")
		}
		length := -1
		var filename, header string
		var haveFilename, haveHeader bool
		var cluster uint16
		for _, p := range parts[3:] {
			switch {
			case strings.HasPrefix(p, "LN:i:"):
				length, err = strconv.Atoi(p[5:])
				if err != nil {
					return nil, errors.Wrap(err, "parsing path length")
				}
			case strings.HasPrefix(p, "FN:Z:"):
				filename, haveFilename = p[5:], true
			case strings.HasPrefix(p, "HD:Z:"):
				header, haveHeader = p[5:], true
			case strings.HasPrefix(p, "CL:i:"):
				c, err := strconv.ParseUint(p[5:], 10, 16)
				if err != nil {
					return nil, errors.Wrap(err, "parsing path cluster")
				}
				cluster = uint16(c)
			}
		}
		if length < 0 || !haveFilename || !haveHeader {
			return nil, errors.New("missing required tag in GFA path line")
		}
		path, err := ParseUnitigPath(parts[2])
		if err != nil {
			return nil, err
		}
		sequences = append(sequences,
			g.CreateSequenceAndPositions(uint16(seqID), length, filename, header, cluster, path))
	}
	return sequences, nil
}
