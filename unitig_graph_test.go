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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGFA1 = []string{
	"H\tVN:Z:1.0\tKM:i:9",
	"S\t1\tTTCGCTGCGCTCGCTTCGCTTT\tDP:f:1",
	"S\t2\tTGCCGTCGTCGCTGTGCA\tDP:f:1",
	"S\t3\tTGCCTGAATCGCCTA\tDP:f:1",
	"S\t4\tGCTCGGCTCG\tDP:f:1",
	"S\t5\tCGAACCAT\tDP:f:1",
	"S\t6\tTACTTGT\tDP:f:1",
	"S\t7\tGCCTT\tDP:f:1",
	"S\t8\tATCT\tDP:f:1",
	"S\t9\tGC\tDP:f:1",
	"S\t10\tT\tDP:f:1",
	"L\t1\t+\t4\t+\t0M",
	"L\t4\t-\t1\t-\t0M",
	"L\t1\t+\t5\t-\t0M",
	"L\t5\t+\t1\t-\t0M",
	"L\t2\t+\t1\t+\t0M",
	"L\t1\t-\t2\t-\t0M",
	"L\t3\t-\t1\t+\t0M",
	"L\t1\t-\t3\t+\t0M",
	"L\t4\t+\t7\t-\t0M",
	"L\t7\t+\t4\t-\t0M",
	"L\t4\t+\t8\t+\t0M",
	"L\t8\t-\t4\t-\t0M",
	"L\t6\t-\t5\t-\t0M",
	"L\t5\t+\t6\t+\t0M",
	"L\t6\t+\t6\t-\t0M",
	"L\t7\t-\t9\t+\t0M",
	"L\t9\t-\t7\t+\t0M",
	"L\t8\t+\t10\t-\t0M",
	"L\t10\t+\t8\t-\t0M",
	"L\t9\t+\t7\t+\t0M",
	"L\t7\t-\t9\t-\t0M",
}

var testGFA2 = []string{
	"H\tVN:Z:1.0\tKM:i:9",
	"S\t1\tACCGCTGCGCTCGCTTCGCTCT\tDP:f:1",
	"S\t2\tATGAT\tDP:f:1",
	"S\t3\tGCGC\tDP:f:1",
	"L\t1\t+\t2\t+\t0M",
	"L\t2\t-\t1\t-\t0M",
	"L\t1\t+\t2\t-\t0M",
	"L\t2\t+\t1\t-\t0M",
	"L\t1\t-\t3\t+\t0M",
	"L\t3\t-\t1\t+\t0M",
	"L\t1\t-\t3\t-\t0M",
	"L\t3\t+\t1\t+\t0M",
}

var testGFA3 = []string{
	"H\tVN:Z:1.0\tKM:i:9",
	"S\t1\tTTCGCTGCGCTCGCTTCGCTTT\tDP:f:1",
	"S\t2\tTGCCGTCGTCGCTGTGCA\tDP:f:1",
	"S\t3\tTGCCTGAATCGCCTA\tDP:f:1",
	"S\t4\tGCTCGGCTCG\tDP:f:1",
	"S\t5\tCGAACCAT\tDP:f:1",
	"S\t6\tTACTTGT\tDP:f:1",
	"S\t7\tGCCTT\tDP:f:1",
	"L\t1\t+\t2\t-\t0M",
	"L\t2\t+\t1\t-\t0M",
	"L\t2\t-\t3\t+\t0M",
	"L\t3\t-\t2\t+\t0M",
	"L\t3\t+\t4\t+\t0M",
	"L\t4\t-\t3\t-\t0M",
	"L\t4\t+\t5\t-\t0M",
	"L\t5\t+\t4\t-\t0M",
	"L\t5\t-\t5\t+\t0M",
	"L\t3\t+\t6\t+\t0M",
	"L\t6\t-\t3\t-\t0M",
	"L\t6\t+\t7\t-\t0M",
	"L\t7\t+\t6\t-\t0M",
	"L\t7\t-\t6\t+\t0M",
	"L\t6\t-\t7\t+\t0M",
}

var testGFA4 = []string{
	"H\tVN:Z:1.0\tKM:i:3",
	"S\t1\tACGACTACGAGCACG\tDP:f:1",
	"S\t2\tTACGACGACGACT\tDP:f:1",
	"S\t3\tACTGACT\tDP:f:1",
	"S\t4\tGCTCG\tDP:f:1",
	"S\t5\tCAC\tDP:f:1",
	"L\t1\t+\t2\t-\t0M",
	"L\t2\t+\t1\t-\t0M",
	"L\t2\t-\t3\t+\t0M",
	"L\t3\t-\t2\t+\t0M",
	"L\t3\t+\t1\t+\t0M",
	"L\t1\t-\t3\t-\t0M",
	"L\t4\t+\t5\t-\t0M",
	"L\t5\t+\t4\t-\t0M",
	"L\t5\t-\t4\t+\t0M",
	"L\t4\t-\t5\t+\t0M",
}

var testGFA5 = []string{
	"H\tVN:Z:1.0\tKM:i:3",
	"S\t1\tAGCATCGACATCGACTACG\tDP:f:1",
	"S\t2\tAGCATCAGCATCAGC\tDP:f:1",
	"S\t3\tGTCGCATTT\tDP:f:1",
	"S\t4\tTCGCGAA\tDP:f:1",
	"S\t5\tTTAAAC\tDP:f:1",
	"S\t6\tCACA\tDP:f:1",
	"L\t1\t+\t5\t+\t0M",
	"L\t5\t-\t1\t-\t0M",
	"L\t1\t+\t5\t-\t0M",
	"L\t5\t+\t1\t-\t0M",
	"L\t3\t-\t6\t-\t0M",
	"L\t6\t+\t3\t+\t0M",
	"L\t4\t+\t4\t+\t0M",
	"L\t4\t-\t4\t-\t0M",
}

func graphFromLines(t *testing.T, lines []string) *UnitigGraph {
	t.Helper()
	graph, _, err := UnitigGraphFromGFALines(lines)
	require.NoError(t, err)
	return graph
}

func TestGraphStats(t *testing.T) {
	graph := graphFromLines(t, testGFA1)
	graph.CheckLinks()
	assert.Equal(t, 9, graph.KSize)
	assert.Equal(t, 10, len(graph.Unitigs))
	assert.Equal(t, 92, graph.TotalLength())
	assert.Equal(t, 21, graph.LinkCount())

	graph = graphFromLines(t, testGFA2)
	graph.CheckLinks()
	assert.Equal(t, 9, graph.KSize)
	assert.Equal(t, 3, len(graph.Unitigs))
	assert.Equal(t, 31, graph.TotalLength())
	assert.Equal(t, 8, graph.LinkCount())

	graph = graphFromLines(t, testGFA3)
	graph.CheckLinks()
	assert.Equal(t, 9, graph.KSize)
	assert.Equal(t, 7, len(graph.Unitigs))
	assert.Equal(t, 85, graph.TotalLength())
	assert.Equal(t, 15, graph.LinkCount())
}

func TestParseUnitigPath(t *testing.T) {
	path, err := ParseUnitigPath("2+,1-")
	require.NoError(t, err)
	assert.Equal(t, []PathStep{{2, Forward}, {1, Reverse}}, path)

	path, err = ParseUnitigPath("3+,8-,4-")
	require.NoError(t, err)
	assert.Equal(t, []PathStep{{3, Forward}, {8, Reverse}, {4, Reverse}}, path)

	_, err = ParseUnitigPath("3*")
	assert.Error(t, err)
}

func TestReversePath(t *testing.T) {
	assert.Equal(t, []PathStep{{2, Forward}, {1, Reverse}},
		ReversePath([]PathStep{{1, Forward}, {2, Reverse}}))
	assert.Equal(t, []PathStep{{3, Forward}, {8, Reverse}, {4, Reverse}},
		ReversePath([]PathStep{{4, Forward}, {8, Forward}, {3, Reverse}}))

	p := []PathStep{{4, Forward}, {8, Forward}, {3, Reverse}}
	assert.Equal(t, p, ReversePath(ReversePath(p)))
}

func TestLinkExists1(t *testing.T) {
	graph := graphFromLines(t, testGFA1)

	assert.True(t, graph.LinkExists(1, Forward, 4, Forward))
	assert.True(t, graph.LinkExists(4, Reverse, 1, Reverse))
	assert.True(t, graph.LinkExists(1, Forward, 5, Reverse))
	assert.True(t, graph.LinkExists(5, Forward, 1, Reverse))
	assert.True(t, graph.LinkExists(2, Forward, 1, Forward))
	assert.True(t, graph.LinkExists(1, Reverse, 2, Reverse))
	assert.True(t, graph.LinkExists(3, Reverse, 1, Forward))
	assert.True(t, graph.LinkExists(1, Reverse, 3, Forward))
	assert.True(t, graph.LinkExists(4, Forward, 7, Reverse))
	assert.True(t, graph.LinkExists(7, Forward, 4, Reverse))
	assert.True(t, graph.LinkExists(4, Forward, 8, Forward))
	assert.True(t, graph.LinkExists(8, Reverse, 4, Reverse))
	assert.True(t, graph.LinkExists(6, Reverse, 5, Reverse))
	assert.True(t, graph.LinkExists(5, Forward, 6, Forward))
	assert.True(t, graph.LinkExists(6, Forward, 6, Reverse))
	assert.True(t, graph.LinkExists(7, Reverse, 9, Forward))
	assert.True(t, graph.LinkExists(9, Reverse, 7, Forward))
	assert.True(t, graph.LinkExists(8, Forward, 10, Reverse))
	assert.True(t, graph.LinkExists(10, Forward, 8, Reverse))
	assert.True(t, graph.LinkExists(9, Forward, 7, Forward))
	assert.True(t, graph.LinkExists(7, Reverse, 9, Reverse))

	assert.False(t, graph.LinkExists(5, Reverse, 5, Forward))
	assert.False(t, graph.LinkExists(7, Forward, 9, Forward))
	assert.False(t, graph.LinkExists(123, Forward, 456, Forward))
}

func TestLinkExists2(t *testing.T) {
	graph := graphFromLines(t, testGFA2)

	assert.True(t, graph.LinkExists(1, Forward, 2, Forward))
	assert.True(t, graph.LinkExists(2, Reverse, 1, Reverse))
	assert.True(t, graph.LinkExists(1, Forward, 2, Reverse))
	assert.True(t, graph.LinkExists(2, Forward, 1, Reverse))
	assert.True(t, graph.LinkExists(1, Reverse, 3, Forward))
	assert.True(t, graph.LinkExists(3, Reverse, 1, Forward))
	assert.True(t, graph.LinkExists(1, Reverse, 3, Reverse))
	assert.True(t, graph.LinkExists(3, Forward, 1, Forward))

	assert.False(t, graph.LinkExists(2, Forward, 1, Forward))
	assert.False(t, graph.LinkExists(2, Forward, 2, Reverse))
	assert.False(t, graph.LinkExists(2, Reverse, 3, Reverse))
	assert.False(t, graph.LinkExists(4, Forward, 5, Forward))
	assert.False(t, graph.LinkExists(6, Reverse, 7, Reverse))
}

func TestLinkExists3(t *testing.T) {
	graph := graphFromLines(t, testGFA3)

	assert.True(t, graph.LinkExists(1, Forward, 2, Reverse))
	assert.True(t, graph.LinkExists(2, Forward, 1, Reverse))
	assert.True(t, graph.LinkExists(2, Reverse, 3, Forward))
	assert.True(t, graph.LinkExists(3, Reverse, 2, Forward))
	assert.True(t, graph.LinkExists(3, Forward, 4, Forward))
	assert.True(t, graph.LinkExists(4, Reverse, 3, Reverse))
	assert.True(t, graph.LinkExists(4, Forward, 5, Reverse))
	assert.True(t, graph.LinkExists(5, Forward, 4, Reverse))
	assert.True(t, graph.LinkExists(5, Reverse, 5, Forward))
	assert.True(t, graph.LinkExists(3, Forward, 6, Forward))
	assert.True(t, graph.LinkExists(6, Reverse, 3, Reverse))
	assert.True(t, graph.LinkExists(6, Forward, 7, Reverse))
	assert.True(t, graph.LinkExists(7, Forward, 6, Reverse))
	assert.True(t, graph.LinkExists(7, Reverse, 6, Forward))
	assert.True(t, graph.LinkExists(6, Reverse, 7, Forward))

	assert.False(t, graph.LinkExists(1, Forward, 3, Forward))
	assert.False(t, graph.LinkExists(5, Forward, 5, Reverse))
	assert.False(t, graph.LinkExists(7, Reverse, 4, Reverse))
	assert.False(t, graph.LinkExists(8, Forward, 9, Forward))
}

func TestLinkExistsPrev1(t *testing.T) {
	graph := graphFromLines(t, testGFA1)

	assert.True(t, graph.LinkExistsPrev(1, Forward, 4, Forward))
	assert.True(t, graph.LinkExistsPrev(4, Reverse, 1, Reverse))
	assert.True(t, graph.LinkExistsPrev(1, Forward, 5, Reverse))
	assert.True(t, graph.LinkExistsPrev(5, Forward, 1, Reverse))
	assert.True(t, graph.LinkExistsPrev(2, Forward, 1, Forward))
	assert.True(t, graph.LinkExistsPrev(1, Reverse, 2, Reverse))
	assert.True(t, graph.LinkExistsPrev(3, Reverse, 1, Forward))
	assert.True(t, graph.LinkExistsPrev(1, Reverse, 3, Forward))
	assert.True(t, graph.LinkExistsPrev(4, Forward, 7, Reverse))
	assert.True(t, graph.LinkExistsPrev(7, Forward, 4, Reverse))
	assert.True(t, graph.LinkExistsPrev(4, Forward, 8, Forward))
	assert.True(t, graph.LinkExistsPrev(8, Reverse, 4, Reverse))
	assert.True(t, graph.LinkExistsPrev(6, Reverse, 5, Reverse))
	assert.True(t, graph.LinkExistsPrev(5, Forward, 6, Forward))
	assert.True(t, graph.LinkExistsPrev(6, Forward, 6, Reverse))
	assert.True(t, graph.LinkExistsPrev(7, Reverse, 9, Forward))
	assert.True(t, graph.LinkExistsPrev(9, Reverse, 7, Forward))
	assert.True(t, graph.LinkExistsPrev(8, Forward, 10, Reverse))
	assert.True(t, graph.LinkExistsPrev(10, Forward, 8, Reverse))
	assert.True(t, graph.LinkExistsPrev(9, Forward, 7, Forward))
	assert.True(t, graph.LinkExistsPrev(7, Reverse, 9, Reverse))

	assert.False(t, graph.LinkExistsPrev(5, Reverse, 5, Forward))
	assert.False(t, graph.LinkExistsPrev(7, Forward, 9, Forward))
	assert.False(t, graph.LinkExistsPrev(123, Forward, 456, Forward))
}

func TestLinkExistsPrev2(t *testing.T) {
	graph := graphFromLines(t, testGFA2)

	assert.True(t, graph.LinkExistsPrev(1, Forward, 2, Forward))
	assert.True(t, graph.LinkExistsPrev(2, Reverse, 1, Reverse))
	assert.True(t, graph.LinkExistsPrev(1, Forward, 2, Reverse))
	assert.True(t, graph.LinkExistsPrev(2, Forward, 1, Reverse))
	assert.True(t, graph.LinkExistsPrev(1, Reverse, 3, Forward))
	assert.True(t, graph.LinkExistsPrev(3, Reverse, 1, Forward))
	assert.True(t, graph.LinkExistsPrev(1, Reverse, 3, Reverse))
	assert.True(t, graph.LinkExistsPrev(3, Forward, 1, Forward))

	assert.False(t, graph.LinkExistsPrev(2, Forward, 1, Forward))
	assert.False(t, graph.LinkExistsPrev(2, Forward, 2, Reverse))
	assert.False(t, graph.LinkExistsPrev(2, Reverse, 3, Reverse))
	assert.False(t, graph.LinkExistsPrev(4, Forward, 5, Forward))
	assert.False(t, graph.LinkExistsPrev(6, Reverse, 7, Reverse))
}

func TestMaxUnitigNumber(t *testing.T) {
	assert.Equal(t, uint32(10), graphFromLines(t, testGFA1).MaxUnitigNumber())
	assert.Equal(t, uint32(3), graphFromLines(t, testGFA2).MaxUnitigNumber())
	assert.Equal(t, uint32(7), graphFromLines(t, testGFA3).MaxUnitigNumber())
}

func TestDeleteLinkAndCreateLink(t *testing.T) {
	graph := graphFromLines(t, testGFA1)

	graph.DeleteLink(-3, 1)
	assert.Equal(t, 10, len(graph.Unitigs))
	assert.Equal(t, 92, graph.TotalLength())
	assert.Equal(t, 19, graph.LinkCount())

	graph.DeleteLink(6, -6)
	assert.Equal(t, 18, graph.LinkCount())

	graph.DeleteLink(5, 6)
	assert.Equal(t, 16, graph.LinkCount())

	// link doesn't exist, should do nothing
	graph.DeleteLink(-1, 7)
	assert.Equal(t, 16, graph.LinkCount())

	graph.CreateLink(5, 6)
	assert.Equal(t, 18, graph.LinkCount())

	graph.CreateLink(6, -6)
	assert.Equal(t, 19, graph.LinkCount())

	graph.CreateLink(-3, 1)
	assert.Equal(t, 21, graph.LinkCount())
	graph.CheckLinks()
}

func TestDeleteOutgoingIncomingLinks(t *testing.T) {
	graph := graphFromLines(t, testGFA1)
	graph.DeleteOutgoingLinks(4) // 4+ -> 7-, 4+ -> 8+
	assert.Equal(t, 17, graph.LinkCount())
	assert.False(t, graph.LinkExists(4, Forward, 7, Reverse))
	assert.False(t, graph.LinkExists(4, Forward, 8, Forward))
	graph.CheckLinks()

	graph = graphFromLines(t, testGFA1)
	graph.DeleteIncomingLinks(1) // 2+ -> 1+, 3- -> 1+
	assert.Equal(t, 17, graph.LinkCount())
	assert.False(t, graph.LinkExists(2, Forward, 1, Forward))
	assert.False(t, graph.LinkExists(3, Reverse, 1, Forward))
	graph.CheckLinks()
}

func TestGetSequenceFromPath(t *testing.T) {
	graph := graphFromLines(t, testGFA1)

	assert.Equal(t, "TAGATCGAGCCGAGCAAAGCGAAGCGAGCGCAGCGAATGCCTGAATCGCCTA",
		string(graph.GetSequenceFromPath([]PathStep{{10, true}, {8, false}, {4, false}, {1, false}, {3, true}})))
	assert.Equal(t, "CGAACCATTACTTGTACAAGTAATGGTTCG",
		string(graph.GetSequenceFromPath([]PathStep{{5, true}, {6, true}, {6, false}, {5, false}})))
	assert.Equal(t, "TAGGCGATTCAGGCATTCGCTGCGCTCGCTTCGCTTTGCTCGGCTCGAAGGCGCGCCTTCGAGCCGAGCAAAGCGAAGCGAGCGCAGCGAATGCACAGCGACGACGGCA",
		string(graph.GetSequenceFromPath([]PathStep{{3, false}, {1, true}, {4, true}, {7, false}, {9, false}, {7, true}, {4, false}, {1, false}, {2, false}})))

	assert.Equal(t, "TAGATCGAGCCGAGCAAAGCGAAGCGAGCGCAGCGAATGCCTGAATCGCCTA",
		string(graph.GetSequenceFromPathSigned([]int32{10, -8, -4, -1, 3})))
	assert.Equal(t, "CGAACCATTACTTGTACAAGTAATGGTTCG",
		string(graph.GetSequenceFromPathSigned([]int32{5, 6, -6, -5})))
	assert.Equal(t, "TAGGCGATTCAGGCATTCGCTGCGCTCGCTTCGCTTTGCTCGGCTCGAAGGCGCGCCTTCGAGCCGAGCAAAGCGAAGCGAGCGCAGCGAATGCACAGCGACGACGGCA",
		string(graph.GetSequenceFromPathSigned([]int32{-3, 1, 4, -7, -9, 7, -4, -1, -2})))
}

func TestSequenceFromReversePathLaw(t *testing.T) {
	graph := graphFromLines(t, testGFA1)
	path := []PathStep{{10, true}, {8, false}, {4, false}, {1, false}, {3, true}}
	forward := graph.GetSequenceFromPath(path)
	backward := graph.GetSequenceFromPath(ReversePath(path))
	assert.Equal(t, ReverseComplement(forward), backward)
}

func TestConnectedComponents(t *testing.T) {
	assert.Equal(t, [][]uint32{{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		graphFromLines(t, testGFA1).ConnectedComponents())
	assert.Equal(t, [][]uint32{{1, 2, 3}},
		graphFromLines(t, testGFA2).ConnectedComponents())
	assert.Equal(t, [][]uint32{{1, 2, 3, 4, 5, 6, 7}},
		graphFromLines(t, testGFA3).ConnectedComponents())
	assert.Equal(t, [][]uint32{{1, 2, 3}, {4, 5}},
		graphFromLines(t, testGFA4).ConnectedComponents())
	assert.Equal(t, [][]uint32{{1, 5}, {2}, {3, 6}, {4}},
		graphFromLines(t, testGFA5).ConnectedComponents())
}

func TestComponentIsCircularLoop(t *testing.T) {
	graph := graphFromLines(t, testGFA1)
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))

	graph = graphFromLines(t, testGFA2)
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{1, 2, 3}))

	graph = graphFromLines(t, testGFA3)
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{1, 2, 3, 4, 5, 6, 7}))

	graph = graphFromLines(t, testGFA4)
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{1, 2, 3}))
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{3, 2, 1}))
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{2, 3, 1}))
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{4, 5}))
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{5, 4}))

	graph = graphFromLines(t, testGFA5)
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{1, 5}))
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{2}))
	assert.False(t, graph.ComponentIsCircularLoop([]uint32{3, 6}))
	assert.True(t, graph.ComponentIsCircularLoop([]uint32{4}))
	assert.False(t, graph.ComponentIsCircularLoop(nil))
}

func TestGFARejects(t *testing.T) {
	// Non-0M overlap on a link line.
	_, _, err := UnitigGraphFromGFALines([]string{
		"H\tVN:Z:1.0\tKM:i:9",
		"S\t1\tACGT\tDP:f:1",
		"L\t1\t+\t1\t+\t3M",
	})
	assert.Error(t, err)

	// Header without the k-mer tag.
	_, _, err = UnitigGraphFromGFALines([]string{
		"H\tVN:Z:1.0",
		"S\t1\tACGT\tDP:f:1",
	})
	assert.Error(t, err)

	// Link to a nonexistent unitig.
	_, _, err = UnitigGraphFromGFALines([]string{
		"H\tVN:Z:1.0\tKM:i:9",
		"S\t1\tACGT\tDP:f:1",
		"L\t1\t+\t2\t+\t0M",
	})
	assert.Error(t, err)

	// Path line missing a required tag.
	_, _, err = UnitigGraphFromGFALines([]string{
		"H\tVN:Z:1.0\tKM:i:9",
		"S\t1\tACGT\tDP:f:1",
		"P\t1\t1+\t*\tLN:i:4\tFN:Z:a.fasta",
	})
	assert.Error(t, err)
}

func TestRemoveSequencesAndZeroDepthUnitigs(t *testing.T) {
	graph, sequences := buildFiveSeqGraph(t, 9)
	for _, seq := range sequences {
		graph.RemoveSequenceFromGraph(seq.ID)
	}
	graph.RecalculateDepths()
	for _, u := range graph.Unitigs {
		require.Equal(t, 0.0, u.Depth)
	}
	graph.RemoveZeroDepthUnitigs()
	assert.Empty(t, graph.Unitigs)
	assert.Equal(t, 0, graph.LinkCount())
}

func TestClearPositions(t *testing.T) {
	graph, _ := buildFiveSeqGraph(t, 9)
	graph.ClearPositions()
	for _, u := range graph.Unitigs {
		assert.Empty(t, u.ForwardPositions)
		assert.Empty(t, u.ReversePositions)
	}
}

func TestGFAFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	gfaFilename := filepath.Join(dir, "graph.gfa")
	require.NoError(t, os.WriteFile(gfaFilename, []byte(strings.Join(testGFA1, "\n")+"\n"), 0644))

	graph, seqs, err := UnitigGraphFromGFAFile(gfaFilename)
	require.NoError(t, err)
	require.Empty(t, seqs)

	out1 := filepath.Join(dir, "out1.gfa")
	out2 := filepath.Join(dir, "out2.gfa")
	require.NoError(t, graph.SaveGFA(out1, seqs))
	graph2, seqs2, err := UnitigGraphFromGFAFile(out1)
	require.NoError(t, err)
	require.NoError(t, graph2.SaveGFA(out2, seqs2))

	content1, err := os.ReadFile(out1)
	require.NoError(t, err)
	content2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, content1, content2)
}
