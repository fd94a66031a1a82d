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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/iskold/Autocycler"
	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"
	prettytable "github.com/tatsushid/go-prettytable"
)

// compressCmd represents
var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "compress input assemblies into a unitig graph",
	Long: `compress input assemblies into a unitig graph

This command finds all assemblies in the given input directory and
compresses them into a compacted De Bruijn graph. This graph can then be
used to recover the assemblies (with autocycler decompress) or generate
a consensus assembly.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		runtime.GOMAXPROCS(opt.NumCPUs)
		seq.ValidateSeq = false
		startTime := time.Now()

		assembliesDir := getFlagDir(cmd, "assemblies_dir")
		autocyclerDir := getFlagDir(cmd, "autocycler_dir")
		kSize := getFlagPositiveInt(cmd, "kmer")
		threads := getFlagPositiveInt(cmd, "threads")

		checkDirExists(assembliesDir)
		checkDirIsNotFile(autocyclerDir)
		if kSize < 11 {
			checkError(fmt.Errorf("--kmer cannot be less than 11"))
		}
		if kSize > 501 {
			checkError(fmt.Errorf("--kmer cannot be greater than 501"))
		}
		if threads > 100 {
			checkError(fmt.Errorf("--threads cannot be greater than 100"))
		}
		createDir(autocyclerDir)

		log.Info("loading input assemblies ...")
		sequences, assemblyCount, err := autocycler.LoadSequences(assembliesDir, kSize, threads)
		checkError(err)
		printSequenceTable(sequences)
		log.Infof("%d sequence%s loaded from %d assembl%s",
			len(sequences), plural(len(sequences), "", "s"),
			assemblyCount, plural(assemblyCount, "y", "ies"))

		log.Info("building k-mer De Bruijn graph ...")
		kmerGraph := autocycler.NewKmerGraph(kSize)
		kmerGraph.AddSequences(sequences, assemblyCount)
		log.Infof("graph contains %s k-mers", humanize.Comma(int64(len(kmerGraph.Kmers))))

		log.Info("building compacted unitig graph ...")
		unitigGraph := autocycler.NewUnitigGraphFromKmerGraph(kmerGraph)
		logGraphInfo(unitigGraph)

		log.Info("simplifying unitig graph ...")
		autocycler.SimplifyStructure(unitigGraph, sequences)
		logGraphInfo(unitigGraph)

		outGFA := filepath.Join(autocyclerDir, "1_input_assemblies.gfa")
		checkError(unitigGraph.SaveGFA(outGFA, sequences))
		log.Infof("final unitig graph: %s", outGFA)
		if opt.Verbose {
			log.Infof("time to run: %s", time.Since(startTime))
		}
	},
}

func printSequenceTable(sequences []*autocycler.Sequence) {
	tbl, err := prettytable.NewTable(
		prettytable.Column{Header: "id", AlignRight: true},
		prettytable.Column{Header: "file"},
		prettytable.Column{Header: "contig"},
		prettytable.Column{Header: "length", AlignRight: true},
	)
	checkError(err)
	tbl.Separator = "  "
	for _, s := range sequences {
		tbl.AddRow(int(s.ID), s.Filename, s.ContigName(), s.Length)
	}
	os.Stderr.Write(tbl.Bytes())
}

func logGraphInfo(g *autocycler.UnitigGraph) {
	log.Infof("%s unitigs, %s links, total length: %s bp",
		humanize.Comma(int64(len(g.Unitigs))),
		humanize.Comma(int64(g.LinkCount())),
		humanize.Comma(int64(g.TotalLength())))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	RootCmd.AddCommand(compressCmd)

	compressCmd.Flags().StringP("assemblies_dir", "a", "", "directory containing the input assemblies")
	compressCmd.Flags().StringP("autocycler_dir", "o", "", "directory for Autocycler output")
	compressCmd.Flags().IntP("kmer", "k", 51, "k-mer size for the De Bruijn graph")
}
