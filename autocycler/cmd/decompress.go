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
	"path/filepath"

	"github.com/iskold/Autocycler"
	"github.com/spf13/cobra"
)

// decompressCmd represents
var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "reconstruct original assemblies from a unitig graph",
	Long: `reconstruct original assemblies from a unitig graph

This command loads a unitig graph produced by autocycler compress and
writes back the original input assemblies, bit-for-bit.

`,
	Run: func(cmd *cobra.Command, args []string) {
		autocyclerDir := getFlagDir(cmd, "autocycler_dir")
		outDir := getFlagDir(cmd, "out_dir")

		checkDirExists(autocyclerDir)
		checkDirIsNotFile(outDir)
		createDir(outDir)

		gfaFile := filepath.Join(autocyclerDir, "1_input_assemblies.gfa")
		log.Infof("loading unitig graph: %s", gfaFile)
		graph, sequences, err := autocycler.UnitigGraphFromGFAFile(gfaFile)
		checkError(err)
		logGraphInfo(graph)

		log.Info("reconstructing original sequences ...")
		for _, seq := range sequences {
			log.Infof("  %s: %s (%d bp)", seq.Filename, seq.ContigName(), seq.Length)
		}
		checkError(autocycler.SaveOriginalSeqs(outDir, graph, sequences))
		log.Infof("original assemblies written to %s", outDir)
	},
}

func init() {
	RootCmd.AddCommand(decompressCmd)

	decompressCmd.Flags().StringP("autocycler_dir", "i", "", "directory containing the unitig graph")
	decompressCmd.Flags().StringP("out_dir", "o", "", "directory for the reconstructed assemblies")
}
