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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/shenwei356/go-logging"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("autocycler")

// Options contains the global flags
type Options struct {
	NumCPUs int
	Verbose bool
}

func getOptions(cmd *cobra.Command) *Options {
	return &Options{
		NumCPUs: getFlagPositiveInt(cmd, "threads"),
		Verbose: getFlagBool(cmd, "verbose"),
	}
}

func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return value
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	value := getFlagInt(cmd, flag)
	if value <= 0 {
		checkError(fmt.Errorf("value of flag --%s should be greater than 0", flag))
	}
	return value
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

// getFlagDir fetches a directory flag, requiring it to be set, and expands a
// leading ~.
func getFlagDir(cmd *cobra.Command, flag string) string {
	value := getFlagString(cmd, flag)
	if value == "" {
		checkError(fmt.Errorf("flag --%s is required", flag))
	}
	expanded, err := homedir.Expand(value)
	checkError(err)
	return expanded
}

func checkDirExists(dir string) {
	ok, err := pathutil.DirExists(dir)
	checkError(err)
	if !ok {
		checkError(fmt.Errorf("directory does not exist: %s", dir))
	}
}

// checkDirIsNotFile rejects a path which exists but is not a directory.
func checkDirIsNotFile(dir string) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		checkError(err)
	}
	if !info.IsDir() {
		checkError(fmt.Errorf("%s already exists and is not a directory", dir))
	}
}

func createDir(dir string) {
	checkError(os.MkdirAll(dir, 0755))
}
