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
	"bufio"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"
)

func outStream(file string, gzipped bool) (*bufio.Writer, io.WriteCloser, *os.File, error) {
	w, err := os.Create(file)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fail to write %s: %s", file, err)
	}
	if gzipped {
		gw := gzip.NewWriter(w)
		return bufio.NewWriterSize(gw, os.Getpagesize()), gw, w, nil
	}
	return bufio.NewWriterSize(w, os.Getpagesize()), nil, w, nil
}

func inStream(file string) (*bufio.Reader, *os.File, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to read %s: %s", file, err)
	}
	br := bufio.NewReaderSize(r, os.Getpagesize())
	if gzipped, err := isGzip(br); err != nil {
		r.Close()
		return nil, nil, fmt.Errorf("fail to check is file (%s) gzipped: %s", file, err)
	} else if gzipped {
		gr, err := gzip.NewReader(br)
		if err != nil {
			r.Close()
			return nil, nil, fmt.Errorf("fail to create gzip reader for %s: %s", file, err)
		}
		br = bufio.NewReaderSize(gr, os.Getpagesize())
	}
	return br, r, nil
}

func isGzip(b *bufio.Reader) (bool, error) {
	return checkBytes(b, []byte{0x1f, 0x8b})
}

func checkBytes(b *bufio.Reader, buf []byte) (bool, error) {
	m, err := b.Peek(len(buf))
	if err != nil {
		if err == io.EOF || err == bufio.ErrBufferFull {
			return false, nil
		}
		return false, err
	}
	for i := range buf {
		if m[i] != buf[i] {
			return false, nil
		}
	}
	return true, nil
}

// loadFileLines reads a whole (possibly gzipped) text file into lines,
// without trailing newlines.
func loadFileLines(file string) ([]string, error) {
	br, r, err := inStream(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<30)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
