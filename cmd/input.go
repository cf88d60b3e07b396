package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Input opens path for reading, decompressing on the fly when the name
// ends in .gz. The closeall function releases every handle opened.
func Input(path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return freader, func() {
			freader.Close()
		}, nil
	}
	greader, err := gzip.NewReader(freader)
	if err != nil {
		freader.Close()
		return nil, nil, err
	}
	return greader, func() {
		greader.Close()
		freader.Close()
	}, nil
}

// Output creates path for writing, compressing when the name ends in
// .gz. closeall flushes and closes.
func Output(path string) (writer io.Writer, closeall func(), err error) {
	fwriter, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fwriter, func() {
			fwriter.Close()
		}, nil
	}
	gwriter := gzip.NewWriter(fwriter)
	return gwriter, func() {
		gwriter.Close()
		fwriter.Close()
	}, nil
}
