package io

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteAll write all data to writer,
func WriteAll(data []byte, writer io.Writer) (int, error) {
	length := len(data)
	pos := 0
	for pos < length {
		m, err := writer.Write(data[pos:length])
		pos += m
		if err != nil {
			return pos, err
		}
		if m == 0 {
			return pos, io.ErrShortWrite
		}
	}
	return length, nil
}

// WriteFile creates name if absent, truncates it otherwise, and writes all
// data through a buffered writer.
func WriteFile(name string, data []byte) error {
	file, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	writer := bufio.NewWriter(file)
	if _, err = WriteAll(data, writer); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", name)
	}
	if err = writer.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "flush %s", name)
	}
	return errors.Wrapf(file.Close(), "close %s", name)
}
