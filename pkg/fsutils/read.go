package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads up to `max` bytes of a file. max == 0 reads the
// whole file, max > 0 reads the head, max < 0 reads the tail (useful
// for logs).
func ReadFileData(filePath string, max int) (data []byte, err error) {
	if max == 0 {
		return os.ReadFile(filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if max > 0 {
		data = make([]byte, max)
		var n int
		n, err = io.ReadFull(f, data)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = nil
		}
		return data[:n], err
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	tail := int64(-max)
	if tail > info.Size() {
		tail = info.Size()
	}
	if _, err = f.Seek(-tail, io.SeekEnd); err != nil {
		return nil, err
	}
	data = make([]byte, tail)
	_, err = io.ReadFull(f, data)
	return data, err
}
