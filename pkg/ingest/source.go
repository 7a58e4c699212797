package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// SnappyExt marks a source as a snappy framed stream.
const SnappyExt = ".sz"

// MaxLineBytes bounds a single row. Longer rows are skipped as
// SkipLineTooLong and reading continues with the next line.
const MaxLineBytes = 1 << 20

// openSource opens path for line reading. Plain files are memory mapped;
// files ending in SnappyExt are decompressed on the fly.
func openSource(path string) (io.ReadCloser, error) {
	if strings.HasSuffix(path, SnappyExt) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return &snappySource{Reader: snappy.NewReader(f), file: f}, nil
	}

	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mappedSource{Reader: io.NewSectionReader(r, 0, int64(r.Len())), mapped: r}, nil
}

type mappedSource struct {
	io.Reader
	mapped *mmap.ReaderAt
}

func (s *mappedSource) Close() error {
	return s.mapped.Close()
}

type snappySource struct {
	io.Reader
	file *os.File
}

func (s *snappySource) Close() error {
	return s.file.Close()
}

// lineReader yields the lines of a source without their terminators. Unlike
// bufio.Scanner it survives rows longer than its limit.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024), max: max}
}

// Next returns the next line. tooLong reports a line over the limit; its
// content is drained and discarded. io.EOF marks the end of the source.
func (lr *lineReader) Next() (line string, tooLong bool, err error) {
	lr.buf = lr.buf[:0]
	for {
		var chunk []byte
		var isPrefix bool
		chunk, isPrefix, err = lr.r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(lr.buf)+len(chunk) > lr.max {
				tooLong = true
				lr.buf = lr.buf[:0]
			} else {
				lr.buf = append(lr.buf, chunk...)
			}
		}
		if !isPrefix {
			return string(lr.buf), tooLong, nil
		}
	}
}

// CompressFile writes a snappy framed copy of src to dst. It is used to
// prepare SnappyExt sources.
func CompressFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	w := snappy.NewBufferedWriter(out)
	if _, err := io.Copy(w, in); err != nil {
		out.Close()
		return err
	}
	if err := w.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
