/*
Package fasta reads and writes nucleotide sequences in fasta format
*/
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/akmami/readsim/pkg/simulate"
)

var (
	errBadlyFormedFasta = errors.New("badly formed fasta file")
	errEmptyFasta       = errors.New("empty fasta file")
)

// A struct for one fasta record
type Record struct {
	ID          string
	Description string
	Seq         string
}

type Reader struct {
	*bufio.Reader
}

func NewReader(f io.Reader) *Reader {
	return &Reader{bufio.NewReader(f)}
}

// Read reads one fasta record from the underlying reader. The final record is
// returned with error = nil, and the next call to Read() returns an empty
// Record struct and error = io.EOF.
func (r *Reader) Read() (Record, error) {

	var (
		buffer, line, peek []byte
		err                error
		FR                 Record
	)

	first := true

	for {
		if first {
			line, err = r.ReadBytes('\n')

			// the file should never end on a header line
			if err != nil {
				return Record{}, err
			} else if line[0] != '>' {
				return Record{}, errBadlyFormedFasta
			}

			line = dropNewline(line)

			fields := bytes.Fields(line[1:])
			if len(fields) == 0 {
				return Record{}, errBadlyFormedFasta
			}
			FR.ID = string(fields[0])
			FR.Description = string(line[1:])

			first = false

		} else {
			// peek at the next byte to see whether we've reached the end of
			// this record (or of the file)
			peek, err = r.Peek(1)

			// a non-EOF error can come back with zero buffered bytes, so it
			// has to be handled before peek is indexed
			if err != nil && err != io.EOF {
				return Record{}, err
			}

			if err == io.EOF || peek[0] == '>' {
				err = nil
				break
			}

			// a sequence line. The err from ReadBytes() may be io.EOF if the
			// file ends without a trailing newline, which is caught when we
			// peek in the next iteration.
			line, err = r.ReadBytes('\n')
			if err != nil && err != io.EOF {
				return Record{}, err
			}

			buffer = append(buffer, dropNewline(line)...)
		}
	}
	FR.Seq = string(buffer)

	return FR, err
}

// dropNewline strips a unix or dos newline from the end of line
func dropNewline(line []byte) []byte {
	drop := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		drop = 1
		if len(line) > 1 && line[len(line)-2] == '\r' {
			drop = 2
		}
	}
	return line[:len(line)-drop]
}

// ReadGenome reads the first record of a fasta file, which is the sequence
// that reads are simulated from. An empty file is an error.
func ReadGenome(f io.Reader) (Record, error) {
	FR, err := NewReader(f).Read()
	if err == io.EOF {
		return Record{}, errEmptyFasta
	}
	return FR, err
}

// WriteRecord writes one fasta record: a > header line with the record's ID,
// then the sequence on a single line
func WriteRecord(w io.Writer, FR Record) error {
	if _, err := w.Write([]byte(">" + FR.ID + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(FR.Seq + "\n")); err != nil {
		return err
	}
	return nil
}

// WriteReads writes simulated reads in fasta format, in the order given, one
// record of two lines per read
func WriteReads(w io.Writer, reads []simulate.Read) error {
	for _, read := range reads {
		if _, err := w.Write([]byte(">" + read.Name() + "\n")); err != nil {
			return err
		}
		if _, err := w.Write([]byte(read.Seq + "\n")); err != nil {
			return err
		}
	}
	return nil
}
