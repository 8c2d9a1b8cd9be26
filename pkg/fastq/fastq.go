/*
Package fastq writes simulated reads in fastq format
*/
package fastq

import (
	"io"
	"strings"

	"github.com/akmami/readsim/pkg/simulate"
)

// WriteReads writes reads in fastq format, in the order given. Simulated
// reads carry no base calling information, so the quality line is '!'
// (Phred 0) repeated to the length of the sequence line.
func WriteReads(w io.Writer, reads []simulate.Read) error {
	for _, read := range reads {
		name := read.Name()
		if _, err := w.Write([]byte("@" + name + "\n")); err != nil {
			return err
		}
		if _, err := w.Write([]byte(read.Seq + "\n")); err != nil {
			return err
		}
		if _, err := w.Write([]byte("+" + name + "\n")); err != nil {
			return err
		}
		if _, err := w.Write([]byte(strings.Repeat("!", len(read.Seq)) + "\n")); err != nil {
			return err
		}
	}
	return nil
}
