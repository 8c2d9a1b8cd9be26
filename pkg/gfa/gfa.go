/*
Package gfa writes a read set as a GFA v1 assembly graph
*/
package gfa

import (
	"io"

	"github.com/akmami/readsim/pkg/simulate"
)

// WriteReads writes reads as a GFA v1 graph, in the order given (callers sort
// the read set canonically first - see simulate.SortCanonical). One S line is
// written per read with a placeholder sequence field, then one L line per
// consecutive pair of reads, declaring a zero-overlap edge between them.
func WriteReads(w io.Writer, reads []simulate.Read) error {
	for _, read := range reads {
		if _, err := w.Write([]byte("S\t" + read.Name() + "\t.\n")); err != nil {
			return err
		}
	}

	for i := 1; i < len(reads); i++ {
		if _, err := w.Write([]byte("L\t" + reads[i-1].Name() + "\t+\t" + reads[i].Name() + "\t-\t0M\n")); err != nil {
			return err
		}
	}

	return nil
}
