package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/akmami/readsim/pkg/fasta"
	"github.com/akmami/readsim/pkg/fastq"
	"github.com/akmami/readsim/pkg/gfa"
	"github.com/akmami/readsim/pkg/gfio"
	"github.com/akmami/readsim/pkg/simulate"
)

var simulateSequenceLength int
var simulateReadLength int
var simulateDepth int
var simulateLengthVariation int
var simulateMinReadLength int
var simulateCompoundLengths bool
var simulateSeed int64
var simulateFastaOut string
var simulateFastqOut string
var simulateGfaOut string

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simulateSequenceLength, "sequence-length", "l", 1500000, "Length of the random genome to simulate reads from")
	simulateCmd.Flags().IntVarP(&simulateReadLength, "read-length", "", 8000, "Target read length")
	simulateCmd.Flags().IntVarP(&simulateDepth, "depth", "d", 30, "Target sequencing depth")
	simulateCmd.Flags().IntVarP(&simulateLengthVariation, "length-variation", "", 50, "Maximum deviation of each read's length from the target")
	simulateCmd.Flags().IntVarP(&simulateMinReadLength, "min-read-length", "", 4000, "Reads shorter than this are not emitted")
	simulateCmd.Flags().BoolVarP(&simulateCompoundLengths, "compound-lengths", "", false, "Centre each read length draw on the previous draw instead of on --read-length")
	simulateCmd.Flags().Int64VarP(&simulateSeed, "seed", "s", -1, "Seed for the random source. Negative means seed from the clock")
	simulateCmd.Flags().StringVarP(&simulateFastaOut, "fasta-out", "", "stdout", "Fasta file to write, gzipped if the name ends in .gz. Empty skips fasta output")
	simulateCmd.Flags().StringVarP(&simulateFastqOut, "fastq-out", "", "", "Fastq file to write, gzipped if the name ends in .gz. Empty skips fastq output")
	simulateCmd.Flags().StringVarP(&simulateGfaOut, "gfa-out", "", "", "GFA file to write, never gzipped. Empty skips gfa output")

	simulateCmd.Flags().Lookup("compound-lengths").NoOptDefVal = "true"

	simulateCmd.Flags().SortFlags = false
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "simulate sequencing reads from a random genome",
	Long: `simulate sequencing reads from a random genome

A random ATGC sequence of --sequence-length bases is generated, then sliced
into overlapping reads: each read's length is drawn uniformly from
[--read-length - --length-variation, --read-length + --length-variation], and
the next read starts one read length divided by --depth further along the
genome. Reads that would run past the end of the genome are skipped.

The read set is shuffled before fasta/fastq output, to simulate the loss of
positional information in real sequencing. GFA output is sorted by read name
instead (shorter names first, then lexicographic), and declares one
zero-overlap link per consecutive pair of reads in that order.

Example usage:
	readsim simulate --seed 1 --fasta-out simulated.fasta.gz --fastq-out simulated.fastq.gz --gfa-out simulated.gfa

With no output flags given, the reads are written to stdout in fasta format:
	readsim simulate -l 15000 --read-length 150 --min-read-length 100 > simulated.fasta`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		p := simulate.Params{
			ReadLength:      simulateReadLength,
			Depth:           simulateDepth,
			LengthVariation: simulateLengthVariation,
			MinReadLength:   simulateMinReadLength,
			CompoundLengths: simulateCompoundLengths,
		}
		if err = p.Check(); err != nil {
			return err
		}

		rng := newRng(simulateSeed)

		sequence := simulate.GenerateSequence(rng, simulateSequenceLength)

		reads, err := simulate.ExtractReads(rng, sequence, p)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "simulated %d reads from a genome of %d bases\n", len(reads), len(sequence))

		return writeReadSet(cmd, rng, reads)
	},
}

// writeReadSet writes one simulated read set to whichever of the fasta-out,
// fastq-out and gfa-out flags are set on cmd. The set is shuffled once, so
// fasta and fastq list the reads in the same order, and re-sorted canonically
// for the gfa.
func writeReadSet(cmd *cobra.Command, rng *rand.Rand, reads []simulate.Read) error {

	simulate.Shuffle(rng, reads)

	if cmd.Flag("fasta-out").Value.String() != "" {
		if err := writeOut(*cmd.Flag("fasta-out"), gfio.OpenOut, func(w io.Writer) error {
			return fasta.WriteReads(w, reads)
		}); err != nil {
			return err
		}
	}

	if cmd.Flag("fastq-out").Value.String() != "" {
		if err := writeOut(*cmd.Flag("fastq-out"), gfio.OpenOut, func(w io.Writer) error {
			return fastq.WriteReads(w, reads)
		}); err != nil {
			return err
		}
	}

	// the gfa is never compressed, whatever the file is called
	if cmd.Flag("gfa-out").Value.String() != "" {
		simulate.SortCanonical(reads)
		if err := writeOut(*cmd.Flag("gfa-out"), gfio.OpenOutPlain, func(w io.Writer) error {
			return gfa.WriteReads(w, reads)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeOut opens the file named by flag, runs write against it, and closes
// it, keeping the first error. Close errors matter here because gzipped
// outputs are only flushed on Close.
func writeOut(flag pflag.Flag, open func(pflag.Flag) (*gfio.Out, error), write func(io.Writer) error) error {
	out, err := open(flag)
	if err != nil {
		return err
	}
	if err = write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
