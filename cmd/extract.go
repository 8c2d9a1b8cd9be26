package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akmami/readsim/pkg/fasta"
	"github.com/akmami/readsim/pkg/gfio"
	"github.com/akmami/readsim/pkg/simulate"
)

var extractGenome string
var extractReadLength int
var extractDepth int
var extractLengthVariation int
var extractMinReadLength int
var extractCompoundLengths bool
var extractSeed int64
var extractFastaOut string
var extractFastqOut string
var extractGfaOut string

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractGenome, "genome", "g", "stdin", "Genome to extract reads from, in fasta format. If none is specified, will read from stdin")
	extractCmd.Flags().IntVarP(&extractReadLength, "read-length", "", 8000, "Target read length")
	extractCmd.Flags().IntVarP(&extractDepth, "depth", "d", 30, "Target sequencing depth")
	extractCmd.Flags().IntVarP(&extractLengthVariation, "length-variation", "", 50, "Maximum deviation of each read's length from the target")
	extractCmd.Flags().IntVarP(&extractMinReadLength, "min-read-length", "", 4000, "Reads shorter than this are not emitted")
	extractCmd.Flags().BoolVarP(&extractCompoundLengths, "compound-lengths", "", false, "Centre each read length draw on the previous draw instead of on --read-length")
	extractCmd.Flags().Int64VarP(&extractSeed, "seed", "s", -1, "Seed for the random source. Negative means seed from the clock")
	extractCmd.Flags().StringVarP(&extractFastaOut, "fasta-out", "", "stdout", "Fasta file to write, gzipped if the name ends in .gz. Empty skips fasta output")
	extractCmd.Flags().StringVarP(&extractFastqOut, "fastq-out", "", "", "Fastq file to write, gzipped if the name ends in .gz. Empty skips fastq output")
	extractCmd.Flags().StringVarP(&extractGfaOut, "gfa-out", "", "", "GFA file to write, never gzipped. Empty skips gfa output")

	extractCmd.Flags().Lookup("compound-lengths").NoOptDefVal = "true"

	extractCmd.Flags().SortFlags = false
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "simulate sequencing reads from an existing genome in fasta format",
	Long: `simulate sequencing reads from an existing genome in fasta format

The first record of the --genome fasta file is used as the source sequence,
and reads are extracted from it exactly as in readsim simulate.

Example usage:
	readsim extract -g genome.fasta --seed 1 --fastq-out extracted.fastq.gz`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		p := simulate.Params{
			ReadLength:      extractReadLength,
			Depth:           extractDepth,
			LengthVariation: extractLengthVariation,
			MinReadLength:   extractMinReadLength,
			CompoundLengths: extractCompoundLengths,
		}
		if err = p.Check(); err != nil {
			return err
		}

		genome, err := gfio.OpenIn(*cmd.Flag("genome"))
		if err != nil {
			return err
		}
		defer genome.Close()

		record, err := fasta.ReadGenome(genome)
		if err != nil {
			return err
		}

		rng := newRng(extractSeed)

		reads, err := simulate.ExtractReads(rng, record.Seq, p)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "extracted %d reads from %s (%d bases)\n", len(reads), record.ID, len(record.Seq))

		return writeReadSet(cmd, rng, reads)
	},
}
