package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/akmami/readsim/pkg/fasta"
	"github.com/akmami/readsim/pkg/gfio"
	"github.com/akmami/readsim/pkg/simulate"
)

var genomeLength int
var genomeName string
var genomeSeed int64
var genomeOutfile string

func init() {
	rootCmd.AddCommand(genomeCmd)

	genomeCmd.Flags().IntVarP(&genomeLength, "length", "l", 15000, "Length of the genome to generate")
	genomeCmd.Flags().StringVarP(&genomeName, "name", "n", "genome_1", "Name for the fasta record")
	genomeCmd.Flags().Int64VarP(&genomeSeed, "seed", "s", -1, "Seed for the random source. Negative means seed from the clock")
	genomeCmd.Flags().StringVarP(&genomeOutfile, "outfile", "o", "stdout", "Fasta file to write, gzipped if the name ends in .gz")

	genomeCmd.Flags().SortFlags = false
}

var genomeCmd = &cobra.Command{
	Use:   "genome",
	Short: "generate a random genome and write it as a single fasta record",
	Long: `generate a random genome and write it as a single fasta record

Each position is drawn independently and uniformly from ATGC. Useful as input
for readsim extract:

	readsim genome -l 1500000 --seed 1 -o genome.fasta
	readsim extract -g genome.fasta --seed 2 --fasta-out reads.fasta.gz`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		rng := newRng(genomeSeed)

		sequence := simulate.GenerateSequence(rng, genomeLength)

		return writeOut(*cmd.Flag("outfile"), gfio.OpenOut, func(w io.Writer) error {
			return fasta.WriteRecord(w, fasta.Record{ID: genomeName, Seq: sequence})
		})
	},
}
