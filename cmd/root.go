package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "readsim",
		Short:   "simulate DNA sequencing reads and write them as fasta, fastq and gfa",
		Long:    `simulate DNA sequencing reads and write them as fasta, fastq and gfa`,
		Version: "1.0.0",
	}
)

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRng builds the random source for one run. A negative seed means seed
// from the wall clock, so runs are only reproducible when --seed is set.
func newRng(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
