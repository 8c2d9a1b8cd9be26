/*
Package simulate generates random genomes and slices them into overlapping
sequencing reads at a target depth, with randomized read lengths
*/
package simulate

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"golang.org/x/exp/slices"
)

// ErrInvalidParameters is wrapped by every parameter validation failure
var ErrInvalidParameters = errors.New("invalid simulation parameters")

// A struct for one simulated read: its identifier, its start position in the
// source sequence, and the subsequence itself
type Read struct {
	ID  string
	Pos int
	Seq string
}

// Name returns the identifier that is written to file, which is the read's ID
// suffixed with its start position
func (R Read) Name() string {
	return R.ID + "_" + strconv.Itoa(R.Pos)
}

// A struct for the parameters of one extraction run. ReadLength is the target
// read length, Depth the target coverage, and LengthVariation the maximum
// deviation of each drawn length from the target. Reads shorter than
// MinReadLength are not emitted. If CompoundLengths is true, each draw is
// centred on the previous draw instead of on ReadLength.
type Params struct {
	ReadLength      int
	Depth           int
	LengthVariation int
	MinReadLength   int
	CompoundLengths bool
}

// Check returns an error wrapping ErrInvalidParameters if the parameters are
// out of range, or if they would produce a step size of 0, in which case the
// extraction loop could never advance
func (p Params) Check() error {
	if p.ReadLength <= 0 {
		return fmt.Errorf("%w: read length must be positive (got %d)", ErrInvalidParameters, p.ReadLength)
	}
	if p.Depth <= 0 {
		return fmt.Errorf("%w: depth must be positive (got %d)", ErrInvalidParameters, p.Depth)
	}
	if p.LengthVariation < 0 {
		return fmt.Errorf("%w: length variation must not be negative (got %d)", ErrInvalidParameters, p.LengthVariation)
	}
	if p.LengthVariation >= p.ReadLength {
		return fmt.Errorf("%w: length variation (%d) must be smaller than the read length (%d)", ErrInvalidParameters, p.LengthVariation, p.ReadLength)
	}
	if p.MinReadLength < 0 {
		return fmt.Errorf("%w: minimum read length must not be negative (got %d)", ErrInvalidParameters, p.MinReadLength)
	}
	if (p.ReadLength-p.LengthVariation)/p.Depth == 0 {
		return fmt.Errorf("%w: depth (%d) is greater than the minimum read length (%d), so the step size can be 0", ErrInvalidParameters, p.Depth, p.ReadLength-p.LengthVariation)
	}
	return nil
}

var nucleotides = [4]byte{'A', 'T', 'G', 'C'}

// GenerateSequence returns a random nucleotide sequence of the given length,
// each position drawn independently and uniformly from ATGC. A length of 0 or
// lower gives the empty sequence.
func GenerateSequence(rng *rand.Rand, length int) string {
	if length <= 0 {
		return ""
	}
	sequence := make([]byte, length)
	for i := range sequence {
		sequence[i] = nucleotides[rng.Intn(4)]
	}
	return string(sequence)
}

// ExtractReads slices sequence into overlapping reads. A cursor walks the
// sequence from position 0; at each iteration a read length is drawn uniformly
// from the closed interval [target-variation, target+variation] and the cursor
// advances by that length divided by the depth. A read whose end would fall
// past the end of the sequence is skipped, not truncated. Read IDs count up
// from S_1 in the order the reads are emitted.
func ExtractReads(rng *rand.Rand, sequence string, p Params) ([]Read, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	reads := make([]Read, 0)
	target := p.ReadLength
	readID := 1

	for currentIndex := 0; currentIndex < len(sequence); {
		readLength := target - p.LengthVariation + rng.Intn(2*p.LengthVariation+1)
		if p.CompoundLengths {
			target = readLength
		}

		stepSize := readLength / p.Depth
		// compounding draws can walk the length down until the step hits 0
		if stepSize < 1 {
			return nil, fmt.Errorf("%w: drawn read length (%d) fell below the depth (%d), so the step size is 0", ErrInvalidParameters, readLength, p.Depth)
		}

		if currentIndex+readLength > len(sequence) {
			currentIndex += stepSize
			continue
		}

		if readLength >= p.MinReadLength {
			reads = append(reads, Read{
				ID:  "S_" + strconv.Itoa(readID),
				Pos: currentIndex,
				Seq: sequence[currentIndex : currentIndex+readLength],
			})
			readID++
		}
		currentIndex += stepSize
	}

	return reads, nil
}

// Shuffle permutes reads uniformly at random, in place. Sequencers do not
// emit reads in genome order, so the read set is shuffled before it is
// written as fasta or fastq.
func Shuffle(rng *rand.Rand, reads []Read) {
	rng.Shuffle(len(reads), func(i, j int) {
		reads[i], reads[j] = reads[j], reads[i]
	})
}

// SortCanonical sorts reads in place by their written name, shorter names
// first and ties broken lexicographically. This is the linear order in which
// overlap edges are declared in gfa output.
func SortCanonical(reads []Read) {
	slices.SortStableFunc(reads, func(a, b Read) bool {
		an, bn := a.Name(), b.Name()
		if len(an) != len(bn) {
			return len(an) < len(bn)
		}
		return an < bn
	})
}
