package fasta

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/akmami/readsim/pkg/simulate"
)

func TestReader(t *testing.T) {
	fastaData := []byte(
		`>genome1 a random genome
ATGATC
ATGATG
>genome2
ATTTTC
`)

	r := NewReader(bytes.NewReader(fastaData))

	first, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != "genome1" {
		t.Errorf("wrong ID for the first record: %s", first.ID)
	}
	if first.Description != "genome1 a random genome" {
		t.Errorf("wrong description for the first record: %s", first.Description)
	}
	if first.Seq != "ATGATCATGATG" {
		t.Errorf("wrong sequence for the first record: %s", first.Seq)
	}

	second, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != "genome2" || second.Seq != "ATTTTC" {
		t.Errorf("wrong second record: %s %s", second.ID, second.Seq)
	}

	_, err = r.Read()
	if err != io.EOF {
		t.Errorf("wanted io.EOF after the last record, got: %v", err)
	}
}

func TestReaderBadlyFormed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("ATGATC\n>genome1\nATG\n")))

	_, err := r.Read()
	if err != errBadlyFormedFasta {
		t.Errorf("wanted errBadlyFormedFasta, got: %v", err)
	}
}

// a reader that yields its data once and then fails with a non-EOF error
type failingReader struct {
	data []byte
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errInputOutput
	}
	r.done = true
	return copy(p, r.data), nil
}

var errInputOutput = errors.New("input/output error")

func TestReaderReadError(t *testing.T) {
	// the underlying reader fails mid-record, after the sequence line has
	// been buffered, which surfaces as an error from Peek with no bytes
	r := NewReader(&failingReader{data: []byte(">genome1\nATGC\n")})

	_, err := r.Read()
	if err != errInputOutput {
		t.Errorf("wanted the underlying read error, got: %v", err)
	}
}

func TestReadGenome(t *testing.T) {
	FR, err := ReadGenome(bytes.NewReader([]byte(">genome1\nATGC\n>genome2\nTTTT\n")))
	if err != nil {
		t.Fatal(err)
	}
	if FR.ID != "genome1" || FR.Seq != "ATGC" {
		t.Errorf("wrong genome record: %s %s", FR.ID, FR.Seq)
	}

	_, err = ReadGenome(bytes.NewReader([]byte{}))
	if err != errEmptyFasta {
		t.Errorf("wanted errEmptyFasta for an empty file, got: %v", err)
	}
}

func TestWriteRecord(t *testing.T) {
	out := new(bytes.Buffer)

	err := WriteRecord(out, Record{ID: "genome1", Seq: "ATGC"})
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != ">genome1\nATGC\n" {
		t.Errorf("wrong fasta output: %q", out.String())
	}
}

func TestWriteReads(t *testing.T) {
	reads := []simulate.Read{
		{ID: "S_1", Pos: 0, Seq: "ATGATC"},
		{ID: "S_2", Pos: 3, Seq: "ATCGGG"},
	}

	out := new(bytes.Buffer)

	err := WriteReads(out, reads)
	if err != nil {
		t.Fatal(err)
	}

	want := `>S_1_0
ATGATC
>S_2_3
ATCGGG
`
	if out.String() != want {
		t.Errorf("wrong fasta output: %q", out.String())
	}
}
