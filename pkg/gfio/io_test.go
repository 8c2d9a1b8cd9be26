package gfio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/spf13/cobra"
)

func TestOpenIn(t *testing.T) {

	var (
		Cmd = &cobra.Command{
			Use:     "test",
			Short:   "test",
			Long:    `test`,
			Version: "1.0",
		}
	)

	var genome string
	Cmd.PersistentFlags().StringVarP(&genome, "genome", "g", "", "Genome fasta file")
	Cmd.PersistentFlags().Set("genome", "not/a/file.whatever")

	_, err := OpenIn(*Cmd.Flag("genome"))
	if err.Error() != errors.New("open"+" "+"-g / --genome"+" "+"not/a/file.whatever"+": "+"no such file or directory").Error() {
		t.Error(err)
	}
}

func TestOpenOutPlain(t *testing.T) {

	var (
		Cmd = &cobra.Command{
			Use:     "test",
			Short:   "test",
			Long:    `test`,
			Version: "1.0",
		}
	)

	outFile := filepath.Join(t.TempDir(), "out.gfa")

	var out string
	Cmd.PersistentFlags().StringVarP(&out, "gfa-out", "", "", "GFA file to write")
	Cmd.PersistentFlags().Set("gfa-out", outFile)

	o, err := OpenOut(*Cmd.Flag("gfa-out"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = o.Write([]byte("S\tS_1_0\t.\n")); err != nil {
		t.Fatal(err)
	}
	if err = o.Close(); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "S\tS_1_0\t.\n" {
		t.Errorf("wrong file contents: %q", string(contents))
	}
}

func TestOpenOutPlainGzName(t *testing.T) {

	var (
		Cmd = &cobra.Command{
			Use:     "test",
			Short:   "test",
			Long:    `test`,
			Version: "1.0",
		}
	)

	outFile := filepath.Join(t.TempDir(), "out.gfa.gz")

	var out string
	Cmd.PersistentFlags().StringVarP(&out, "gfa-out", "", "", "GFA file to write")
	Cmd.PersistentFlags().Set("gfa-out", outFile)

	o, err := OpenOutPlain(*Cmd.Flag("gfa-out"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = o.Write([]byte("S\tS_1_0\t.\n")); err != nil {
		t.Fatal(err)
	}
	if err = o.Close(); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	// uncompressed despite the .gz name: plain bytes, no gzip magic number
	if len(contents) >= 2 && contents[0] == 0x1f && contents[1] == 0x8b {
		t.Error("OpenOutPlain compressed its output")
	}
	if string(contents) != "S\tS_1_0\t.\n" {
		t.Errorf("wrong file contents: %q", string(contents))
	}
}

func TestOpenOutGz(t *testing.T) {

	var (
		Cmd = &cobra.Command{
			Use:     "test",
			Short:   "test",
			Long:    `test`,
			Version: "1.0",
		}
	)

	outFile := filepath.Join(t.TempDir(), "out.fasta.gz")

	var out string
	Cmd.PersistentFlags().StringVarP(&out, "fasta-out", "", "", "Fasta file to write")
	Cmd.PersistentFlags().Set("fasta-out", outFile)

	o, err := OpenOut(*Cmd.Flag("fasta-out"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = o.Write([]byte(">S_1_0\nATGC\n")); err != nil {
		t.Fatal(err)
	}
	if err = o.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz, err := bgzf.NewReader(f, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer gz.Close()

	contents, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != ">S_1_0\nATGC\n" {
		t.Errorf("wrong decompressed contents: %q", string(contents))
	}
}
