/*
Package gfio provides io functionality, including to/from stdin/stdout,
transparent gzip compression of output files named *.gz, and helpful error
messages when used in combination with bad filepaths from commandline options
*/
package gfio

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/spf13/pflag"
)

func parseInErr(err error, flagString string) error {
	switch x := err.(type) {
	case *fs.PathError:
		return errors.New(x.Op + " " + flagString + " " + x.Path + ": " + x.Err.Error())
	default:
		return err
	}
}

func flagString(flag pflag.Flag) string {
	switch len(flag.Shorthand) {
	case 0:
		return "--" + flag.Name
	default:
		return "-" + flag.Shorthand + " / --" + flag.Name
	}
}

func OpenIn(flag pflag.Flag) (*os.File, error) {
	var err error
	var f *os.File

	inFile := flag.Value.String()

	if inFile != "stdin" {
		if f, err = os.Open(inFile); err != nil {
			err = parseInErr(err, flagString(flag))
			return f, err
		}
	} else {
		f = os.Stdin
	}

	return f, nil
}

// An Out is one output destination of a command. Writes pass through a bgzf
// compressor (a blocked, gzip-compatible encoding) when the file's name ends
// in .gz; Close flushes the compressor before closing the underlying file.
type Out struct {
	f  *os.File
	gz *bgzf.Writer
}

func (o *Out) Write(p []byte) (int, error) {
	if o.gz != nil {
		return o.gz.Write(p)
	}
	return o.f.Write(p)
}

func (o *Out) Close() error {
	if o.gz != nil {
		if err := o.gz.Close(); err != nil {
			return err
		}
	}
	if o.f == os.Stdout {
		return nil
	}
	return o.f.Close()
}

func OpenOut(flag pflag.Flag) (*Out, error) {
	return openOut(flag, true)
}

// OpenOutPlain is OpenOut without the gzip wrapping, for formats that are
// always written uncompressed whatever the file is called
func OpenOutPlain(flag pflag.Flag) (*Out, error) {
	return openOut(flag, false)
}

func openOut(flag pflag.Flag, compress bool) (*Out, error) {
	var err error
	var f *os.File

	outFile := flag.Value.String()

	if outFile != "stdout" {
		f, err = os.Create(outFile)
		if err != nil {
			return nil, parseInErr(err, flagString(flag))
		}
	} else {
		f = os.Stdout
	}

	o := &Out{f: f}
	if compress && strings.HasSuffix(outFile, ".gz") {
		o.gz = bgzf.NewWriter(f, 1)
	}

	return o, nil
}
