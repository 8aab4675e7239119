/*
This is a simple program reading n bytes from a file and copying them to the
stdout to illustrate the most basic usage of the argbind package.

The params structure defines two flags: the input path (--in) and the output
length (--n). Defaults come from the Default factory method; --n defaults to
-1 which means the whole file.
*/

package main

import (
	"io"
	"log"
	"os"

	"github.com/mkraus/argbind"
)

type params struct {
	InputPath string `flag:"in"`
	OutputLen int64  `flag:"n"`
}

func (params) Default() params {
	return params{OutputLen: -1}
}

func main() {
	// Flag parsing and validation
	p, err := argbind.Parse[params]()
	if err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}
	if p.InputPath == "" {
		log.Fatal("no input file given, use --in=<path>")
	}

	// The program "logic"
	f, err := os.Open(p.InputPath)
	if err != nil {
		log.Fatalf("error while opening the input file on path %s: %s", p.InputPath, err.Error())
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Fatalf("error closing the input file: %s", err.Error())
		}
	}()

	if p.OutputLen == -1 {
		if _, err := io.Copy(os.Stdout, f); err != nil {
			log.Fatalf("error writing to stdout: %s", err.Error())
		}
		return
	}

	if _, err := io.CopyN(os.Stdout, f, p.OutputLen); err != nil {
		log.Fatalf("error writing to stdout: %s", err.Error())
	}
}
