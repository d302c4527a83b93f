// Command symtensorcli is a minimal consumer of the symtensor library: it
// loads a serialized tensor and shows it working end to end, the same
// role the teacher's examples/ directory plays for lvlath, grounded on
// guda's cmd/compare flag-based subcommand style (flag.NewFlagSet per
// subcommand, no third-party CLI framework).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/symtensor/serialize"
	"github.com/katalvlaran/symtensor/tensor"
)

// cliName is the concrete axis-name type symtensorcli operates over: every
// tensor it loads was named with plain strings, since a file on disk
// carries no Go type information to parse a richer Name back into.
type cliName string

func (n cliName) String() string { return string(n) }

func parseCLIName(s string) (cliName, error) { return cliName(s), nil }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "inspect":
		err = runInspect(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "symtensorcli:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: symtensorcli inspect [-text] <file>")
	fmt.Fprintln(os.Stderr, "       symtensorcli dump [-text] [-out path] <file>")
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	text := fs.Bool("text", false, "input file is in DumpText format (default: DumpBinary)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect requires exactly one file argument")
	}

	t, err := loadTensor(fs.Arg(0), *text)
	if err != nil {
		return err
	}

	fmt.Printf("rank: %d\n", t.Rank())
	for i, name := range t.Names {
		e := t.Core.Edges[i]
		fmt.Printf("  axis %q: %d segments, arrow=%v, dim=%d\n", name.String(), len(e.Segments), e.Arrow, e.TotalDim())
	}
	fmt.Printf("blocks: %d\n", len(t.Core.Index.Entries))
	fmt.Printf("storage length: %d\n", len(t.Core.Storage))
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	text := fs.Bool("text", false, "input file is in DumpText format (default: DumpBinary)")
	out := fs.String("out", "", "output path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("dump requires exactly one file argument")
	}

	t, err := loadTensor(fs.Arg(0), *text)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		return serialize.DumpText(f, t)
	}
	return serialize.DumpText(w, t)
}

func loadTensor(path string, text bool) (*tensor.Tensor[float64, cliName], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if text {
		return serialize.LoadText[float64, cliName](f, parseCLIName)
	}
	return serialize.LoadBinary[float64, cliName](f, parseCLIName)
}
