// Command vimlfmt reads a VimL script, parses it, and prints the
// canonical rendering back out (or, with -lua, the Lua translation).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"vimlc.dev/viml"
)

func main() {
	lua := flag.Bool("lua", false, "translate to Lua instead of pretty-printing")
	flag.Parse()

	var in *os.File
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	var lines []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root, err := viml.ParseCommands(viml.DefaultOptions(), viml.Lines(lines))
	if err != nil {
		fmt.Fprintln(os.Stderr, "vimlfmt:", err)
	}

	if *lua {
		fmt.Print(viml.Translate(root))
		return
	}
	out, err := viml.PrintString(root, viml.DefaultPrinterOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}
