// Command perft prints a reference perft count using the same
// `<fen> <depth>` contract perftcheck expects from an engine, so it can stand
// in for a known-good engine when checking the harness itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/reference"
)

func main() {
	backend := flag.String("reference", reference.Dragontooth, fmt.Sprintf("move generator %v", reference.Names()))
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <fen> <depth>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	fen := flag.Arg(0)
	depth, err := strconv.Atoi(flag.Arg(1))
	if err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "depth must be a non-negative integer, got %q\n", flag.Arg(1))
		os.Exit(2)
	}

	ref, err := reference.ByName(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if *divide {
		div, err := ref.Divide(context.Background(), fen, depth)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		lines, total := reference.SortedDivide(div)
		for _, l := range lines {
			fmt.Printf("%s: %d\n", l.Move, l.Nodes)
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	nodes, err := ref.Perft(context.Background(), fen, depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(nodes)
}
