// Command atlaspack packs a set of sprite images into one or more texture
// atlases, trying every packing heuristic and keeping whichever produced
// the smallest total output.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gopacker/atlaspack/internal/atlasio"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "atlaspack:", err)
		os.Exit(2)
	}

	var sources []atlasio.Source
	if opts.Demo > 0 {
		wd, err := newWorkDir(opts.KeepWorkDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "atlaspack:", err)
			os.Exit(1)
		}
		defer wd.close()

		demoDir, err := wd.heuristicDir("demo-input")
		if err != nil {
			fmt.Fprintln(os.Stderr, "atlaspack:", err)
			os.Exit(1)
		}
		sources, err = generateDemoSources(demoDir, opts.Demo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "atlaspack:", err)
			os.Exit(1)
		}
	} else {
		if len(opts.Args.Files) == 0 {
			fmt.Fprintln(os.Stderr, "atlaspack: no input files given (use --demo N to try it without any)")
			os.Exit(2)
		}
		var err error
		sources, err = atlasio.LoadSources(opts.Args.Files)
		if err != nil {
			fmt.Fprintln(os.Stderr, "atlaspack:", err)
			os.Exit(1)
		}
	}

	if err := run(opts, sources, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "atlaspack:", err)
		os.Exit(1)
	}
}
