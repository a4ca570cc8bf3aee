package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jessevdk/go-flags"
	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"

	"github.com/gopacker/atlaspack"
)

// cliOptions mirrors the options.rs usage string of the program this tool
// replaces: width/height (or a single size for both), flipping, trim,
// incremental growth, output directory, work-dir retention, and an
// optional YAML file that layers additional defaults underneath the
// explicit flags.
type cliOptions struct {
	Config           string `short:"c" long:"config" description:"YAML file providing defaults for any flag not given explicitly"`
	Out              string `short:"o" long:"out" default:"./out" description:"Output directory for results, overwrites existing files"`
	Width            uint32 `short:"w" long:"width" default:"512" description:"Atlas width"`
	Height           uint32 `short:"h" long:"height" default:"512" description:"Atlas height"`
	Size             uint32 `short:"s" long:"size" description:"Atlas width and height (overrides --width/--height)"`
	Flipping         bool   `short:"f" long:"flipping" description:"Allow placement of sprites rotated by 90 degrees"`
	Trim             bool   `short:"t" long:"trim" description:"Trim resulting atlases to minimal size"`
	IncrementsCount  uint8  `short:"i" long:"increments-count" description:"Incremental atlas growth steps (0 disables growth)"`
	KeepWorkDir      bool   `short:"k" long:"keep-work-dir" description:"Do not delete temporary files after work"`
	Demo             int    `long:"demo" description:"Ignore positional files and pack N randomly generated placeholder sprites instead"`
	Heuristics       []string `long:"heuristics" description:"Limit packing to these heuristics by name (default: all); repeatable"`
	Args             struct {
		Files []string `positional-arg-name:"files"`
	} `positional-args:"yes"`
}

// fileConfig is the shape of a --config YAML file: every field optional,
// so it only supplies defaults for flags the caller didn't pass on the
// command line.
type fileConfig struct {
	Out             *string `yaml:"out"`
	Width           *uint32 `yaml:"width"`
	Height          *uint32 `yaml:"height"`
	Size            *uint32 `yaml:"size"`
	Flipping        *bool   `yaml:"flipping"`
	Trim            *bool   `yaml:"trim"`
	IncrementsCount *uint8  `yaml:"increments_count"`
	KeepWorkDir     *bool   `yaml:"keep_work_dir"`
}

// parseArgs parses os.Args, then layers a --config YAML file (if any)
// underneath. go-flags writes each field's struct-tag default (or zero
// value) into every unset field, so a field counts as "unset" when it still
// holds that value: --config only fills such fields. A flag given on the
// command line with a value different from its default therefore wins over
// the file; one given with exactly its default value (e.g. --width=512) is
// overridden by the file.
func parseArgs(argv []string) (*cliOptions, error) {
	opts := &cliOptions{}
	parser := flags.NewParser(opts, flags.Default)
	remaining, err := parser.ParseArgs(argv)
	if err != nil {
		return nil, err
	}
	opts.Args.Files = append(opts.Args.Files, remaining...)

	if opts.Config != "" {
		if err := applyFileConfig(opts); err != nil {
			return nil, err
		}
	}

	if opts.Size != 0 {
		opts.Width, opts.Height = opts.Size, opts.Size
	}

	sort.Sort(natural.Strings(opts.Args.Files))
	return opts, nil
}

func applyFileConfig(opts *cliOptions) error {
	data, err := os.ReadFile(opts.Config)
	if err != nil {
		return fmt.Errorf("read config %s: %w", opts.Config, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", opts.Config, err)
	}

	if fc.Width != nil && opts.Width == 512 {
		opts.Width = *fc.Width
	}
	if fc.Height != nil && opts.Height == 512 {
		opts.Height = *fc.Height
	}
	if fc.Size != nil && opts.Size == 0 {
		opts.Size = *fc.Size
	}
	if fc.Out != nil && opts.Out == "./out" {
		opts.Out = *fc.Out
	}
	if fc.Flipping != nil && !opts.Flipping {
		opts.Flipping = *fc.Flipping
	}
	if fc.Trim != nil && !opts.Trim {
		opts.Trim = *fc.Trim
	}
	if fc.IncrementsCount != nil && opts.IncrementsCount == 0 {
		opts.IncrementsCount = *fc.IncrementsCount
	}
	if fc.KeepWorkDir != nil && !opts.KeepWorkDir {
		opts.KeepWorkDir = *fc.KeepWorkDir
	}
	return nil
}

// packOptions builds the core library's Options from the parsed CLI
// options, defaulting everything not covered by flags via creasty/defaults
// before overlaying the explicit values.
func (o *cliOptions) packOptions() (*atlaspack.Options, error) {
	po := atlaspack.NewOptions()
	po.BinWidth = o.Width
	po.BinHeight = o.Height
	po.Flipping = o.Flipping
	po.Trim = o.Trim
	po.AtlasCompactSteps = o.IncrementsCount

	if len(o.Heuristics) > 0 {
		selected := make([]atlaspack.Heuristic, 0, len(o.Heuristics))
		for _, name := range o.Heuristics {
			h, ok := atlaspack.ParseHeuristic(name)
			if !ok {
				return nil, fmt.Errorf("unknown heuristic %q", name)
			}
			selected = append(selected, h)
		}
		po.Heuristics = selected
	}
	return po, nil
}

// vim: ts=4
