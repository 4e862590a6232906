package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/wiregrid/internal/element"
)

// Defaults for every tunable.
const (
	DefaultTabWidth           = 4
	DefaultMaxNestingDepth    = 16
	DefaultWarnNestingDepth   = 5
	DefaultAlignmentTolerance = 1
)

// Options carries every tunable of the parsing pipeline.
type Options struct {
	// TabWidth is the number of columns a tab expands to in the grid.
	TabWidth int

	// MaxNestingDepth is the hard cutoff for nested boxes; subtrees past
	// it are skipped with a warning.
	MaxNestingDepth int

	// WarnNestingDepth is the depth past which nesting is reported as a
	// warning while still being parsed.
	WarnNestingDepth int

	// AlignmentTolerance is the column slack allowed when deciding
	// whether an element is centered.
	AlignmentTolerance int

	// DevicePresets maps extra @device names to viewports, keyed by
	// lowercase name. They shadow the built-in presets.
	DevicePresets map[string]element.Device
}

// Default returns the options used when no file is given.
func Default() Options {
	return Options{
		TabWidth:           DefaultTabWidth,
		MaxNestingDepth:    DefaultMaxNestingDepth,
		WarnNestingDepth:   DefaultWarnNestingDepth,
		AlignmentTolerance: DefaultAlignmentTolerance,
	}
}

// hclRoot is the top-level structure of an options file.
type hclRoot struct {
	Parser  *hclParserBlock   `hcl:"parser,block"`
	Devices []*hclDeviceBlock `hcl:"device,block"`
}

type hclParserBlock struct {
	TabWidth           *int `hcl:"tab_width,optional"`
	MaxNestingDepth    *int `hcl:"max_nesting_depth,optional"`
	WarnNestingDepth   *int `hcl:"warn_nesting_depth,optional"`
	AlignmentTolerance *int `hcl:"alignment_tolerance,optional"`
}

type hclDeviceBlock struct {
	Name   string `hcl:"name,label"`
	Width  int    `hcl:"width"`
	Height int    `hcl:"height"`
}

// Load parses an options file and overlays it on the defaults.
func Load(path string) (Options, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file: %w", err)
	}
	return LoadBytes(path, src)
}

// LoadBytes decodes options from in-memory HCL source. The filename only
// labels diagnostics.
func LoadBytes(filename string, src []byte) (Options, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Options{}, fmt.Errorf("failed to parse options file %s: %w", filename, diags)
	}

	var root hclRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return Options{}, fmt.Errorf("failed to decode options file %s: %w", filename, diags)
	}

	opts := Default()
	if p := root.Parser; p != nil {
		if p.TabWidth != nil {
			opts.TabWidth = *p.TabWidth
		}
		if p.MaxNestingDepth != nil {
			opts.MaxNestingDepth = *p.MaxNestingDepth
		}
		if p.WarnNestingDepth != nil {
			opts.WarnNestingDepth = *p.WarnNestingDepth
		}
		if p.AlignmentTolerance != nil {
			opts.AlignmentTolerance = *p.AlignmentTolerance
		}
	}

	for _, d := range root.Devices {
		if opts.DevicePresets == nil {
			opts.DevicePresets = make(map[string]element.Device)
		}
		name := strings.ToLower(strings.TrimSpace(d.Name))
		opts.DevicePresets[name] = element.Device{
			Kind:   element.DeviceKind(name),
			Width:  d.Width,
			Height: d.Height,
		}
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid options in %s: %w", filename, err)
	}
	return opts, nil
}

// Validate checks every field and reports all violations at once.
func (o Options) Validate() error {
	var problems []string

	if o.TabWidth < 1 {
		problems = append(problems, fmt.Sprintf("tab_width must be at least 1, got %d", o.TabWidth))
	}
	if o.MaxNestingDepth < 1 {
		problems = append(problems, fmt.Sprintf("max_nesting_depth must be at least 1, got %d", o.MaxNestingDepth))
	}
	if o.WarnNestingDepth < 1 {
		problems = append(problems, fmt.Sprintf("warn_nesting_depth must be at least 1, got %d", o.WarnNestingDepth))
	}
	if o.WarnNestingDepth > o.MaxNestingDepth {
		problems = append(problems, fmt.Sprintf("warn_nesting_depth (%d) must not exceed max_nesting_depth (%d)", o.WarnNestingDepth, o.MaxNestingDepth))
	}
	if o.AlignmentTolerance < 0 {
		problems = append(problems, fmt.Sprintf("alignment_tolerance must not be negative, got %d", o.AlignmentTolerance))
	}
	for name, d := range o.DevicePresets {
		if d.Width < 1 || d.Height < 1 {
			problems = append(problems, fmt.Sprintf("device %q must have positive dimensions, got %dx%d", name, d.Width, d.Height))
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
