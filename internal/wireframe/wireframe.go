package wireframe

import (
	"strings"

	"github.com/vk/wiregrid/internal/boxparse"
	"github.com/vk/wiregrid/internal/builder"
	"github.com/vk/wiregrid/internal/config"
	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/interaction"
	"github.com/vk/wiregrid/internal/merge"
	"github.com/vk/wiregrid/internal/recognize"
)

// Result carries the parsed tree and the diagnostics split by severity.
// The AST is usable whenever Errors is empty; warnings never block it.
type Result struct {
	AST      element.AST
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
}

// Ok reports whether the parse produced a usable AST.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

// Parse runs the structural pipeline over wireframe text.
func Parse(text string, opts config.Options) Result {
	reg := recognize.NewRegistry(recognize.Aligner{Tolerance: opts.AlignmentTolerance})
	parser := boxparse.New(reg, opts.MaxNestingDepth, opts.WarnNestingDepth)
	b := builder.New(parser, opts.TabWidth, opts.DevicePresets)

	ast, ds := b.Build(strings.Split(text, "\n"))
	errs, warns := diag.Split(ds)
	return Result{AST: ast, Errors: errs, Warnings: warns}
}

// ParseAndMerge parses the wireframe, then parses the interaction DSL and
// merges it in. Interactions written before any @scene header target the
// first scene. Merge failures keep the unmerged AST in the result so
// callers can still inspect the structure.
func ParseAndMerge(text, dsl string, opts config.Options) Result {
	res := Parse(text, opts)
	if dsl == "" {
		return res
	}

	bundles, ds := interaction.Parse(dsl)
	errs, warns := diag.Split(ds)
	res.Errors = append(res.Errors, errs...)
	res.Warnings = append(res.Warnings, warns...)

	if len(res.AST.Scenes) > 0 {
		first := res.AST.Scenes[0].ID
		for i := range bundles {
			if bundles[i].SceneID == "" {
				bundles[i].SceneID = first
			}
		}
	}

	merged, mergeDiags := merge.Merge(res.AST, bundles)
	mergeErrs, mergeWarns := diag.Split(mergeDiags)
	res.Errors = append(res.Errors, mergeErrs...)
	res.Warnings = append(res.Warnings, mergeWarns...)
	if len(mergeErrs) == 0 {
		res.AST = merged
	}
	return res
}
