package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/wiregrid/internal/ctxlog"
	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/wireframe"
)

// Run executes the parsing pipeline based on the provided configuration.
// Warnings are logged; errors are written out and reported via the return
// value.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	source, err := loadWireframe(cfg.WireframePath)
	if err != nil {
		return err
	}
	dsl, err := loadInteractions(cfg.InteractionsPath)
	if err != nil {
		return err
	}
	logger.Debug("Input loaded.", "wireframe", cfg.WireframePath, "interactions", cfg.InteractionsPath)

	res := wireframe.ParseAndMerge(source, dsl, a.opts)
	logger.Debug("Pipeline finished.",
		"scenes", len(res.AST.Scenes),
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	)

	for _, w := range res.Warnings {
		logger.Warn(w.String(), "code", string(w.Code))
	}
	if !res.Ok() {
		fmt.Fprintln(a.errW, diag.Format(res.Errors))
		return fmt.Errorf("parsing failed with %d error(s)", len(res.Errors))
	}

	switch cfg.OutputFormat {
	case "summary":
		return writeSummary(a.outW, res.AST)
	default:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.AST); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}

// writeSummary prints one line per scene with its element count.
func writeSummary(w io.Writer, ast element.AST) error {
	for _, s := range ast.Scenes {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s  %d elements\n", s.ID, title, s.Device, countElements(s.Elements)); err != nil {
			return err
		}
	}
	return nil
}

// countElements counts every node in the subtree, containers included.
func countElements(els []element.Element) int {
	n := 0
	for _, el := range els {
		n++
		switch e := el.(type) {
		case element.Box:
			n += countElements(e.Children)
		case element.Row:
			n += countElements(e.Children)
		case element.Section:
			n += countElements(e.Children)
		}
	}
	return n
}
