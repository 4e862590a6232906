package interaction

import (
	"regexp"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
	"github.com/vk/wiregrid/internal/recognize"
)

// Interaction is the parsed body of one selector: the element it targets
// plus the properties and actions to attach.
type Interaction struct {
	ElementID  string
	Properties element.Properties
	Actions    []element.Action
}

// SceneInteractions groups the interactions aimed at one scene. SceneID is
// empty for entries written before any @scene header; the caller resolves
// those against the first scene.
type SceneInteractions struct {
	SceneID      string
	Interactions []Interaction
}

var (
	sceneHeaderRe = regexp.MustCompile(`^@scene:\s*(.+)$`)
	inputSelRe    = regexp.MustCompile(`^#([A-Za-z][A-Za-z0-9_-]*):$`)
	buttonSelRe   = regexp.MustCompile(`^\[(.+)\]:$`)
	linkSelRe     = regexp.MustCompile(`^"(.+)":$`)
	propertyRe    = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*:\s*(.+)$`)
	actionRe      = regexp.MustCompile(`^@([A-Za-z][A-Za-z0-9_-]*)\s*->\s*([A-Za-z][A-Za-z0-9_.-]*)\s*(?:\((.*)\))?$`)
)

// Parse consumes interaction DSL source. Diagnostic positions are line and
// column indices into the source text.
func Parse(src string) ([]SceneInteractions, []diag.Diagnostic) {
	var bundles []SceneInteractions
	var ds []diag.Diagnostic

	current := SceneInteractions{}
	var open *Interaction

	closeSelector := func() {
		if open != nil {
			current.Interactions = append(current.Interactions, *open)
			open = nil
		}
	}
	closeScene := func() {
		closeSelector()
		if current.SceneID != "" || len(current.Interactions) > 0 {
			bundles = append(bundles, current)
		}
		current = SceneInteractions{}
	}

	for row, raw := range strings.Split(src, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		indented := trimmed != line
		pos := geom.Position{Row: row, Col: len(line) - len(trimmed)}

		if !indented {
			if m := sceneHeaderRe.FindStringSubmatch(trimmed); m != nil {
				closeScene()
				current.SceneID = recognize.Slugify(m[1])
				continue
			}

			closeSelector()
			id, ok := parseSelector(trimmed)
			if !ok {
				ds = append(ds, diag.InvalidInteractionDSL(pos, "expected a #id:, [Label]: or \"Label\": selector"))
				continue
			}
			open = &Interaction{ElementID: id}
			continue
		}

		if open == nil {
			ds = append(ds, diag.InvalidInteractionDSL(pos, "indented line outside a selector body"))
			continue
		}

		if m := actionRe.FindStringSubmatch(trimmed); m != nil {
			open.Actions = append(open.Actions, element.Action{
				Event: m[1],
				Name:  m[2],
				Args:  splitArgs(m[3]),
			})
			continue
		}

		if m := propertyRe.FindStringSubmatch(trimmed); m != nil {
			if open.Properties == nil {
				open.Properties = make(element.Properties)
			}
			open.Properties[m[1]] = parseValue(strings.TrimSpace(m[2]))
			continue
		}

		ds = append(ds, diag.InvalidInteractionDSL(pos, "expected a key: value property or an @event -> action line"))
	}
	closeScene()

	return bundles, ds
}

// parseSelector maps a selector header to the element id it targets.
// Button and link labels are slugified the same way the recognizers derive
// element ids, so the two sides meet on equal terms.
func parseSelector(line string) (string, bool) {
	if m := inputSelRe.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := buttonSelRe.FindStringSubmatch(line); m != nil {
		if id := recognize.Slugify(m[1]); id != "" {
			return id, true
		}
		return "", false
	}
	if m := linkSelRe.FindStringSubmatch(line); m != nil {
		if id := recognize.Slugify(m[1]); id != "" {
			return id, true
		}
		return "", false
	}
	return "", false
}

// parseValue types a raw property value: quoted text stays a string, then
// booleans, then numbers, and anything else falls back to a bare string.
func parseValue(raw string) cty.Value {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return cty.StringVal(raw[1 : len(raw)-1])
	}
	switch raw {
	case "true":
		return cty.True
	case "false":
		return cty.False
	}
	if v, err := cty.ParseNumberVal(raw); err == nil {
		return v
	}
	return cty.StringVal(raw)
}

// splitArgs splits a comma-separated argument list, trimming whitespace
// and surrounding quotes from each entry.
func splitArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p != "" {
			args = append(args, p)
		}
	}
	if len(args) == 0 {
		return nil
	}
	return args
}
