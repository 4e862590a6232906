package merge

import (
	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/interaction"
	"github.com/vk/wiregrid/internal/recognize"
)

// Merge validates every interaction bundle against the AST and, when all
// of them resolve, returns a new AST with properties and actions attached.
// On any error the original AST is returned unchanged alongside the full
// list of problems.
func Merge(ast element.AST, bundles []interaction.SceneInteractions) (element.AST, []diag.Diagnostic) {
	if len(bundles) == 0 {
		return ast, nil
	}

	sceneIdx := make(map[string]int, len(ast.Scenes))
	for i, s := range ast.Scenes {
		sceneIdx[s.ID] = i
	}

	// Group interactions per scene so duplicates across bundles are caught
	// too, then validate everything before touching the tree. Scenes are
	// validated in the order the bundles first name them, so repeated runs
	// report problems identically.
	bySceneID := make(map[string][]interaction.Interaction)
	var order []string
	var ds []diag.Diagnostic

	for _, b := range bundles {
		if _, ok := sceneIdx[b.SceneID]; !ok {
			ds = append(ds, diag.SceneNotFound(b.SceneID))
			continue
		}
		if _, grouped := bySceneID[b.SceneID]; !grouped {
			order = append(order, b.SceneID)
		}
		bySceneID[b.SceneID] = append(bySceneID[b.SceneID], b.Interactions...)
	}

	for _, sceneID := range order {
		its := bySceneID[sceneID]
		known := collectIDs(ast.Scenes[sceneIdx[sceneID]].Elements)
		seen := make(map[string]bool, len(its))
		for _, it := range its {
			if seen[it.ElementID] {
				ds = append(ds, diag.DuplicateInteraction(sceneID, it.ElementID))
				continue
			}
			seen[it.ElementID] = true
			if !known[it.ElementID] {
				ds = append(ds, diag.ElementNotFound(sceneID, it.ElementID))
			}
		}
	}

	if len(ds) > 0 {
		return ast, ds
	}

	out := element.AST{Scenes: make([]element.Scene, len(ast.Scenes))}
	for i, s := range ast.Scenes {
		its := bySceneID[s.ID]
		if len(its) == 0 {
			out.Scenes[i] = s
			continue
		}
		byElement := make(map[string]interaction.Interaction, len(its))
		for _, it := range its {
			byElement[it.ElementID] = it
		}
		s.Elements = apply(s.Elements, byElement)
		out.Scenes[i] = s
	}
	return out, nil
}

// collectIDs gathers every addressable element id in the subtree. Buttons,
// inputs and links carry explicit ids; named boxes and sections are
// addressable through the slug of their display name.
func collectIDs(els []element.Element) map[string]bool {
	ids := make(map[string]bool)
	walkIDs(els, ids)
	return ids
}

func walkIDs(els []element.Element, ids map[string]bool) {
	for _, el := range els {
		switch e := el.(type) {
		case element.Button:
			ids[e.ID] = true
		case element.Input:
			ids[e.ID] = true
		case element.Link:
			ids[e.ID] = true
		case element.Box:
			if slug := recognize.Slugify(e.Name); slug != "" {
				ids[slug] = true
			}
			walkIDs(e.Children, ids)
		case element.Section:
			if slug := recognize.Slugify(e.Name); slug != "" {
				ids[slug] = true
			}
			walkIDs(e.Children, ids)
		case element.Row:
			walkIDs(e.Children, ids)
		}
	}
}

// apply rebuilds the element slice with interactions attached. Containers
// recurse; every element is copied by value so the source tree survives.
func apply(els []element.Element, byID map[string]interaction.Interaction) []element.Element {
	out := make([]element.Element, len(els))
	for i, el := range els {
		switch e := el.(type) {
		case element.Button:
			if it, ok := byID[e.ID]; ok {
				e.Properties = it.Properties
				e.Actions = it.Actions
			}
			out[i] = e
		case element.Input:
			if it, ok := byID[e.ID]; ok {
				e.Properties = it.Properties
				e.Actions = it.Actions
			}
			out[i] = e
		case element.Link:
			if it, ok := byID[e.ID]; ok {
				e.Properties = it.Properties
				e.Actions = it.Actions
			}
			out[i] = e
		case element.Box:
			if it, ok := byID[recognize.Slugify(e.Name)]; ok && e.Name != "" {
				e.Properties = it.Properties
				e.Actions = it.Actions
			}
			e.Children = apply(e.Children, byID)
			out[i] = e
		case element.Section:
			if it, ok := byID[recognize.Slugify(e.Name)]; ok && e.Name != "" {
				e.Properties = it.Properties
				e.Actions = it.Actions
			}
			e.Children = apply(e.Children, byID)
			out[i] = e
		case element.Row:
			e.Children = apply(e.Children, byID)
			out[i] = e
		default:
			out[i] = el
		}
	}
	return out
}
