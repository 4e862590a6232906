package builder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vk/wiregrid/internal/boxparse"
	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/grid"
	"github.com/vk/wiregrid/internal/recognize"
)

// Builder assembles scenes from wireframe source lines.
type Builder struct {
	parser   *boxparse.Parser
	tabWidth int
	presets  map[string]element.Device
}

// New constructs a Builder around a structural parser. presets may be nil,
// in which case only the builtin devices resolve.
func New(parser *boxparse.Parser, tabWidth int, presets map[string]element.Device) *Builder {
	return &Builder{parser: parser, tabWidth: tabWidth, presets: presets}
}

var directiveRe = regexp.MustCompile(`^@(scene|title|device|transition):\s*(.*)$`)

// sceneChunk is one scene's worth of source lines plus its directives.
type sceneChunk struct {
	lines      []string
	id         string
	title      string
	device     string
	transition string
	hasContent bool
}

// Build splits the source on "---" separator lines, parses each chunk's
// grid and folds the results into the AST. Element positions are relative
// to the owning chunk's grid, so a scene renders the same wherever it sits
// in the file. Chunks with no content, such as a trailing separator,
// produce no scene.
func (b *Builder) Build(lines []string) (element.AST, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var scenes []element.Scene

	for _, chunk := range splitChunks(lines) {
		if !chunk.hasContent {
			continue
		}

		id := recognize.Slugify(chunk.id)
		if id == "" {
			id = fmt.Sprintf("scene-%d", len(scenes)+1)
		}

		g := grid.FromLines(chunk.lines, b.tabWidth)
		elements, chunkDiags := b.parser.Parse(g)
		ds = append(ds, chunkDiags...)

		scenes = append(scenes, element.Scene{
			ID:         id,
			Title:      chunk.title,
			Transition: chunk.transition,
			Device:     element.ParseDevice(chunk.device, b.presets),
			Elements:   elements,
		})
	}

	return element.AST{Scenes: scenes}, ds
}

// splitChunks cuts the source on literal "---" lines and pulls the
// directives out of each chunk. Directive lines are blanked rather than
// removed so row numbers stay stable.
func splitChunks(lines []string) []sceneChunk {
	var chunks []sceneChunk
	var current sceneChunk

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "---" {
			chunks = append(chunks, current)
			current = sceneChunk{}
			continue
		}

		if m := directiveRe.FindStringSubmatch(trimmed); m != nil {
			value := strings.TrimSpace(m[2])
			switch m[1] {
			case "scene":
				current.id = value
			case "title":
				current.title = value
			case "device":
				current.device = value
			case "transition":
				current.transition = value
			}
			current.hasContent = true
			current.lines = append(current.lines, "")
			continue
		}

		if trimmed != "" {
			current.hasContent = true
		}
		current.lines = append(current.lines, line)
	}
	chunks = append(chunks, current)

	return chunks
}
