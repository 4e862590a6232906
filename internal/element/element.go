package element

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wiregrid/internal/geom"
)

// Align is the horizontal placement of an element inside its enclosing
// bounds.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Emphasis marks how a Text leaf should be styled.
type Emphasis string

const (
	EmphasisNone   Emphasis = ""
	EmphasisStrong Emphasis = "strong"
	EmphasisCode   Emphasis = "code"
)

// Action is a single behavior bound to an element, e.g.
// "@click -> goto(dashboard, push)".
type Action struct {
	Event string
	Name  string
	Args  []string
}

// Properties is the typed key/value payload attached to an element by the
// interaction DSL.
type Properties map[string]cty.Value

// Element is the closed union of everything that can appear in a scene
// tree. Only the types in this package implement it.
type Element interface {
	element()
}

// Box is a bordered rectangular container, optionally named via the
// +--Name--+ border syntax.
type Box struct {
	Name       string
	Bounds     geom.Bounds
	Children   []Element
	Properties Properties
	Actions    []Action
}

// Button is an interactive element rendered from "[ Label ]".
type Button struct {
	ID         string
	Text       string
	Position   geom.Position
	Align      Align
	Properties Properties
	Actions    []Action
}

// Input is a form field rendered from "#id", with an optional placeholder.
type Input struct {
	ID          string
	Placeholder string
	Position    geom.Position
	Properties  Properties
	Actions     []Action
}

// Link is an interactive element rendered from a double-quoted label.
type Link struct {
	ID         string
	Text       string
	Position   geom.Position
	Align      Align
	Properties Properties
	Actions    []Action
}

// Checkbox is rendered from "[x] Label" or "[ ] Label".
type Checkbox struct {
	Checked  bool
	Label    string
	Position geom.Position
}

// Text is the unconditional fallback leaf. Blank content is legal and acts
// as a zero-width spacer.
type Text struct {
	Content  string
	Emphasis Emphasis
	Position geom.Position
	Align    Align
}

// Divider is a horizontal rule line inside a container.
type Divider struct {
	Position geom.Position
}

// Spacer is an intentionally blank line inside a container.
type Spacer struct {
	Position geom.Position
}

// Row groups elements that share one source row.
type Row struct {
	Children []Element
	Align    Align
}

// Section groups the siblings following a "== Name ==" heading.
type Section struct {
	Name       string
	Children   []Element
	Properties Properties
	Actions    []Action
}

func (Box) element()      {}
func (Button) element()   {}
func (Input) element()    {}
func (Link) element()     {}
func (Checkbox) element() {}
func (Text) element()     {}
func (Divider) element()  {}
func (Spacer) element()   {}
func (Row) element()      {}
func (Section) element()  {}

// Scene is one screen of the wireframe.
type Scene struct {
	ID         string
	Title      string
	Transition string
	Device     Device
	Elements   []Element
}

// AST is the complete parsed document.
type AST struct {
	Scenes []Scene
}

// SceneIDs returns the scene identifiers in document order. The navigation
// runtime consumes these; nothing else is exposed to it.
func (a AST) SceneIDs() []string {
	ids := make([]string, len(a.Scenes))
	for i, s := range a.Scenes {
		ids[i] = s.ID
	}
	return ids
}
