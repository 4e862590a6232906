package element

import (
	"encoding/json"
	"fmt"

	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/wiregrid/internal/geom"
)

// The JSON shape is the renderer contract: every element carries a "kind"
// discriminator, positions are {row,col}, bounds are {top,left,bottom,right},
// and interaction property values keep their cty type through ctyjson.

func (p Properties) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("{}"), nil
	}
	out := make(map[string]json.RawMessage, len(p))
	for k, v := range p {
		raw, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out[k] = raw
	}
	return json.Marshal(out)
}

type positionJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type boundsJSON struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
	Right  int `json:"right"`
}

type actionJSON struct {
	Event string   `json:"event"`
	Name  string   `json:"name"`
	Args  []string `json:"args,omitempty"`
}

func posJSON(p geom.Position) positionJSON { return positionJSON{Row: p.Row, Col: p.Col} }

func bndJSON(b geom.Bounds) boundsJSON {
	return boundsJSON{Top: b.Top, Left: b.Left, Bottom: b.Bottom, Right: b.Right}
}

func actionsJSON(as []Action) []actionJSON {
	if len(as) == 0 {
		return nil
	}
	out := make([]actionJSON, len(as))
	for i, a := range as {
		out[i] = actionJSON{Event: a.Event, Name: a.Name, Args: a.Args}
	}
	return out
}

func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string       `json:"kind"`
		Name       string       `json:"name,omitempty"`
		Bounds     boundsJSON   `json:"bounds"`
		Children   []Element    `json:"children"`
		Properties Properties   `json:"properties,omitempty"`
		Actions    []actionJSON `json:"actions,omitempty"`
	}{"box", b.Name, bndJSON(b.Bounds), b.Children, b.Properties, actionsJSON(b.Actions)})
}

func (b Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string       `json:"kind"`
		ID         string       `json:"id"`
		Text       string       `json:"text"`
		Position   positionJSON `json:"position"`
		Align      Align        `json:"align"`
		Properties Properties   `json:"properties,omitempty"`
		Actions    []actionJSON `json:"actions,omitempty"`
	}{"button", b.ID, b.Text, posJSON(b.Position), b.Align, b.Properties, actionsJSON(b.Actions)})
}

func (i Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind        string       `json:"kind"`
		ID          string       `json:"id"`
		Placeholder string       `json:"placeholder,omitempty"`
		Position    positionJSON `json:"position"`
		Properties  Properties   `json:"properties,omitempty"`
		Actions     []actionJSON `json:"actions,omitempty"`
	}{"input", i.ID, i.Placeholder, posJSON(i.Position), i.Properties, actionsJSON(i.Actions)})
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string       `json:"kind"`
		ID         string       `json:"id"`
		Text       string       `json:"text"`
		Position   positionJSON `json:"position"`
		Align      Align        `json:"align"`
		Properties Properties   `json:"properties,omitempty"`
		Actions    []actionJSON `json:"actions,omitempty"`
	}{"link", l.ID, l.Text, posJSON(l.Position), l.Align, l.Properties, actionsJSON(l.Actions)})
}

func (c Checkbox) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string       `json:"kind"`
		Checked  bool         `json:"checked"`
		Label    string       `json:"label"`
		Position positionJSON `json:"position"`
	}{"checkbox", c.Checked, c.Label, posJSON(c.Position)})
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string       `json:"kind"`
		Content  string       `json:"content"`
		Emphasis Emphasis     `json:"emphasis,omitempty"`
		Position positionJSON `json:"position"`
		Align    Align        `json:"align"`
	}{"text", t.Content, t.Emphasis, posJSON(t.Position), t.Align})
}

func (d Divider) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string       `json:"kind"`
		Position positionJSON `json:"position"`
	}{"divider", posJSON(d.Position)})
}

func (s Spacer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string       `json:"kind"`
		Position positionJSON `json:"position"`
	}{"spacer", posJSON(s.Position)})
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string    `json:"kind"`
		Children []Element `json:"children"`
		Align    Align     `json:"align"`
	}{"row", r.Children, r.Align})
}

func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string       `json:"kind"`
		Name       string       `json:"name"`
		Children   []Element    `json:"children"`
		Properties Properties   `json:"properties,omitempty"`
		Actions    []actionJSON `json:"actions,omitempty"`
	}{"section", s.Name, s.Children, s.Properties, actionsJSON(s.Actions)})
}

func (d Device) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   DeviceKind `json:"kind"`
		Width  int        `json:"width"`
		Height int        `json:"height"`
	}{d.Kind, d.Width, d.Height})
}

func (s Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string    `json:"id"`
		Title      string    `json:"title,omitempty"`
		Transition string    `json:"transition,omitempty"`
		Device     Device    `json:"device"`
		Elements   []Element `json:"elements"`
	}{s.ID, s.Title, s.Transition, s.Device, s.Elements})
}

func (a AST) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Scenes []Scene `json:"scenes"`
	}{a.Scenes})
}
