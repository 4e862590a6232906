package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
)

func testRegistry() *Registry {
	return NewRegistry(Aligner{Tolerance: DefaultTolerance})
}

func wideBounds(t *testing.T) geom.Bounds {
	t.Helper()
	b, err := geom.NewBounds(0, 0, 10, 60)
	require.NoError(t, err)
	return b
}

func TestTryParseButton(t *testing.T) {
	reg := testRegistry()

	el, ds := reg.TryParse("[ Login ]", geom.Position{Row: 1, Col: 2}, wideBounds(t))
	require.Empty(t, ds)

	btn, ok := el.(element.Button)
	require.True(t, ok, "expected Button, got %T", el)
	assert.Equal(t, "login", btn.ID)
	assert.Equal(t, "Login", btn.Text)
	assert.Equal(t, geom.Position{Row: 1, Col: 2}, btn.Position)
}

func TestTryParseButtonSlugsMultiWordLabel(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse("[ Submit Form ]", geom.Position{}, wideBounds(t))
	btn, ok := el.(element.Button)
	require.True(t, ok)
	assert.Equal(t, "submit-form", btn.ID)
}

func TestBlankButtonFallsThroughToText(t *testing.T) {
	reg := testRegistry()

	el, ds := reg.TryParse("[  ]", geom.Position{Row: 0, Col: 0}, wideBounds(t))

	txt, ok := el.(element.Text)
	require.True(t, ok, "expected Text fallback, got %T", el)
	assert.Equal(t, "[  ]", txt.Content)

	require.Len(t, ds, 1)
	assert.Equal(t, diag.CodeEmptyButton, ds[0].Code)
}

func TestUnclosedBracketSurfacesDiagnostic(t *testing.T) {
	reg := testRegistry()

	el, ds := reg.TryParse("[ Login", geom.Position{Row: 2, Col: 3}, wideBounds(t))

	_, ok := el.(element.Text)
	require.True(t, ok)
	require.Len(t, ds, 1)
	assert.Equal(t, diag.CodeUnclosedBracket, ds[0].Code)
	assert.Equal(t, geom.Position{Row: 2, Col: 3}, ds[0].Subject)
}

func TestTryParseInput(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse("#email", geom.Position{Row: 3, Col: 4}, wideBounds(t))
	in, ok := el.(element.Input)
	require.True(t, ok, "expected Input, got %T", el)
	assert.Equal(t, "email", in.ID)
	assert.Empty(t, in.Placeholder)
}

func TestTryParseInputWithPlaceholder(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse("#email you@example.com", geom.Position{}, wideBounds(t))
	in, ok := el.(element.Input)
	require.True(t, ok)
	assert.Equal(t, "email", in.ID)
	assert.Equal(t, "you@example.com", in.Placeholder)
}

func TestTryParseCheckbox(t *testing.T) {
	reg := testRegistry()

	testCases := []struct {
		text    string
		checked bool
		label   string
	}{
		{text: "[x] Accept terms", checked: true, label: "Accept terms"},
		{text: "[X] Accept terms", checked: true, label: "Accept terms"},
		{text: "[ ] Subscribe", checked: false, label: "Subscribe"},
		{text: "[x]", checked: true, label: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			el, ds := reg.TryParse(tc.text, geom.Position{}, wideBounds(t))
			require.Empty(t, ds)

			cb, ok := el.(element.Checkbox)
			require.True(t, ok, "expected Checkbox, got %T", el)
			assert.Equal(t, tc.checked, cb.Checked)
			assert.Equal(t, tc.label, cb.Label)
		})
	}
}

func TestTryParseLink(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse(`"Forgot password?"`, geom.Position{}, wideBounds(t))
	ln, ok := el.(element.Link)
	require.True(t, ok, "expected Link, got %T", el)
	assert.Equal(t, "forgot-password", ln.ID)
	assert.Equal(t, "Forgot password?", ln.Text)
}

func TestEmptyLinkFallsThroughToText(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse(`""`, geom.Position{}, wideBounds(t))
	_, ok := el.(element.Text)
	assert.True(t, ok, "expected Text fallback, got %T", el)
}

func TestTryParseEmphasisAndCode(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse("'Welcome back'", geom.Position{}, wideBounds(t))
	txt, ok := el.(element.Text)
	require.True(t, ok)
	assert.Equal(t, element.EmphasisStrong, txt.Emphasis)
	assert.Equal(t, "Welcome back", txt.Content)

	el, _ = reg.TryParse("* Important", geom.Position{}, wideBounds(t))
	txt, ok = el.(element.Text)
	require.True(t, ok)
	assert.Equal(t, element.EmphasisStrong, txt.Emphasis)
	assert.Equal(t, "Important", txt.Content)

	el, _ = reg.TryParse("`npm install`", geom.Position{}, wideBounds(t))
	txt, ok = el.(element.Text)
	require.True(t, ok)
	assert.Equal(t, element.EmphasisCode, txt.Emphasis)
	assert.Equal(t, "npm install", txt.Content)
}

func TestFallbackTextAbsorbsAnything(t *testing.T) {
	reg := testRegistry()

	el, ds := reg.TryParse("just some words", geom.Position{Row: 5, Col: 1}, wideBounds(t))
	require.Empty(t, ds)

	txt, ok := el.(element.Text)
	require.True(t, ok)
	assert.Equal(t, "just some words", txt.Content)
	assert.Equal(t, element.EmphasisNone, txt.Emphasis)
	assert.Equal(t, element.AlignLeft, txt.Align)
}

func TestFallbackTextOnBlank(t *testing.T) {
	reg := testRegistry()

	el, _ := reg.TryParse("   ", geom.Position{Row: 0, Col: 0}, wideBounds(t))
	txt, ok := el.(element.Text)
	require.True(t, ok)
	assert.Empty(t, txt.Content)
}

// staticRecognizer lets tests exercise runtime registration and ordering.
type staticRecognizer struct {
	name     string
	priority int
	result   element.Element
}

func (s staticRecognizer) Name() string             { return s.name }
func (s staticRecognizer) Priority() int            { return s.priority }
func (s staticRecognizer) QuickTest(string) bool    { return true }
func (s staticRecognizer) Parse(string, geom.Position, geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	return s.result, nil, true
}

func TestRegisterCustomRecognizerRespectsPriority(t *testing.T) {
	reg := testRegistry()
	marker := element.Text{Content: "custom"}
	reg.Register(staticRecognizer{name: "shortcode", priority: 200, result: marker})

	el, _ := reg.TryParse("[ Login ]", geom.Position{}, wideBounds(t))
	assert.Equal(t, marker, el, "priority 200 must preempt the button recognizer")
}

func TestExactlyOneRecognizerApplies(t *testing.T) {
	reg := testRegistry()

	// A quoted bracketed label: button wins at priority 100, link never runs.
	el, _ := reg.TryParse("[ Sign up ]", geom.Position{}, wideBounds(t))
	_, isButton := el.(element.Button)
	assert.True(t, isButton)
}
