package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/wiregrid/internal/geom"
)

func TestSeverityOf(t *testing.T) {
	errorCodes := []Code{
		CodeUnclosedBox, CodeMismatchedWidth, CodeMisalignedPipe, CodeOverlappingBoxes,
		CodeInvalidElement, CodeUnclosedBracket, CodeEmptyButton, CodeInvalidInteractionDSL,
		CodeSceneNotFound, CodeElementNotFound, CodeDuplicateInteraction,
	}
	for _, c := range errorCodes {
		assert.Equal(t, SeverityError, SeverityOf(c), string(c))
	}

	for _, c := range []Code{CodeUnusualSpacing, CodeDeepNesting} {
		assert.Equal(t, SeverityWarning, SeverityOf(c), string(c))
	}
}

func TestStringEmbedsContext(t *testing.T) {
	testCases := []struct {
		name     string
		d        Diagnostic
		contains []string
	}{
		{
			name:     "unclosed box",
			d:        UnclosedBox(geom.Position{Row: 2, Col: 0}, "bottom"),
			contains: []string{"UnclosedBox", "(2,0)", "bottom"},
		},
		{
			name:     "mismatched width",
			d:        MismatchedWidth(geom.Position{Row: 0, Col: 0}, 12, 10),
			contains: []string{"MismatchedWidth", "12", "10"},
		},
		{
			name:     "misaligned pipe",
			d:        MisalignedPipe(geom.Position{Row: 3, Col: 5}, 4, 5),
			contains: []string{"MisalignedPipe", "column 5", "expected column 4"},
		},
		{
			name:     "overlap names both boxes",
			d:        OverlappingBoxes("Login", "", geom.Position{Row: 1, Col: 8}),
			contains: []string{"OverlappingBoxes", "Login", "(unnamed)"},
		},
		{
			name:     "scene not found",
			d:        SceneNotFound("checkout"),
			contains: []string{"SceneNotFound", "checkout"},
		},
		{
			name:     "element not found",
			d:        ElementNotFound("home", "submit"),
			contains: []string{"ElementNotFound", "home", "submit"},
		},
		{
			name:     "duplicate interaction",
			d:        DuplicateInteraction("home", "email"),
			contains: []string{"DuplicateInteraction", "home", "email"},
		},
		{
			name:     "deep nesting is a warning",
			d:        DeepNesting(geom.Position{Row: 9, Col: 9}, 6, 16),
			contains: []string{"warning", "DeepNesting", "6"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := tc.d.String()
			assert.False(t, strings.Contains(line, "\n"), "must be a single line")
			for _, want := range tc.contains {
				assert.Contains(t, line, want)
			}
		})
	}
}

func TestFormatJoinsInInputOrder(t *testing.T) {
	ds := []Diagnostic{
		SceneNotFound("a"),
		SceneNotFound("b"),
	}
	out := Format(ds)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"a"`)
	assert.Contains(t, lines[1], `"b"`)
}

func TestSplitAndHasErrors(t *testing.T) {
	ds := []Diagnostic{
		UnusualSpacing(geom.Position{}, 9),
		SceneNotFound("x"),
		DeepNesting(geom.Position{}, 6, 16),
	}

	errs, warns := Split(ds)
	assert.Len(t, errs, 1)
	assert.Len(t, warns, 2)
	assert.True(t, HasErrors(ds))
	assert.False(t, HasErrors(warns))
}
