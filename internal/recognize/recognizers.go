package recognize

import (
	"regexp"
	"strings"

	"github.com/vk/wiregrid/internal/diag"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/geom"
)

// buttonRecognizer matches "[ Label ]". The whole trimmed segment must be
// one bracketed expression; interactive elements require non-empty text.
type buttonRecognizer struct {
	al Aligner
}

func (buttonRecognizer) Name() string  { return "button" }
func (buttonRecognizer) Priority() int { return PriorityButton }

func (buttonRecognizer) QuickTest(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "[")
}

var checkboxMark = regexp.MustCompile(`^[ xX]$`)

func (b buttonRecognizer) Parse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(trimmed, "]") {
		return nil, []diag.Diagnostic{diag.UnclosedBracket(pos)}, false
	}
	if !strings.HasSuffix(trimmed, "]") {
		// Bracket closed mid-segment: checkbox territory.
		return nil, nil, false
	}

	label := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if checkboxMark.MatchString(label) || label == "" && len(trimmed) == 3 {
		// "[x]" and "[ ]" belong to the checkbox recognizer.
		return nil, nil, false
	}
	if label == "" {
		return nil, []diag.Diagnostic{diag.EmptyButton(pos)}, false
	}

	return element.Button{
		ID:       Slugify(label),
		Text:     label,
		Position: pos,
		Align:    b.al.Align(text, pos, bounds, StrategyRespectPosition),
	}, nil, true
}

// inputRecognizer matches "#id", optionally followed by placeholder text.
type inputRecognizer struct{}

func (inputRecognizer) Name() string  { return "input" }
func (inputRecognizer) Priority() int { return PriorityInput }

func (inputRecognizer) QuickTest(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) > 1 && trimmed[0] == '#'
}

var inputRe = regexp.MustCompile(`^#([A-Za-z][A-Za-z0-9_-]*)(?:\s+(.*))?$`)

func (inputRecognizer) Parse(text string, pos geom.Position, _ geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	m := inputRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, nil, false
	}
	return element.Input{
		ID:          Slugify(m[1]),
		Placeholder: strings.TrimSpace(m[2]),
		Position:    pos,
	}, nil, true
}

// checkboxRecognizer matches "[x] Label" and "[ ] Label". Exactly one mark
// character between the brackets; "[  ]" is not a checkbox.
type checkboxRecognizer struct{}

func (checkboxRecognizer) Name() string  { return "checkbox" }
func (checkboxRecognizer) Priority() int { return PriorityCheckbox }

var checkboxRe = regexp.MustCompile(`^\[([ xX])\]\s*(.*)$`)

func (checkboxRecognizer) QuickTest(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) >= 3 && trimmed[0] == '[' && trimmed[2] == ']'
}

func (checkboxRecognizer) Parse(text string, pos geom.Position, _ geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	m := checkboxRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, nil, false
	}
	return element.Checkbox{
		Checked:  m[1] == "x" || m[1] == "X",
		Label:    strings.TrimSpace(m[2]),
		Position: pos,
	}, nil, true
}

// linkRecognizer matches a double-quoted label.
type linkRecognizer struct {
	al Aligner
}

func (linkRecognizer) Name() string  { return "link" }
func (linkRecognizer) Priority() int { return PriorityLink }

func (linkRecognizer) QuickTest(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`)
}

func (l linkRecognizer) Parse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	trimmed := strings.TrimSpace(text)
	label := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if label == "" {
		return nil, nil, false
	}
	return element.Link{
		ID:       Slugify(label),
		Text:     label,
		Position: pos,
		Align:    l.al.Align(text, pos, bounds, StrategyRespectPosition),
	}, nil, true
}

// codeTextRecognizer matches backtick-wrapped text.
type codeTextRecognizer struct {
	al Aligner
}

func (codeTextRecognizer) Name() string  { return "code-text" }
func (codeTextRecognizer) Priority() int { return PriorityCodeText }

func (codeTextRecognizer) QuickTest(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, "`") && strings.HasSuffix(trimmed, "`")
}

func (c codeTextRecognizer) Parse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	trimmed := strings.TrimSpace(text)
	content := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if content == "" {
		return nil, nil, false
	}
	return element.Text{
		Content:  content,
		Emphasis: element.EmphasisCode,
		Position: pos,
		Align:    c.al.Align(text, pos, bounds, StrategyRespectPosition),
	}, nil, true
}

// emphasisRecognizer matches 'Label' and "* Label".
type emphasisRecognizer struct {
	al Aligner
}

func (emphasisRecognizer) Name() string  { return "emphasis" }
func (emphasisRecognizer) Priority() int { return PriorityEmphasis }

var starEmphasisRe = regexp.MustCompile(`^\*\s+(.+)$`)

func (emphasisRecognizer) QuickTest(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "'") && strings.HasSuffix(trimmed, "'") {
		return true
	}
	return strings.HasPrefix(trimmed, "* ")
}

func (e emphasisRecognizer) Parse(text string, pos geom.Position, bounds geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	trimmed := strings.TrimSpace(text)

	var content string
	if strings.HasPrefix(trimmed, "'") && strings.HasSuffix(trimmed, "'") && len(trimmed) >= 2 {
		content = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	} else if m := starEmphasisRe.FindStringSubmatch(trimmed); m != nil {
		content = strings.TrimSpace(m[1])
	}
	if content == "" {
		return nil, nil, false
	}

	return element.Text{
		Content:  content,
		Emphasis: element.EmphasisStrong,
		Position: pos,
		Align:    e.al.Align(text, pos, bounds, StrategyRespectPosition),
	}, nil, true
}

// textRecognizer is the unconditional fallback. Blank content is legal and
// acts as a zero-width spacer.
type textRecognizer struct{}

func (textRecognizer) Name() string  { return "text" }
func (textRecognizer) Priority() int { return PriorityText }

func (textRecognizer) QuickTest(string) bool { return true }

func (textRecognizer) Parse(text string, pos geom.Position, _ geom.Bounds) (element.Element, []diag.Diagnostic, bool) {
	return element.Text{
		Content:  strings.TrimSpace(text),
		Position: pos,
		Align:    element.AlignLeft,
	}, nil, true
}
