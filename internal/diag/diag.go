package diag

import (
	"fmt"
	"strings"

	"github.com/vk/wiregrid/internal/geom"
)

// Code identifies one diagnostic variant.
type Code string

const (
	// Structural: hard for the affected box, siblings still parse.
	CodeUnclosedBox      Code = "UnclosedBox"
	CodeMismatchedWidth  Code = "MismatchedWidth"
	CodeMisalignedPipe   Code = "MisalignedPipe"
	CodeOverlappingBoxes Code = "OverlappingBoxes"

	// Syntax: hard for the specific leaf.
	CodeInvalidElement        Code = "InvalidElement"
	CodeUnclosedBracket       Code = "UnclosedBracket"
	CodeEmptyButton           Code = "EmptyButton"
	CodeInvalidInteractionDSL Code = "InvalidInteractionDSL"

	// Warnings: informational, never block output.
	CodeUnusualSpacing Code = "UnusualSpacing"
	CodeDeepNesting    Code = "DeepNesting"

	// Merge: collected exhaustively, any one fails the whole merge.
	CodeSceneNotFound        Code = "SceneNotFound"
	CodeElementNotFound      Code = "ElementNotFound"
	CodeDuplicateInteraction Code = "DuplicateInteraction"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// SeverityOf maps a code to its severity. This is the single source of
// truth; Diagnostic does not store severity.
func SeverityOf(c Code) Severity {
	switch c {
	case CodeUnusualSpacing, CodeDeepNesting:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Diagnostic is one reported problem. Subject is the primary grid position
// (zero value when the diagnostic is not position-based, e.g. merge
// errors). Context carries the code-specific data used by String.
type Diagnostic struct {
	Code    Code
	Subject geom.Position
	Context map[string]any
}

// Severity derives the severity from the code.
func (d Diagnostic) Severity() Severity { return SeverityOf(d.Code) }

func (d Diagnostic) ctxString(key string) string {
	if v, ok := d.Context[key]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

func (d Diagnostic) ctxInt(key string) int {
	if v, ok := d.Context[key].(int); ok {
		return v
	}
	return 0
}

// String renders the diagnostic as a single human-readable line embedding
// the violated rule name and its context.
func (d Diagnostic) String() string {
	switch d.Code {
	case CodeUnclosedBox:
		return fmt.Sprintf("%s: %s: box starting at %s has no closing %s border",
			d.Severity(), d.Code, d.Subject, d.ctxString("direction"))
	case CodeMismatchedWidth:
		return fmt.Sprintf("%s: %s: box starting at %s has top border width %d but bottom border width %d",
			d.Severity(), d.Code, d.Subject, d.ctxInt("topWidth"), d.ctxInt("bottomWidth"))
	case CodeMisalignedPipe:
		return fmt.Sprintf("%s: %s: vertical border at %s found in column %d, expected column %d",
			d.Severity(), d.Code, d.Subject, d.ctxInt("actual"), d.ctxInt("expected"))
	case CodeOverlappingBoxes:
		return fmt.Sprintf("%s: %s: box %q at %s overlaps box %q without containing it",
			d.Severity(), d.Code, nameOrAnon(d.ctxString("box2")), d.Subject, nameOrAnon(d.ctxString("box1")))
	case CodeEmptyButton:
		return fmt.Sprintf("%s: %s: button at %s has no label text", d.Severity(), d.Code, d.Subject)
	case CodeUnclosedBracket:
		return fmt.Sprintf("%s: %s: bracket opened at %s is never closed", d.Severity(), d.Code, d.Subject)
	case CodeInvalidElement:
		return fmt.Sprintf("%s: %s: cannot parse %q at %s", d.Severity(), d.Code, d.ctxString("text"), d.Subject)
	case CodeInvalidInteractionDSL:
		return fmt.Sprintf("%s: %s: line %d: %s", d.Severity(), d.Code, d.Subject.Row+1, d.ctxString("detail"))
	case CodeUnusualSpacing:
		return fmt.Sprintf("%s: %s: %d columns of spacing at %s", d.Severity(), d.Code, d.ctxInt("gap"), d.Subject)
	case CodeDeepNesting:
		return fmt.Sprintf("%s: %s: boxes nested %d levels deep at %s (limit %d)",
			d.Severity(), d.Code, d.ctxInt("depth"), d.Subject, d.ctxInt("limit"))
	case CodeSceneNotFound:
		return fmt.Sprintf("%s: %s: interactions reference scene %q which does not exist",
			d.Severity(), d.Code, d.ctxString("scene"))
	case CodeElementNotFound:
		return fmt.Sprintf("%s: %s: scene %q has no element with id %q",
			d.Severity(), d.Code, d.ctxString("scene"), d.ctxString("element"))
	case CodeDuplicateInteraction:
		return fmt.Sprintf("%s: %s: scene %q defines more than one interaction for element %q",
			d.Severity(), d.Code, d.ctxString("scene"), d.ctxString("element"))
	default:
		return fmt.Sprintf("%s: %s at %s", d.Severity(), d.Code, d.Subject)
	}
}

func nameOrAnon(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// Format joins one line per diagnostic, in input order.
func Format(ds []Diagnostic) string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Split partitions a list into errors and warnings, preserving order.
func Split(ds []Diagnostic) (errs, warns []Diagnostic) {
	for _, d := range ds {
		if d.Severity() == SeverityError {
			errs = append(errs, d)
		} else {
			warns = append(warns, d)
		}
	}
	return errs, warns
}

// HasErrors reports whether any diagnostic in the list is an error.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}
