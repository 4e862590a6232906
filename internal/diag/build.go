package diag

import "github.com/vk/wiregrid/internal/geom"

// Constructors for each variant. Keeping the context keys here, next to the
// String switch, stops call sites from inventing their own.

func UnclosedBox(corner geom.Position, direction string) Diagnostic {
	return Diagnostic{Code: CodeUnclosedBox, Subject: corner, Context: map[string]any{
		"direction": direction,
	}}
}

func MismatchedWidth(topLeft geom.Position, topWidth, bottomWidth int) Diagnostic {
	return Diagnostic{Code: CodeMismatchedWidth, Subject: topLeft, Context: map[string]any{
		"topWidth":    topWidth,
		"bottomWidth": bottomWidth,
	}}
}

func MisalignedPipe(pos geom.Position, expected, actual int) Diagnostic {
	return Diagnostic{Code: CodeMisalignedPipe, Subject: pos, Context: map[string]any{
		"expected": expected,
		"actual":   actual,
	}}
}

func OverlappingBoxes(box1Name, box2Name string, pos geom.Position) Diagnostic {
	return Diagnostic{Code: CodeOverlappingBoxes, Subject: pos, Context: map[string]any{
		"box1": box1Name,
		"box2": box2Name,
	}}
}

func EmptyButton(pos geom.Position) Diagnostic {
	return Diagnostic{Code: CodeEmptyButton, Subject: pos}
}

func UnclosedBracket(pos geom.Position) Diagnostic {
	return Diagnostic{Code: CodeUnclosedBracket, Subject: pos}
}

func InvalidElement(pos geom.Position, text string) Diagnostic {
	return Diagnostic{Code: CodeInvalidElement, Subject: pos, Context: map[string]any{
		"text": text,
	}}
}

func InvalidInteractionDSL(pos geom.Position, detail string) Diagnostic {
	return Diagnostic{Code: CodeInvalidInteractionDSL, Subject: pos, Context: map[string]any{
		"detail": detail,
	}}
}

func UnusualSpacing(pos geom.Position, gap int) Diagnostic {
	return Diagnostic{Code: CodeUnusualSpacing, Subject: pos, Context: map[string]any{
		"gap": gap,
	}}
}

func DeepNesting(pos geom.Position, depth, limit int) Diagnostic {
	return Diagnostic{Code: CodeDeepNesting, Subject: pos, Context: map[string]any{
		"depth": depth,
		"limit": limit,
	}}
}

func SceneNotFound(sceneID string) Diagnostic {
	return Diagnostic{Code: CodeSceneNotFound, Context: map[string]any{
		"scene": sceneID,
	}}
}

func ElementNotFound(sceneID, elementID string) Diagnostic {
	return Diagnostic{Code: CodeElementNotFound, Context: map[string]any{
		"scene":   sceneID,
		"element": elementID,
	}}
}

func DuplicateInteraction(sceneID, elementID string) Diagnostic {
	return Diagnostic{Code: CodeDuplicateInteraction, Context: map[string]any{
		"scene":   sceneID,
		"element": elementID,
	}}
}
