package debugui

// BoardInspectorComponent renders a board's occupancy grid and fill
// summaries in an ImGui window.
type BoardInspectorComponent struct {
	showKinds bool
}

// PieceInspectorComponent renders a piece's kind, rotation state, mask,
// and skirt, with buttons to rotate it.
type PieceInspectorComponent struct {
	showPreviews bool
}
