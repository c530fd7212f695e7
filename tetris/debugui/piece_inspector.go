package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/tetris"
)

func NewPieceInspectorComponent() PieceInspectorComponent {
	return PieceInspectorComponent{showPreviews: true}
}

func (pi *PieceInspectorComponent) Render(piece *tetris.Piece) {
	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Kind: %s", piece.Kind()))
	imgui.Text(fmt.Sprintf("Rotation: %d", piece.Rotation()))
	imgui.Text(fmt.Sprintf("TopLeft: (%d, %d)", piece.TopLeft.Row, piece.TopLeft.Col))
	imgui.Text(fmt.Sprintf("Skirt: %v", piece.Skirt()))

	imgui.Separator()
	renderMask(piece.Shape())

	if imgui.Button("Rotate CW") {
		piece.RotateClockwise()
	}
	imgui.SameLine()
	if imgui.Button("Rotate CCW") {
		piece.RotateCounterclockwise()
	}

	imgui.Separator()
	imgui.Checkbox("Show rotation previews", &pi.showPreviews)
	if pi.showPreviews {
		cw, cwNext := piece.NextClockwise()
		if imgui.TreeNodeStr(fmt.Sprintf("Clockwise -> rotation %d", cwNext)) {
			renderMask(cw)
			imgui.TreePop()
		}

		ccw, ccwNext := piece.NextCounterclockwise()
		if imgui.TreeNodeStr(fmt.Sprintf("Counterclockwise -> rotation %d", ccwNext)) {
			renderMask(ccw)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func renderMask(shape tetris.Shape) {
	var sb strings.Builder
	for row := 0; row < tetris.ShapeSize; row++ {
		sb.Reset()
		for col := 0; col < tetris.ShapeSize; col++ {
			if shape.At(row, col) {
				sb.WriteByte('o')
			} else {
				sb.WriteByte('.')
			}
		}
		imgui.Text(sb.String())
	}
}
