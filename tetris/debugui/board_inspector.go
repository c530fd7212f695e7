package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/tetris"
)

func NewBoardInspectorComponent() BoardInspectorComponent {
	return BoardInspectorComponent{}
}

func (bi *BoardInspectorComponent) Render(board *tetris.Board) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := board.CollectStats()

	imgui.Text(fmt.Sprintf("Size: %d x %d", stats.Cols, stats.Rows))
	imgui.Text(fmt.Sprintf("Height Mode: %s", stats.Mode))
	imgui.Text(fmt.Sprintf("Occupied Cells: %d / %d", stats.OccupiedCells, stats.Rows*stats.Cols))

	imgui.Separator()
	imgui.Checkbox("Show kinds", &bi.showKinds)

	var sb strings.Builder
	for row := 0; row < stats.Rows; row++ {
		sb.Reset()
		for col := 0; col < stats.Cols; col++ {
			kind, ok := board.KindAt(row, col)
			switch {
			case !ok:
				sb.WriteByte('.')
			case bi.showKinds:
				sb.WriteString(kind.String())
			default:
				sb.WriteByte('o')
			}
		}
		imgui.Text(sb.String())
	}

	if imgui.TreeNodeStr("Row Fill") {
		renderFillTable("RowFillTable", "Row", stats.RowFill)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Column Fill") {
		renderFillTable("ColumnFillTable", "Column", stats.ColumnFill)
		imgui.TreePop()
	}

	imgui.End()
}

func renderFillTable(id, label string, fill []int) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn(label)
	imgui.TableSetupColumn("Filled")
	imgui.TableHeadersRow()

	for i, count := range fill {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", i))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", count))
	}

	imgui.EndTable()
}
