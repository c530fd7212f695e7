// Package debugui provides immediate-mode GUI inspectors for tetris
// boards and pieces using Dear ImGui. It renders occupancy grids, fill
// summaries, and rotation state through per-frame render items.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function. Add items to an
// Overlay to have their widgets rendered each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input
// before forwarding it to game controls.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects ImGui render items and draws them once per frame,
// refreshing the input capture state as it goes.
type Overlay struct {
	InputState ImguiInputState

	items []ImguiItem
}

// Add registers a render item with the overlay.
func (o *Overlay) Add(item ImguiItem) {
	o.items = append(o.items, item)
}

// Render updates the input capture state and runs every registered
// render item. Call between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
