package help

import (
    "marknote/internal/tui/state"
    overlay "marknote/internal/tui/widgets/helpoverlay"
)

// RenderHelp returns the grouped keys overlay content for the editor.
func RenderHelp(s state.EditorState) string {
    return overlay.NewHelpOverlay().View(s)
}
