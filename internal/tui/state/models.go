package state

import "marknote/internal/markup"

// View is the screen currently shown.
type View int

const (
    EditorView View = iota
    FavoritesView
)

// Modal is the dialog drawn over the editor, if any.
type Modal int

const (
    NoModal Modal = iota
    LoadModal
    ColorModal
    SizeModal
    ConfirmNewModal
    DiffModal
    HelpModal
)

// EditorState is everything the editor screen owns. Reducers take it by value
// and return the next state; the markup engine itself holds no state.
type EditorState struct {
    // Document
    Buffer    string
    PageCount int
    Favorite  bool

    // Selection: Caret is the live cursor, Mark the anchor (-1 when unset).
    // Selection is derived from both after every move.
    Caret     int
    Mark      int
    Selection markup.Selection

    // Screen
    View   View
    Modal  Modal
    Cursor int // highlighted row in list modals and the favorites view
    Width  int

    // Notices and ephemeral messages
    Notice string
}

// NewEditorState returns a fresh placeholder document.
func NewEditorState() EditorState {
    return EditorState{
        Buffer:    markup.Placeholder,
        PageCount: 1,
        Mark:      -1,
    }
}

// Title is the derived title, or "Untitled" when the first line is blank.
func (s EditorState) Title() string {
    if t := markup.TitleOf(s.Buffer); t != "" {
        return t
    }
    return "Untitled"
}

func (s EditorState) HasMark() bool { return s.Mark >= 0 }
