package documents

import (
    "marknote/internal/store"
    "marknote/internal/tui/state"
    "marknote/internal/tui/util"
    chips "marknote/internal/tui/widgets/tagchips"
)

const titleWidth = 32

// EntryTags returns the chips shown next to a stored document.
func EntryTags(e store.Entry) []state.Tag {
    tags := make([]state.Tag, 0, 2)
    if e.IsFavorite {
        tags = append(tags, state.Tag{Kind: state.FAVORITE})
    }
    return append(tags, state.Tag{Kind: state.PAGES, Value: e.PageCount})
}

// RenderRow renders one list row: the padded title followed by its chips.
func RenderRow(title string, e store.Entry, noColor bool) string {
    return util.PadRight(util.Truncate(title, titleWidth), titleWidth) + " " + chips.View(EntryTags(e), noColor)
}
