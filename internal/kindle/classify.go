package kindle

import (
	"strings"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// Metadata line prefixes as Kindle writes them. The check is an exact,
// case-sensitive prefix match rather than a substring search: a line that
// merely mentions "Your Highlight" somewhere is not a highlight.
const (
	highlightPrefix = "- Your Highlight"
	notePrefix      = "- Your Note"
	bookmarkPrefix  = "- Your Bookmark"
)

// Classify decides what kind of clip a metadata line introduces. Lines
// matching none of the known prefixes classify as ClipTypeUnrecognized.
func Classify(info string) entities.ClipType {
	switch {
	case strings.HasPrefix(info, highlightPrefix):
		return entities.ClipTypeHighlight
	case strings.HasPrefix(info, notePrefix):
		return entities.ClipTypeNote
	case strings.HasPrefix(info, bookmarkPrefix):
		return entities.ClipTypeBookmark
	default:
		return entities.ClipTypeUnrecognized
	}
}
