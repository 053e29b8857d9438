package entities

import "fmt"

type ClipType string

const (
	ClipTypeHighlight ClipType = "highlight"
	ClipTypeNote      ClipType = "note"
	ClipTypeBookmark  ClipType = "bookmark"

	// ClipTypeUnrecognized is the zero value returned for metadata lines
	// that match none of the known prefixes.
	ClipTypeUnrecognized ClipType = ""
)

// RawClip holds the five unparsed lines of a single clippings-file entry,
// in file order. It only lives for the duration of one window's parse.
type RawClip struct {
	Source    string // "Title (Author)" line
	Info      string // type, page, location and timestamp line
	Blank     string
	Content   string
	Delimiter string // "==========" run
}

// Clip is one parsed annotation. Page and Location hold 0 values (absent),
// 1 (single point) or 2 (range). The device is trusted on range ordering:
// first <= second is expected but not enforced.
type Clip struct {
	Type     ClipType   `json:"type"`
	Source   string     `json:"source"`
	Page     []int      `json:"page,omitempty"`
	Location []int      `json:"location,omitempty"`
	Date     *Date      `json:"date,omitempty"`
	Time     *TimeOfDay `json:"time,omitempty"`
	Content  string     `json:"content"`
}

// Extraction is the full result of parsing one clippings file. Slices keep
// file order. Bookmarks stays empty unless bookmark collection is enabled.
type Extraction struct {
	Highlights []Clip
	Notes      []Clip
	Bookmarks  []Clip
}

// Date is a calendar date without a time component. Kindle metadata lines
// carry date and time-of-day separately and either may fail to parse, so
// they are modelled as two independently optional values instead of one
// time.Time.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// TimeOfDay is a 24-hour wall-clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
