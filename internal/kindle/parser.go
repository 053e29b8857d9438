package kindle

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
)

// clipLines is the fixed window size of one entry in My Clippings.txt:
// source, metadata, blank, content, delimiter.
const clipLines = 5

// UnrecognizedClipError reports a 5-line window whose metadata line matches
// neither the highlight, note nor bookmark prefix. It carries the window's
// starting line number and the captured raw fields so the bad entry can be
// located in the source file.
type UnrecognizedClipError struct {
	Line int
	Raw  entities.RawClip
}

func (e *UnrecognizedClipError) Error() string {
	return fmt.Sprintf("unrecognized clip kind at line %d: %q", e.Line, e.Raw.Info)
}

// ErrorSink receives non-fatal parse failures from the segmenter. A failed
// window never aborts the run; it is reported here and skipped.
type ErrorSink interface {
	Report(err *UnrecognizedClipError)
}

// ErrorLog is the default ErrorSink: it collects every reported failure in
// arrival order.
type ErrorLog struct {
	Errors []*UnrecognizedClipError
}

func (l *ErrorLog) Report(err *UnrecognizedClipError) {
	l.Errors = append(l.Errors, err)
}

// ParseRawClip converts one raw 5-line window into a Clip. Source and
// Content are carried over verbatim; page, location, date and time come from
// the field extractors applied to the metadata line. Fails with
// *UnrecognizedClipError when the metadata line classifies as neither
// highlight, note nor bookmark. A missing or unparseable date or time is
// not a failure: those fields simply stay nil.
func ParseRawClip(raw entities.RawClip) (entities.Clip, error) {
	clipType := Classify(raw.Info)
	if clipType == entities.ClipTypeUnrecognized {
		return entities.Clip{}, &UnrecognizedClipError{Raw: raw}
	}

	return entities.Clip{
		Type:     clipType,
		Source:   raw.Source,
		Page:     ExtractPage(raw.Info),
		Location: ExtractLocation(raw.Info),
		Date:     ExtractDate(raw.Info),
		Time:     ExtractTime(raw.Info),
		Content:  raw.Content,
	}, nil
}

// Parser segments a My Clippings.txt stream into fixed 5-line windows and
// parses each window into a Clip.
type Parser struct {
	// CollectBookmarks retains bookmark clips in Extraction.Bookmarks.
	// Off by default: bookmarks carry no text and are normally discarded.
	CollectBookmarks bool

	// Sink receives unrecognized-window reports. Defaults to a throwaway
	// ErrorLog, so callers who want the reports must provide their own.
	Sink ErrorSink

	// DroppedLines is set by Parse to the number of trailing lines that
	// did not form a complete window (0 for a well-formed file).
	DroppedLines int
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the stream line by line, grouping lines into consecutive
// non-overlapping 5-line windows. Lines one through four of a window are
// buffered; the fifth is the delimiter and triggers parsing and dispatch,
// after which the buffer resets regardless of outcome. Trailing lines that
// do not complete a window are dropped. The only fatal error is a reader
// failure; malformed windows go to the sink and processing continues.
func (p *Parser) Parse(r io.Reader) (*entities.Extraction, error) {
	sink := p.Sink
	if sink == nil {
		sink = &ErrorLog{}
	}

	extraction := &entities.Extraction{}
	scanner := bufio.NewScanner(r)

	var window []string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if len(window) < clipLines-1 {
			window = append(window, line)
			continue
		}

		// Fifth line of the window: treat it as the delimiter and
		// dispatch the completed entry.
		raw := entities.RawClip{
			Source:    window[0],
			Info:      window[1],
			Blank:     window[2],
			Content:   window[3],
			Delimiter: line,
		}
		window = window[:0]

		clip, err := ParseRawClip(raw)
		if err != nil {
			var unrecognized *UnrecognizedClipError
			if errors.As(err, &unrecognized) {
				unrecognized.Line = lineNo - (clipLines - 1)
				sink.Report(unrecognized)
				continue
			}
			return nil, err
		}

		switch clip.Type {
		case entities.ClipTypeHighlight:
			extraction.Highlights = append(extraction.Highlights, clip)
		case entities.ClipTypeNote:
			extraction.Notes = append(extraction.Notes, clip)
		case entities.ClipTypeBookmark:
			if p.CollectBookmarks {
				extraction.Bookmarks = append(extraction.Bookmarks, clip)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading clippings: %w", err)
	}

	// A truncated file leaves a partial window behind; those lines are
	// dropped rather than reported as a broken entry.
	p.DroppedLines = len(window)

	return extraction, nil
}
