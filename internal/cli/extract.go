package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonardosoteldo/kindle-highlights/internal/config"
	"github.com/leonardosoteldo/kindle-highlights/internal/entities"
	"github.com/leonardosoteldo/kindle-highlights/internal/exporters"
	"github.com/leonardosoteldo/kindle-highlights/internal/kindle"
)

// ExtractCommand converts a Kindle 'My Clippings.txt' file into formatted
// text, org-mode or JSON output.
type ExtractCommand struct {
	ClippingsPath  string
	OutputFile     string
	Format         string
	OnlyHighlights bool
	OnlyNotes      bool
	Bookmarks      bool
	Quiet          bool
	ConfigPath     string

	cfg *config.Config
}

func NewExtractCommand() *ExtractCommand {
	return &ExtractCommand{}
}

func (cmd *ExtractCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("kindle-highlights", flag.ExitOnError)

	fs.StringVar(&cmd.OutputFile, "output-file", "", "Output file for the rendered clips (default: standard output)")
	fs.StringVar(&cmd.Format, "format", "", "Output format: text, org or json (default: text)")
	fs.BoolVar(&cmd.OnlyHighlights, "highlights", false, "Render highlights only (combine with -notes to render both)")
	fs.BoolVar(&cmd.OnlyNotes, "notes", false, "Render notes only (combine with -highlights to render both)")
	fs.BoolVar(&cmd.Bookmarks, "bookmarks", false, "Also collect and render bookmark clips")
	fs.BoolVar(&cmd.Quiet, "quiet", false, "Don't print any progress message")
	fs.StringVar(&cmd.ConfigPath, "config", "", "Path to a config file (default: kindle-highlights.yaml in . or $HOME)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <clippings-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert Kindle highlights into formatted text, org-mode or JSON entries.\n\n")
		fmt.Fprintf(os.Stderr, "The clippings file is typically found at:\n")
		fmt.Fprintf(os.Stderr, "  /Volumes/Kindle/documents/My Clippings.txt\n\n")
		fmt.Fprintf(os.Stderr, "By default both highlights and notes are rendered as text to standard\n")
		fmt.Fprintf(os.Stderr, "output. Use the selector flags to restrict the output to one kind.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Render every highlight and note to stdout:\n")
		fmt.Fprintf(os.Stderr, "  %s \"My Clippings.txt\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Highlights only, as JSON, into a file:\n")
		fmt.Fprintf(os.Stderr, "  %s -highlights -format json -output-file highlights.json \"My Clippings.txt\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one clippings file argument, got %d", fs.NArg())
	}
	cmd.ClippingsPath = fs.Arg(0)

	cfg, err := config.NewConfig(cmd.ConfigPath)
	if err != nil {
		return err
	}
	cmd.cfg = cfg

	// Flags win over the config file; booleans can only be switched on.
	if cmd.Format == "" {
		cmd.Format = cfg.Format
	}
	cmd.Quiet = cmd.Quiet || cfg.Quiet
	cmd.Bookmarks = cmd.Bookmarks || cfg.CollectBookmarks

	return nil
}

func (cmd *ExtractCommand) Run() error {
	// Resolve the exporter up front so a bad -format fails before any
	// parsing work happens.
	exporter, err := exporters.ForFormat(cmd.Format, cmd.cfg.SeparatorWidth)
	if err != nil {
		return err
	}

	file, err := os.Open(cmd.ClippingsPath)
	if err != nil {
		return fmt.Errorf("failed to open clippings file: %w", err)
	}
	defer file.Close()

	errLog := &kindle.ErrorLog{}
	parser := kindle.NewParser()
	parser.CollectBookmarks = cmd.Bookmarks
	parser.Sink = errLog

	extraction, err := parser.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}

	if !cmd.Quiet {
		fmt.Printf("Processing '%s'.\n", cmd.ClippingsPath)
		if cmd.selectNotes() {
			fmt.Printf("Found %d notes.\n", len(extraction.Notes))
		}
		if cmd.selectHighlights() {
			fmt.Printf("Found %d highlights.\n", len(extraction.Highlights))
		}
		if cmd.Bookmarks {
			fmt.Printf("Found %d bookmarks.\n", len(extraction.Bookmarks))
		}
		if parser.DroppedLines > 0 {
			fmt.Printf("Dropped %d trailing lines that did not form a complete clip.\n", parser.DroppedLines)
		}
	}

	// Unrecognized clips are diagnostics, not progress: they go to stderr
	// even in quiet mode.
	for _, parseErr := range errLog.Errors {
		fmt.Fprintf(os.Stderr, "  [ERROR] %v\n", parseErr)
	}

	output, _, err := exporter.Export(cmd.selectClips(extraction))
	if err != nil {
		return err
	}

	return cmd.writeOutput(output)
}

func (cmd *ExtractCommand) selectHighlights() bool {
	return cmd.OnlyHighlights || !cmd.OnlyNotes
}

func (cmd *ExtractCommand) selectNotes() bool {
	return cmd.OnlyNotes || !cmd.OnlyHighlights
}

// selectClips picks the rendered subset. When both kinds are selected,
// notes come first, then highlights; collected bookmarks go last.
func (cmd *ExtractCommand) selectClips(extraction *entities.Extraction) []entities.Clip {
	var clips []entities.Clip
	if cmd.selectNotes() {
		clips = append(clips, extraction.Notes...)
	}
	if cmd.selectHighlights() {
		clips = append(clips, extraction.Highlights...)
	}
	if cmd.Bookmarks {
		clips = append(clips, extraction.Bookmarks...)
	}
	return clips
}

func (cmd *ExtractCommand) writeOutput(output string) error {
	if cmd.OutputFile == "" {
		fmt.Print(output)
		return nil
	}

	out, err := os.Create(cmd.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := out.WriteString(output); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
