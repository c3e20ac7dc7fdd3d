package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	epub "github.com/The-Ducktor/epubie-lib"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epubinfo",
		Short: "Inspect EPUB files from the command line",
		Long: `epubinfo prints the metadata, chapter structure, and table of contents
of an EPUB file, and can extract its cover image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newInfoCmd(), newChaptersCmd(), newTOCCmd(), newCoverCmd())
	return cmd
}

// loggerFromFlags validates the persistent logging flags and builds the
// command's logger.
func loggerFromFlags(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	if _, err := parseLogLevel(levelName); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("--log-format must be \"text\" or \"json\", got %q", format)
	}

	return buildLogger(cmd.ErrOrStderr(), levelName, format), nil
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", name)
	}
}

// buildLogger constructs a slog logger writing to w. Unknown levels fall
// back to info; the format comparison is case-insensitive.
func buildLogger(w io.Writer, levelName, format string) *slog.Logger {
	level, err := parseLogLevel(levelName)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func openBook(cmd *cobra.Command, path string) (*epub.Epub, *slog.Logger, error) {
	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	book, err := epub.Open(path)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("parsed epub",
		"path", path,
		"files", book.FileCount(),
		"chapters", book.ChapterCount())
	return book, logger, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the book's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := openBook(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:       %s\n", book.Title())
			fmt.Fprintf(out, "Creators:    %s\n", strings.Join(book.Creators(), ", "))
			fmt.Fprintf(out, "Language:    %s\n", book.Language())
			fmt.Fprintf(out, "Identifier:  %s\n", book.Identifier())
			fmt.Fprintf(out, "Date:        %s\n", book.Date())
			fmt.Fprintf(out, "Publisher:   %s\n", book.Publisher())
			fmt.Fprintf(out, "Rights:      %s\n", book.Rights())
			fmt.Fprintf(out, "Tags:        %s\n", strings.Join(book.Tags(), ", "))
			fmt.Fprintf(out, "Cover ID:    %s\n", book.CoverID())
			fmt.Fprintf(out, "Files:       %d\n", book.FileCount())
			fmt.Fprintf(out, "Chapters:    %d\n", book.ChapterCount())
			if desc := book.Description(); desc != "" {
				fmt.Fprintf(out, "Description: %s\n", desc)
			}
			return nil
		},
	}
}

func newChaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters FILE",
		Short: "Print the chapter structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := openBook(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, ch := range book.Chapters() {
				fmt.Fprintf(out, "%d. %s (%d files)\n", i+1, ch.Title, ch.FileCount())
				for _, f := range ch.Files {
					fmt.Fprintf(out, "   - %s (%s)\n", f.ID, f.Href)
				}
			}
			return nil
		},
	}
}

func newTOCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc FILE",
		Short: "Print the table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := openBook(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range book.TableOfContents().Entries() {
				indent := strings.Repeat("  ", e.Level)
				fmt.Fprintf(out, "%s%s -> %s\n", indent, e.Title, e.Href)
			}
			return nil
		},
	}
}

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover FILE",
		Short: "Extract the cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			maxWidth, _ := cmd.Flags().GetInt("max-width")
			if maxWidth < 0 {
				return fmt.Errorf("--max-width must be >= 0, got %d", maxWidth)
			}

			book, logger, err := openBook(cmd, args[0])
			if err != nil {
				return err
			}

			data := book.CoverBytes()
			if data == nil {
				return fmt.Errorf("no cover image found in %s", args[0])
			}

			if err := writeCover(data, output, maxWidth); err != nil {
				return err
			}
			logger.Info("cover written", "output", output, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "cover.jpg", "Output file path")
	cmd.Flags().Int("max-width", 0, "Scale the cover down to this width (0 keeps the original)")
	return cmd
}

// writeCover writes the cover image to outPath. With maxWidth 0 the bytes
// are written unchanged; otherwise the image is decoded, scaled down to
// maxWidth when wider, and re-encoded in the format implied by outPath's
// extension.
func writeCover(data []byte, outPath string, maxWidth int) error {
	if maxWidth == 0 {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write cover: %w", err)
		}
		return nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode cover: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, outPath); err != nil {
		return fmt.Errorf("save cover: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
