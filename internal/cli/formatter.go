package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/UnTypeBeats/DuTop/internal/dutop"
)

// Column widths for the human-readable table.
const (
	barWidth  = 30
	sizeWidth = 8
	pctWidth  = 6
	nameWidth = 30
)

// jsonEntry is one ranked directory in JSON output.
type jsonEntry struct {
	Path       string  `json:"path"`
	Size       int64   `json:"size"`
	SizeHuman  string  `json:"size_human"`
	Percentage float64 `json:"percentage"`
	FileCount  int64   `json:"file_count"`
	DirCount   int64   `json:"dir_count"`
}

// jsonResult is the JSON output envelope.
type jsonResult struct {
	Path           string      `json:"path"`
	TotalSize      int64       `json:"total_size"`
	TotalSizeHuman string      `json:"total_size_human"`
	FileCount      int64       `json:"file_count"`
	DirectoryCount int64       `json:"directory_count"`
	SkippedEntries int64       `json:"skipped_entries"`
	TopDirectories []jsonEntry `json:"top_directories"`
}

// PrintJSON outputs the analysis result in JSON format.
func PrintJSON(result *dutop.Result, writer io.Writer) error {
	out := jsonResult{
		Path:           filepath.ToSlash(result.RootPath),
		TotalSize:      result.TotalSize,
		TotalSizeHuman: humanize.IBytes(uint64(result.TotalSize)), //nolint:gosec // Sizes are never negative
		FileCount:      result.TotalFiles,
		DirectoryCount: result.TotalDirs,
		SkippedEntries: result.SkippedEntries,
		TopDirectories: make([]jsonEntry, 0, len(result.TopDirectories)),
	}

	for _, dir := range result.TopDirectories {
		out.TopDirectories = append(out.TopDirectories, jsonEntry{
			Path:       filepath.ToSlash(dir.Path),
			Size:       dir.Size,
			SizeHuman:  humanize.IBytes(uint64(dir.Size)), //nolint:gosec // Sizes are never negative
			Percentage: percentage(dir.Size, result.TotalSize),
			FileCount:  dir.Files,
			DirCount:   dir.Dirs,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable renders the ranked directories as a bar-chart table
// followed by a totals summary.
func PrintTable(result *dutop.Result, writer io.Writer, useColor bool) error {
	fmt.Fprintf(writer, "\nAnalyzing: %s\n\n", result.RootPath)

	if len(result.TopDirectories) == 0 {
		fmt.Fprintln(writer, "No files found")
	} else {
		maxSize := result.TopDirectories[0].Size

		printBorder(writer, true)

		for _, dir := range result.TopDirectories {
			printRow(writer, dir, maxSize, result.TotalSize, useColor)
		}

		printBorder(writer, false)
	}

	fmt.Fprintf(writer, "\nTotal: %s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalSize)), result.TotalSize) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(writer, "Files: %d  Directories: %d\n", result.TotalFiles, result.TotalDirs)

	if result.SkippedEntries > 0 {
		fmt.Fprintf(writer, "Skipped %d entries due to errors\n", result.SkippedEntries)
	}

	fmt.Fprintf(writer, "Elapsed: %v\n", result.Elapsed)

	return nil
}

// printRow prints one directory row: bar, size, percent of total, name.
func printRow(writer io.Writer, dir dutop.DirectoryEntry, maxSize, totalSize int64, useColor bool) {
	fill := 0
	if maxSize > 0 {
		fill = int(float64(dir.Size) / float64(maxSize) * barWidth)
	}

	if fill > barWidth {
		fill = barWidth
	}

	filled := strings.Repeat("█", fill)
	if useColor {
		filled = barColor(fill).Sprint(filled)
	}

	bar := filled + strings.Repeat("░", barWidth-fill)

	// Truncate on runes so multi-byte names stay valid UTF-8.
	name := filepath.Base(dir.Path)
	if runes := []rune(name); len(runes) > nameWidth {
		name = string(runes[:nameWidth-3]) + "..."
	}

	fmt.Fprintf(writer, "│ %s │ %*s │ %*s │ %-*s │\n",
		bar,
		sizeWidth, humanize.IBytes(uint64(dir.Size)), //nolint:gosec // Sizes are never negative
		pctWidth, fmt.Sprintf("%.1f%%", percentage(dir.Size, totalSize)),
		nameWidth, name)
}

// barColor picks the row color by how full the bar is.
func barColor(fill int) *color.Color {
	switch {
	case fill >= barWidth/2:
		return color.New(color.FgRed)
	case fill >= barWidth*33/100:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// printBorder prints the top or bottom table border.
func printBorder(writer io.Writer, top bool) {
	left, mid, right := "└", "┴", "┘"
	if top {
		left, mid, right = "┌", "┬", "┐"
	}

	fmt.Fprintln(writer, left+
		strings.Repeat("─", barWidth+2)+mid+
		strings.Repeat("─", sizeWidth+2)+mid+
		strings.Repeat("─", pctWidth+2)+mid+
		strings.Repeat("─", nameWidth+2)+right)
}

// percentage returns part's share of total as a value in [0, 100].
func percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return 100 * float64(part) / float64(total)
}
