package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirtree/internal/dirtree"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *dirtree.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs statistics in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *dirtree.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	// Extension statistics
	fmt.Fprintln(w, "\nTop extensions:\t\t")
	extList := make([]string, 0, len(stats.ExtStats))
	for ext := range stats.ExtStats {
		extList = append(extList, ext)
	}
	sort.Slice(extList, func(i, j int) bool {
		ci, cj := stats.ExtStats[extList[i]].Count, stats.ExtStats[extList[j]].Count
		if ci != cj {
			return ci < cj
		}

		return extList[i] > extList[j]
	})

	startIdx := 0
	if len(extList) > stats.TopN {
		startIdx = len(extList) - stats.TopN
	}

	displayList := extList[startIdx:]
	for i, ext := range displayList {
		extStat := stats.ExtStats[ext]
		pct := 0.0
		if stats.DocumentCount > 0 {
			pct = 100.0 * float64(extStat.Count) / float64(stats.DocumentCount)
		}
		if ext == "" {
			ext = "\"\""
		}
		fmt.Fprintf(w, "  %d) %s:\t%s documents (%.1f%%)\n",
			len(displayList)-i, ext, humanize.Comma(extStat.Count), pct)
	}

	// Largest sub-trees
	fmt.Fprintln(w, "\nLargest sub-trees:\t\t")

	for i := 0; i < len(stats.TopFolders); i++ {
		f := stats.TopFolders[i]
		pct := 0.0
		if stats.Size > 0 {
			pct = 100.0 * float64(f.Size) / float64(stats.Size)
		}
		fmt.Fprintf(w, "  %d) '%s'\t%s entities (%.1f%%)\n",
			len(stats.TopFolders)-i, f.Path, humanize.Comma(int64(f.Size)), pct) //nolint:gosec // Sizes fit in int64
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Root:\t%s\n", stats.Root)
	fmt.Fprintf(w, "Total folders:\t%s\n", humanize.Comma(stats.FolderCount))
	fmt.Fprintf(w, "Total documents:\t%s\n", humanize.Comma(stats.DocumentCount))
	fmt.Fprintf(w, "Snapshot size:\t%s entities\n", humanize.Comma(int64(stats.Size))) //nolint:gosec // Sizes fit in int64
	if stats.MatchCount > 0 {
		fmt.Fprintf(w, "Matches:\t%s\n", humanize.Comma(stats.MatchCount))
	}
	fmt.Fprintf(w, "Build:\t%s\n", mode(stats.ParallelBuild))
	fmt.Fprintf(w, "Traversal:\t%s, %s strategy, %d cursor(s)\n", mode(stats.Parallel), stats.Strategy, stats.Cursors)
	if stats.Verified {
		fmt.Fprintln(w, "Verified:\tyes")
	}

	fmt.Fprintf(w, "\nBuild elapsed:\t%v\n", stats.BuildElapsed)
	fmt.Fprintf(w, "Traverse elapsed:\t%v\n", stats.TraverseElapsed)

	return w.Flush()
}

func mode(parallel bool) string {
	if parallel {
		return "parallel"
	}

	return "sequential"
}
