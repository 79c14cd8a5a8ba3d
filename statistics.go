package main

import (
	"path/filepath"

	"github.com/montanaflynn/stats"
)

type listingStatistics struct {
	NumFiles    int     `json:"numFiles"`
	TotalBytes  int64   `json:"totalBytes"`
	MeanBytes   float64 `json:"meanBytes"`
	StddevBytes float64 `json:"stddevBytes"`
}

// dirStatistics summarizes the regular files directly inside dir.
// Subdirectories contribute nothing; a child that cannot be stat'd is
// skipped rather than failing the whole listing.
func dirStatistics(fsys FileSystem, dir string, entries []dirEntry) listingStatistics {
	s := listingStatistics{}
	sizes := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		info, err := fsys.Stat(filepath.Join(dir, e.Name))
		if err != nil {
			continue
		}
		s.NumFiles++
		s.TotalBytes += info.Size()
		sizes = append(sizes, float64(info.Size()))
	}
	s.MeanBytes, _ = stats.Mean(sizes)
	s.StddevBytes, _ = stats.StandardDeviation(sizes)
	return s
}
