// Package quota estimates staging-quota sizes for replicated folders. This
// is a standalone disk-usage helper with no status or threshold semantics.
package quota

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// topFileCount is the number of largest files the recommendation is based
// on, matching the replication engine's staging behavior.
const topFileCount = 32

// RecommendedMB walks the folder's content path and returns the recommended
// staging quota in whole megabytes: the byte sum of the 32 largest files,
// truncated.
func RecommendedMB(contentPath string) (int64, error) {
	sizes, err := fileSizes(contentPath)
	if err != nil {
		return 0, fmt.Errorf("failed to scan %q: %w", contentPath, err)
	}

	sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })
	if len(sizes) > topFileCount {
		sizes = sizes[:topFileCount]
	}

	var total int64
	for _, s := range sizes {
		total += s
	}
	return total / (1024 * 1024), nil
}

func fileSizes(root string) ([]int64, error) {
	var sizes []int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable entries are skipped, not fatal: a partial
			// recommendation beats none.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		sizes = append(sizes, info.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sizes, nil
}
