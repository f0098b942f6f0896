// Package library resolves user queries against the configured media root.
package library

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Errors surfaced by query resolution.
var (
	ErrNoRoot  = errors.New("library root not configured")
	ErrNoMatch = errors.New("no media matches")
)

// Scan walks the media root and returns every playable file, sorted by path.
func Scan() ([]string, error) {
	root := viper.GetString(key.LibraryRoot)
	if root == "" {
		return nil, ErrNoRoot
	}

	extensions := lo.Map(viper.GetStringSlice(key.LibraryExtensions), func(ext string, _ int) string {
		return strings.ToLower(ext)
	})

	var files []string
	err := filesystem.API().Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if lo.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library root %s: %w", root, err)
	}

	return files, nil
}

// Match returns library files whose names fuzzy-match the query, best first.
// An empty query matches the whole library.
func Match(query string) ([]string, error) {
	files, err := Scan()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return files, nil
	}

	stems := lo.Map(files, func(path string, _ int) string {
		return filepath.Base(path)
	})

	ranks := fuzzy.RankFindNormalizedFold(query, stems)
	sort.Sort(ranks)

	return lo.Map(ranks, func(rank fuzzy.Rank, _ int) string {
		return files[rank.OriginalIndex]
	}), nil
}

// Resolve picks the single best match for the query.
func Resolve(query string) (string, error) {
	matches, err := Match(query)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
	return matches[0], nil
}

// Random picks a random file, optionally constrained by a query.
func Random(query string) (string, error) {
	matches, err := Match(query)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
	return matches[rand.Intn(len(matches))], nil
}
