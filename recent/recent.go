// Package recent tracks recently played files and their last known position.
package recent

import (
	"sort"
	"time"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Entry is one recently played file.
type Entry struct {
	Path            string    `json:"path"`
	PositionSeconds int       `json:"position_seconds"`
	PlayedAt        time.Time `json:"played_at"`
}

// cacher provides the disk-backed registry of playback records.
var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// All returns every entry, most recently played first.
func All() ([]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return nil, nil
	}

	entries := lo.Values(cached)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PlayedAt.After(entries[j].PlayedAt)
	})
	return entries, nil
}

// Last returns the most recently played entry, if any.
func Last() (mo.Option[*Entry], error) {
	entries, err := All()
	if err != nil {
		return mo.None[*Entry](), err
	}
	if len(entries) == 0 {
		return mo.None[*Entry](), nil
	}
	return mo.Some(entries[0]), nil
}

// Touch records a playback of path at the given position, evicting the oldest
// entries beyond the configured registry size.
func Touch(path string, position int) error {
	if !viper.GetBool(key.RecentSaveOnPlay) {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*Entry)
	}

	cached[path] = &Entry{
		Path:            path,
		PositionSeconds: position,
		PlayedAt:        time.Now(),
	}

	limit := viper.GetInt(key.RecentSize)
	if limit > 0 && len(cached) > limit {
		entries := lo.Values(cached)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].PlayedAt.Before(entries[j].PlayedAt)
		})
		for _, entry := range entries[:len(cached)-limit] {
			delete(cached, entry.Path)
		}
	}

	return cacher.Set(cached)
}

// Clear wipes the registry.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}
