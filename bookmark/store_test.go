package bookmark

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/couch-cli/couch/filesystem"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func newTestStore(name string) *Store {
	return NewStore("/stores/" + name)
}

func TestAddFind(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := newTestStore("addfind")

		Convey("When a bookmark is added", func() {
			err := store.Add(Bookmark{MediaPath: "/m/a.mkv", Name: "intro", OffsetSeconds: 120})
			So(err, ShouldBeNil)

			Convey("Then Find returns it", func() {
				found, err := store.Find("/m/a.mkv", "intro")
				So(err, ShouldBeNil)
				So(found.OffsetSeconds, ShouldEqual, 120)
			})

			Convey("And Find misses under a different name", func() {
				_, err := store.Find("/m/a.mkv", "outro")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestLastWins(t *testing.T) {
	Convey("Re-marking under an existing name appends, latest wins", t, func() {
		store := newTestStore("lastwins")

		So(store.Add(Bookmark{MediaPath: "/m/a.mkv", Name: "x", OffsetSeconds: 10}), ShouldBeNil)
		So(store.Add(Bookmark{MediaPath: "/m/a.mkv", Name: "x", OffsetSeconds: 20}), ShouldBeNil)

		found, err := store.Find("/m/a.mkv", "x")
		So(err, ShouldBeNil)
		So(found.OffsetSeconds, ShouldEqual, 20)

		Convey("And List preserves both historical records in order", func() {
			records, err := store.List("/m/a.mkv")
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 2)
			So(records[0].OffsetSeconds, ShouldEqual, 10)
			So(records[1].OffsetSeconds, ShouldEqual, 20)
		})
	})
}

func TestPathIsolation(t *testing.T) {
	Convey("Identically named files in different directories never collide", t, func() {
		store := newTestStore("isolation")

		So(store.Add(Bookmark{MediaPath: "/a/movie.mkv", Name: "start", OffsetSeconds: 5}), ShouldBeNil)
		So(store.Add(Bookmark{MediaPath: "/b/movie.mkv", Name: "start", OffsetSeconds: 9}), ShouldBeNil)

		records := lo.Must(store.List("/a/movie.mkv"))
		So(len(records), ShouldEqual, 1)
		So(records[0].OffsetSeconds, ShouldEqual, 5)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a store with several records", t, func() {
		// Convey re-runs this block for every leaf branch; reset the
		// in-memory filesystem so each branch sees exactly these records.
		filesystem.SetMemMapFs()
		store := newTestStore("delete")

		So(store.Add(Bookmark{MediaPath: "/a/one.mkv", Name: "intro", OffsetSeconds: 1}), ShouldBeNil)
		So(store.Add(Bookmark{MediaPath: "/a/one.mkv", Name: "outro", OffsetSeconds: 2}), ShouldBeNil)
		So(store.Add(Bookmark{MediaPath: "/a/two.mkv", Name: "intro", OffsetSeconds: 3}), ShouldBeNil)

		Convey("Delete by name removes only the exact (path, name) matches", func() {
			removed, err := store.Delete("/a/one.mkv", mo.Some("intro"))
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 1)

			So(len(lo.Must(store.List("/a/one.mkv"))), ShouldEqual, 1)
			So(len(lo.Must(store.List("/a/two.mkv"))), ShouldEqual, 1)
		})

		Convey("Delete for a whole path leaves other paths intact", func() {
			removed, err := store.Delete("/a/one.mkv", mo.None[string]())
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 2)

			So(len(lo.Must(store.List("/a/one.mkv"))), ShouldEqual, 0)
			So(len(lo.Must(store.List("/a/two.mkv"))), ShouldEqual, 1)
		})

		Convey("Delete with no matches removes nothing", func() {
			removed, err := store.Delete("/a/absent.mkv", mo.None[string]())
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 0)
		})
	})
}

func TestValidation(t *testing.T) {
	Convey("Add rejects fields the record format cannot hold", t, func() {
		store := newTestStore("validation")

		cases := []Bookmark{
			{MediaPath: "", Name: "x", OffsetSeconds: 1},
			{MediaPath: "/m/a.mkv", Name: "", OffsetSeconds: 1},
			{MediaPath: "/m/a.mkv", Name: "x", OffsetSeconds: -1},
			{MediaPath: "/m/a\t.mkv", Name: "x", OffsetSeconds: 1},
			{MediaPath: "/m/a.mkv", Name: "x\ty", OffsetSeconds: 1},
			{MediaPath: "/m/a.mkv", Name: "x\ny", OffsetSeconds: 1},
		}

		for _, c := range cases {
			So(errors.Is(store.Add(c), ErrInvalidArgument), ShouldBeTrue)
		}
	})
}

func TestConcurrentAdds(t *testing.T) {
	Convey("Concurrent adds never produce a truncated or merged-corrupt file", t, func() {
		store := newTestStore("concurrent")
		const n = 32

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = store.Add(Bookmark{
					MediaPath:     "/m/busy.mkv",
					Name:          fmt.Sprintf("mark-%02d", i),
					OffsetSeconds: i,
				})
			}(i)
		}
		wg.Wait()

		data := lo.Must(filesystem.API().ReadFile(store.path))
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		So(len(lines), ShouldEqual, n)
		for _, line := range lines {
			_, err := decodeRecord(line)
			So(err, ShouldBeNil)
		}
	})
}
