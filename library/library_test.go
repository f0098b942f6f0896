package library

import (
	"errors"
	"testing"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func seedLibrary() {
	viper.Set(key.LibraryRoot, "/media")
	viper.Set(key.LibraryExtensions, []string{".mkv", ".mp4"})

	for _, path := range []string{
		"/media/movies/The Big Lebowski (1998).mkv",
		"/media/movies/Big Fish (2003).mp4",
		"/media/shows/lebowski-commentary.mkv",
		"/media/shows/notes.txt",
	} {
		lo.Must0(filesystem.API().WriteFile(path, []byte("x"), 0644))
	}
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		seedLibrary()

		Convey("Collects only playable extensions", func() {
			files := lo.Must(Scan())
			So(len(files), ShouldEqual, 3)
			So(files, ShouldNotContain, "/media/shows/notes.txt")
		})

		Convey("Fails without a configured root", func() {
			viper.Set(key.LibraryRoot, "")
			_, err := Scan()
			So(errors.Is(err, ErrNoRoot), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		seedLibrary()

		Convey("Picks the best fuzzy match", func() {
			path, err := Resolve("lebowski 1998")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/media/movies/The Big Lebowski (1998).mkv")
		})

		Convey("Misses with ErrNoMatch", func() {
			_, err := Resolve("zzzzzz")
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
		})
	})
}

func TestMatch(t *testing.T) {
	Convey("Match with an empty query returns the whole library", t, func() {
		seedLibrary()
		So(len(lo.Must(Match(""))), ShouldEqual, 3)
	})
}
