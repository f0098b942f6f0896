package recent

import (
	"testing"
	"time"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRecent(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		viper.Set(key.RecentSaveOnPlay, true)
		viper.Set(key.RecentSize, 50)
		So(Clear(), ShouldBeNil)

		Convey("Touch then All round trips", func() {
			So(Touch("/media/a.mkv", 120), ShouldBeNil)

			entries := lo.Must(All())
			So(len(entries), ShouldEqual, 1)
			So(entries[0].Path, ShouldEqual, "/media/a.mkv")
			So(entries[0].PositionSeconds, ShouldEqual, 120)
		})

		Convey("Last returns the most recent entry", func() {
			So(Touch("/media/a.mkv", 0), ShouldBeNil)
			time.Sleep(5 * time.Millisecond)
			So(Touch("/media/b.mkv", 0), ShouldBeNil)

			last, err := Last()
			So(err, ShouldBeNil)
			So(last.IsPresent(), ShouldBeTrue)
			So(last.MustGet().Path, ShouldEqual, "/media/b.mkv")
		})

		Convey("Touch is a no-op when saving is disabled", func() {
			viper.Set(key.RecentSaveOnPlay, false)
			So(Touch("/media/c.mkv", 0), ShouldBeNil)
			So(len(lo.Must(All())), ShouldEqual, 0)
			viper.Set(key.RecentSaveOnPlay, true)
		})

		Convey("The registry evicts the oldest entries beyond its size", func() {
			viper.Set(key.RecentSize, 2)
			So(Touch("/media/1.mkv", 0), ShouldBeNil)
			time.Sleep(5 * time.Millisecond)
			So(Touch("/media/2.mkv", 0), ShouldBeNil)
			time.Sleep(5 * time.Millisecond)
			So(Touch("/media/3.mkv", 0), ShouldBeNil)

			entries := lo.Must(All())
			So(len(entries), ShouldEqual, 2)
			So(entries[0].Path, ShouldEqual, "/media/3.mkv")
			viper.Set(key.RecentSize, 50)
		})
	})
}
