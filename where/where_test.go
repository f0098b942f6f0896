package where

import (
	"testing"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Bookmarks()", func() {
			So(Bookmarks(), ShouldNotBeEmpty)
		})
	})
}

func TestSocket(t *testing.T) {
	Convey("Socket()", t, func() {
		Convey("Should fall back to the well-known temp path", func() {
			viper.Set(key.PlayerSocket, "")
			So(Socket(), ShouldEndWith, "couch.sock")
		})

		Convey("Should honor the player.socket override", func() {
			viper.Set(key.PlayerSocket, "/run/couch/control")
			So(Socket(), ShouldEqual, "/run/couch/control")
			viper.Set(key.PlayerSocket, "")
		})
	})
}
