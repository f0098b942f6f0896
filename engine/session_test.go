package engine

import (
	"errors"
	"testing"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestResolveMedia(t *testing.T) {
	Convey("resolveMedia", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		So(filesystem.API().WriteFile("/media/show.mkv", []byte("x"), 0644), ShouldBeNil)
		So(filesystem.API().MkdirAll("/media/season", 0755), ShouldBeNil)

		Convey("Resolves an existing regular file to an absolute path", func() {
			resolved, err := resolveMedia("/media/show.mkv")
			So(err, ShouldBeNil)
			So(resolved, ShouldEqual, "/media/show.mkv")
		})

		Convey("Fails with ErrMediaNotFound on a missing file", func() {
			_, err := resolveMedia("/media/absent.mkv")
			So(errors.Is(err, ErrMediaNotFound), ShouldBeTrue)
		})

		Convey("Fails with ErrMediaNotFound on a directory", func() {
			_, err := resolveMedia("/media/season")
			So(errors.Is(err, ErrMediaNotFound), ShouldBeTrue)
		})
	})
}

func TestLaunchArgs(t *testing.T) {
	Convey("launchArgs", t, func() {
		viper.Set(key.PlayerArgs, []string{"--fullscreen"})
		defer viper.Set(key.PlayerArgs, []string{})

		args := launchArgs("/tmp/couch.sock", "/media/show.mkv")

		Convey("Fixes the control socket address", func() {
			So(args, ShouldContain, "--input-ipc-server=/tmp/couch.sock")
		})

		Convey("Appends user extras before the media path", func() {
			So(args[len(args)-2], ShouldEqual, "--fullscreen")
			So(args[len(args)-1], ShouldEqual, "/media/show.mkv")
		})
	})
}

func TestPidfile(t *testing.T) {
	Convey("Pidfile round trip", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		writePidfile(4321)
		pid, ok := readPidfile()
		So(ok, ShouldBeTrue)
		So(pid, ShouldEqual, 4321)

		clearPidfile()
		_, ok = readPidfile()
		So(ok, ShouldBeFalse)
	})
}
