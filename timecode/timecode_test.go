package timecode

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should handle full clock specs", func() {
			n, err := Parse("01:15:00")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 4500)
		})

		Convey("Should handle minute specs", func() {
			n, err := Parse("1:30")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 90)
		})

		Convey("Should handle bare seconds", func() {
			n, err := Parse("90")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 90)
		})

		Convey("Should not read leading zeros as octal", func() {
			n, err := Parse("08")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 8)

			n, err = Parse("1:08:09")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 4089)
		})

		Convey("Should reject malformed specs", func() {
			for _, spec := range []string{"", "abc", "1:2:3:4", "1:xx", "-5", "1:-2"} {
				_, err := Parse(spec)
				So(errors.Is(err, ErrInvalidTimeFormat), ShouldBeTrue)
			}
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		So(Format(0), ShouldEqual, "00:00:00")
		So(Format(90), ShouldEqual, "00:01:30")
		So(Format(4500), ShouldEqual, "01:15:00")
		So(Format(360000), ShouldEqual, "100:00:00")
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Parse(Format(n)) == n for all n < 360000", t, func() {
		for n := 0; n < 360000; n += 7 {
			parsed, err := Parse(Format(n))
			if err != nil || parsed != n {
				// Fail loudly with the offending value instead of 50k assertions.
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, n)
				return
			}
		}
		So(true, ShouldBeTrue)
	})
}
