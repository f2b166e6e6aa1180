package config_test

import (
	"testing"

	"github.com/okian/rolodex/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8086")
			convey.So(cfg.DBPath, convey.ShouldEqual, "network.db")
			convey.So(cfg.MatchThreshold, convey.ShouldEqual, 85)
			convey.So(cfg.DefaultSource, convey.ShouldEqual, "LinkedIn")
			convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, 8<<20)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
		})
	})
}
