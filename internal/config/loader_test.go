package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mergington/activities/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	_ = os.Unsetenv("MHS_CONFIG")
	_ = os.Unsetenv("MHS_ADDR")
	_ = os.Unsetenv("MHS_LOG_LEVEL")
	_ = os.Unsetenv("MHS_ENFORCE_CAPACITY")
	_ = os.Unsetenv("MHS_SEED_FILE")
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.EnforceCapacity, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MHS_ADDR", ":9000")
			_ = os.Setenv("MHS_LOG_LEVEL", "debug")
			_ = os.Setenv("MHS_ENFORCE_CAPACITY", "true")
			_ = os.Setenv("MHS_SEED_FILE", "/etc/mhs/catalogue.json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.EnforceCapacity, convey.ShouldBeTrue)
				convey.So(cfg.SeedFile, convey.ShouldEqual, "/etc/mhs/catalogue.json")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			doc := "addr: \":7070\"\nlog_level: warn\nenforce_capacity: true\n"
			err := os.WriteFile(path, []byte(doc), 0o600)
			convey.So(err, convey.ShouldBeNil)

			_ = os.Setenv("MHS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the file values should override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.EnforceCapacity, convey.ShouldBeTrue)
			})

			convey.Convey("And env vars should still win over the file", func() {
				_ = os.Setenv("MHS_ADDR", ":7071")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7071")
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("MHS_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When addr is cleared", func() {
			clearConfigEnvVars()
			_ = os.Setenv("MHS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject the empty address", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
