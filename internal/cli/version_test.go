package cli

import (
	"runtime"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/so"
)

func TestBuildInfo(t *testing.T) {
	t.Run("should describe a release build", func(t *testing.T) {
		info := BuildInfo{Name: "biletbudur", Version: "1.2.0", GoVersion: "go1.24.0", OSArch: "linux/amd64"}
		so.So(t, info.String(), so.ShouldEqual, "biletbudur v1.2.0 (go1.24.0, linux/amd64)")
	})

	t.Run("should include the commit when known", func(t *testing.T) {
		info := BuildInfo{Name: "biletbudur", Version: "1.2.0", Commit: "8f2c1d0", GoVersion: "go1.24.0", OSArch: "linux/amd64"}
		so.So(t, info.String(), so.ShouldEqual, "biletbudur v1.2.0+8f2c1d0 (go1.24.0, linux/amd64)")
	})

	t.Run("should describe the running build", func(t *testing.T) {
		info := CurrentBuild()
		so.So(t, info.Name, so.ShouldEqual, Name)
		so.So(t, info.Version, so.ShouldEqual, Version)
		so.So(t, info.GoVersion, so.ShouldEqual, runtime.Version())
		so.So(t, info.OSArch, so.ShouldEqual, runtime.GOOS+"/"+runtime.GOARCH)
	})
}
