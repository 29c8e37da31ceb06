package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.CommitHash)
}

func TestApplyBuildSettings(t *testing.T) {
	info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}
	info.applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "GOARCH", Value: "amd64"},
	})
	assert.Equal(t, "0123456789abcdef", info.CommitHash)
	assert.Equal(t, "2026-01-01T00:00:00Z", info.BuildTime)
	assert.True(t, info.Modified)

	// ldflags values win
	pinned := Info{CommitHash: "feedface", BuildTime: "yesterday"}
	pinned.applyBuildSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456"}})
	assert.Equal(t, "feedface", pinned.CommitHash)
}

func TestInfo_String(t *testing.T) {
	info := Info{CommitHash: "abc1234def", BuildTime: "2026-01-01", Version: "dev"}
	assert.Equal(t, "astypes dev (commit abc1234, built 2026-01-01)", info.String())

	info.Version = "v0.3.0"
	info.Modified = true
	assert.Equal(t, "astypes v0.3.0 (commit abc1234, built 2026-01-01) +modified", info.String())
}

func TestInfo_Short(t *testing.T) {
	assert.Equal(t, "abc1234", Info{CommitHash: "abc1234def"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}
