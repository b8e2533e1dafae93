package contracts

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"dataopscli/internal/config"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, config.AppVersion, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "unknown", info.GitCommit)
}

func TestGetFullVersionString(t *testing.T) {
	assert.Equal(t, "Industrial DataOps v1.0.0", GetVersionString())
	assert.Contains(t, GetFullVersionString(), "commit: unknown")
	assert.Contains(t, GetFullVersionString(), runtime.GOOS+"/"+runtime.GOARCH)
}
