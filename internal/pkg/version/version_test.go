package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     Info
		buildInfo *debug.BuildInfo
		want      Info
	}{
		{
			name:  "주입된 값 우선",
			input: Info{Version: "v1.2.0", Commit: "abc1234", BuildDate: "2026-10-01", BuildNumber: "100"},
			buildInfo: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "ffffffff"},
				{Key: "vcs.time", Value: "2020-01-01"},
			}},
			want: Info{Version: "v1.2.0", Commit: "abc1234", BuildDate: "2026-10-01", BuildNumber: "100"},
		},
		{
			name:  "VCS 메타데이터로 보완",
			input: Info{},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "deadbeef"},
					{Key: "vcs.time", Value: "2026-09-30T10:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "v0.3.1", Commit: "deadbeef", BuildDate: "2026-09-30T10:00:00Z", BuildNumber: "0", Modified: true},
		},
		{
			name:      "개발 빌드",
			input:     Info{},
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:      Info{Version: unknown, Commit: unknown, BuildNumber: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveWith(tt.input, tt.buildInfo)

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func resolveWith(in Info, bi *debug.BuildInfo) Info {
	return resolveFrom(in, func() (*debug.BuildInfo, bool) { return bi, bi != nil })
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "전체 정보",
			info: Info{Version: "v1.2.0", Commit: "abc1234567", BuildNumber: "100", GoVersion: "go1.24.11", OS: "linux", Arch: "amd64"},
			want: "v1.2.0 (commit: abc1234, build: 100, go1.24.11 linux/amd64)",
		},
		{
			name: "수정된 작업 트리",
			info: Info{Version: "v1.2.0", Commit: unknown, BuildNumber: "0", GoVersion: "go1.24.11", OS: "linux", Arch: "arm64", Modified: true},
			want: "v1.2.0+dirty (go1.24.11 linux/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet_Stable(t *testing.T) {
	t.Parallel()

	first := Get()
	assert.Equal(t, first, Get())
	assert.NotEmpty(t, first.Version)
	assert.Equal(t, runtime.Version(), first.GoVersion)
}
