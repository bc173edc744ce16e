// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 버전 값은 링커 플래그로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/storefront-server/internal/pkg/version.appVersion=v1.2.0 \
//	    -X github.com/darkkaiser/storefront-server/internal/pkg/version.gitCommitHash=abc1234"
//
// 주입되지 않은 값은 실행 파일에 기록된 VCS 메타데이터(debug.ReadBuildInfo)로 보완합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-ldflags -X)로 주입되는 값. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	buildDate     = ""
	buildNumber   = ""
)

var (
	resolveOnce sync.Once
	resolved    Info

	readBuildInfo = debug.ReadBuildInfo
)

// Info 서버의 빌드 정보. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`

	// Modified 커밋되지 않은 변경이 있는 작업 트리에서 빌드되었는지 여부
	Modified bool `json:"modified"`
}

// Get 빌드 정보를 반환합니다. 첫 호출 시 한 번만 계산됩니다.
func Get() Info {
	resolveOnce.Do(func() {
		resolved = resolve(Info{
			Version:     strings.TrimSpace(appVersion),
			Commit:      strings.TrimSpace(gitCommitHash),
			BuildDate:   strings.TrimSpace(buildDate),
			BuildNumber: strings.TrimSpace(buildNumber),
		})
	})
	return resolved
}

// resolve 비어 있는 필드를 실행 환경과 VCS 메타데이터로 채웁니다.
func resolve(bi Info) Info {
	return resolveFrom(bi, readBuildInfo)
}

func resolveFrom(bi Info, read func() (*debug.BuildInfo, bool)) Info {
	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				bi.Modified = s.Value == "true"
			}
		}

		if bi.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildNumber == "" {
		bi.BuildNumber = "0"
	}

	return bi
}

// String 로그 한 줄에 들어갈 요약. 예: "v1.2.0 (commit: abc1234, build: 100, go1.24.11 linux/amd64)"
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.Modified {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		details = append(details, "commit: "+c)
	}
	if i.BuildNumber != "" && i.BuildNumber != "0" {
		details = append(details, "build: "+i.BuildNumber)
	}
	details = append(details, fmt.Sprintf("%s %s/%s", i.GoVersion, i.OS, i.Arch))

	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
