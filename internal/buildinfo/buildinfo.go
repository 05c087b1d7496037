package buildinfo

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/aalvaropc/soro/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("soro %s (commit=%s, date=%s, %s)", i.Version, i.Commit, i.Date, i.GoVersion)
}

func String() string {
	return Get().String()
}
