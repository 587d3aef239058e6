package buildinfo

import "runtime/debug"

// BuildInfo is exposed as-is on the debug server /version route.
var BuildInfo = newInfo()

type Info struct {
	GoVersion  string `json:"goVersion"`
	Version    string `json:"version"`
	Revision   string `json:"revision"`
	Time       string `json:"time"`
	DirtyBuild bool   `json:"dirtyBuild"`
}

func newInfo() Info {
	info := Info{
		Version:  "unknown",
		Revision: "unknown",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = bi.GoVersion
	if v := bi.Main.Version; v != "" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.DirtyBuild = s.Value == "true"
		}
	}
	return info
}

func Version() string {
	return BuildInfo.Version
}
