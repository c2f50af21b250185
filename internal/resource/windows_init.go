//go:build windows

package resource

import (
	"fmt"
	"os"

	"github.com/libstappler/libstappler-core-sub003/internal/fsmap"
)

// initSystemPaths populates t's rows from the Windows environment:
// %USERPROFILE% stands in for HOME, %APPDATA%/%LOCALAPPDATA% stand in
// for the XDG config/data split, and the executable's own directory
// anchors Bundled and the App* rows.
func initSystemPaths(t *Table) error {
	home := os.Getenv("USERPROFILE")
	if home == "" {
		return fmt.Errorf("resource: USERPROFILE environment variable is not defined")
	}
	t.homePath = home

	execPath, err := os.Executable()
	if err != nil {
		execPath = ""
	}
	execPath = fsmap.FromNative(execPath)
	t.execPath = execPath
	home = fsmap.FromNative(home)

	// No archive backend ships on desktop hosts; Bundled resolves
	// relative to the executable's own directory.
	bundled := t.row(Bundled)
	bundled.Paths = append(bundled.Paths, pathEntry{path: dirname(execPath), flags: Shared})
	bundled.init = stateInitialised
	bundled.Flags |= Locateable

	if pathEnv := os.Getenv("PATH"); pathEnv != "" {
		res := t.row(Exec)
		for _, v := range splitPathList(pathEnv) {
			res.Paths = append(res.Paths, pathEntry{path: fsmap.FromNative(v), flags: Shared})
		}
		res.Flags |= Locateable
	}
	t.row(Library).Flags |= Locateable | PlatformSpecific

	appData := fsmap.FromNative(os.Getenv("APPDATA"))
	localAppData := fsmap.FromNative(os.Getenv("LOCALAPPDATA"))
	if appData == "" {
		appData = mergePath(home, "AppData/Roaming")
	}
	if localAppData == "" {
		localAppData = mergePath(home, "AppData/Local")
	}

	dataRes := t.row(CommonData)
	dataRes.Paths = append(dataRes.Paths, pathEntry{path: appData, flags: Shared})
	dataRes.init = stateInitialised
	dataRes.Flags |= Locateable

	configRes := t.row(CommonConfig)
	configRes.Paths = append(configRes.Paths, pathEntry{path: appData, flags: Shared})
	configRes.init = stateInitialised
	configRes.Flags |= Locateable

	stateRes := t.row(CommonState)
	stateRes.Paths = append(stateRes.Paths, pathEntry{path: localAppData, flags: Shared})
	stateRes.init = stateInitialised
	stateRes.Flags |= Locateable

	cacheRes := t.row(CommonCache)
	cacheRes.Paths = append(cacheRes.Paths, pathEntry{path: mergePath(localAppData, "Cache"), flags: Shared})
	cacheRes.init = stateInitialised
	cacheRes.Flags |= Locateable

	tmp := fsmap.FromNative(os.Getenv("TEMP"))
	if tmp != "" {
		runtimeRes := t.row(CommonRuntime)
		runtimeRes.Paths = append(runtimeRes.Paths, pathEntry{path: tmp, flags: Shared})
		runtimeRes.init = stateInitialised
		runtimeRes.Flags |= Locateable | Removable
	}

	userHome := t.row(UserHome)
	userHome.Paths = append(userHome.Paths, pathEntry{path: home, flags: Shared})
	userHome.Flags |= Locateable
	userHome.init = stateInitialised

	for c, sub := range map[FileCategory]string{
		UserDesktop:   "Desktop",
		UserDownload:  "Downloads",
		UserDocuments: "Documents",
		UserMusic:     "Music",
		UserPictures:  "Pictures",
		UserVideos:    "Videos",
	} {
		res := t.row(c)
		res.Paths = append(res.Paths, pathEntry{path: mergePath(home, sub), flags: Shared})
		res.init = stateInitialised
	}

	fontsRes := t.row(Fonts)
	windir := fsmap.FromNative(os.Getenv("WINDIR"))
	if windir == "" {
		windir = "/c/Windows"
	}
	fontsRes.Paths = append(fontsRes.Paths, pathEntry{path: mergePath(windir, "Fonts"), flags: Shared})
	fontsRes.Flags |= Locateable
	fontsRes.init = stateInitialised

	initAppPaths(t, dirname(execPath))
	return nil
}

func splitPathList(s string) []string {
	out := []string{}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ';' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
