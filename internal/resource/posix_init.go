//go:build !windows

package resource

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// initSystemPaths populates t's rows from the POSIX host environment:
// PATH, LD_LIBRARY_PATH, the XDG_* variables (falling back to the
// freedesktop defaults relative to $HOME), user-dirs.dirs, and the
// executable's own directory. XDG_DATA_DIRS/XDG_CONFIG_DIRS are used
// whenever set and non-empty; the default lists apply otherwise.
func initSystemPaths(t *Table) error {
	home := os.Getenv("HOME")
	if home == "" {
		return fmt.Errorf("resource: HOME environment variable is not defined")
	}
	t.homePath = home

	execPath, err := os.Executable()
	if err != nil {
		execPath = ""
	}
	t.execPath = execPath

	// No archive backend ships on desktop hosts; Bundled resolves
	// relative to the executable's own directory.
	bundled := t.row(Bundled)
	bundled.Paths = append(bundled.Paths, pathEntry{path: dirname(execPath), flags: Shared})
	bundled.init = stateInitialised
	bundled.Flags |= Locateable

	if pathEnv := os.Getenv("PATH"); pathEnv != "" {
		res := t.row(Exec)
		for _, v := range strings.Split(pathEnv, ":") {
			res.Paths = append(res.Paths, pathEntry{path: v, flags: Shared})
		}
		res.Flags |= Locateable
	}

	if ldPathEnv := os.Getenv("LD_LIBRARY_PATH"); ldPathEnv != "" {
		res := t.row(Library)
		for _, v := range strings.Split(ldPathEnv, ":") {
			res.Paths = append(res.Paths, pathEntry{path: v, flags: Shared})
		}
	}
	t.row(Library).Flags |= Locateable | PlatformSpecific

	if dataHome := readEnvExt("XDG_DATA_HOME", execPath, home); dataHome != "" {
		res := t.row(CommonData)
		res.Paths = append(res.Paths, pathEntry{path: dataHome, flags: Shared})
		if dataDirs := os.Getenv("XDG_DATA_DIRS"); dataDirs != "" {
			for _, v := range strings.Split(dataDirs, ":") {
				res.Paths = append(res.Paths, pathEntry{path: v, flags: Shared})
			}
		} else {
			res.Paths = append(res.Paths,
				pathEntry{path: "/usr/local/share", flags: Shared},
				pathEntry{path: "/usr/share", flags: Shared})
		}
		res.init = stateInitialised
		res.Flags |= Locateable
	}

	if configHome := readEnvExt("XDG_CONFIG_HOME", execPath, home); configHome != "" {
		res := t.row(CommonConfig)
		res.Paths = append(res.Paths, pathEntry{path: configHome, flags: Shared})
		if configDirs := os.Getenv("XDG_CONFIG_DIRS"); configDirs != "" {
			for _, v := range strings.Split(configDirs, ":") {
				res.Paths = append(res.Paths, pathEntry{path: v, flags: Shared})
			}
		} else {
			res.Paths = append(res.Paths, pathEntry{path: "/etc/xdg", flags: Shared})
		}
		res.init = stateInitialised
		res.Flags |= Locateable
	}

	if stateHome := readEnvExt("XDG_STATE_HOME", execPath, home); stateHome != "" {
		res := t.row(CommonState)
		res.Paths = append(res.Paths, pathEntry{path: stateHome, flags: Shared})
		res.init = stateInitialised
		res.Flags |= Locateable
	}

	if cacheHome := readEnvExt("XDG_CACHE_HOME", execPath, home); cacheHome != "" {
		res := t.row(CommonCache)
		res.Paths = append(res.Paths, pathEntry{path: cacheHome, flags: Shared})
		res.init = stateInitialised
		res.Flags |= Locateable
	}

	if runtimeDir := readEnvExt("XDG_RUNTIME_DIR", execPath, home); runtimeDir != "" {
		res := t.row(CommonRuntime)
		res.Paths = append(res.Paths, pathEntry{path: runtimeDir, flags: Shared})
		res.init = stateInitialised
		res.Flags |= Locateable
		res.Flags |= Removable
	}

	userHome := t.row(UserHome)
	userHome.Paths = append(userHome.Paths, pathEntry{path: home, flags: Shared})
	userHome.Flags |= Locateable
	userHome.init = stateInitialised

	fontsRes := t.row(Fonts)
	for _, e := range t.row(CommonData).Paths {
		fontsRes.Paths = append(fontsRes.Paths, pathEntry{path: mergePath(e.path, "fonts"), flags: Shared})
	}
	fontsRes.Flags |= Locateable
	fontsRes.init = stateInitialised

	parseUserDirs(t, home)
	for c := UserHome; c <= UserVideos; c++ {
		res := t.row(c)
		if len(res.Paths) == 0 {
			res.Paths = append(res.Paths, pathEntry{path: home, flags: Shared})
			res.init = stateInitialised
		}
	}

	bundlePath := dirname(execPath)
	initAppPaths(t, bundlePath)

	return nil
}

// parseUserDirs reads $XDG_CONFIG_HOME/user-dirs.dirs (freedesktop
// user-dirs format) and assigns XDG_DESKTOP_DIR etc. to their
// corresponding UserXxx categories. Returns whether the file was found.
func parseUserDirs(t *Table, home string) bool {
	cfg := t.row(CommonConfig)
	if len(cfg.Paths) == 0 {
		return false
	}
	data, err := os.ReadFile(mergePath(cfg.Paths[0].path, "user-dirs.dirs"))
	if err != nil {
		return false
	}

	write := func(c FileCategory, value string) {
		if value == "" {
			return
		}
		res := t.row(c)
		res.Paths = append(res.Paths, pathEntry{path: value, flags: Shared})
		if value != home {
			res.Flags |= Locateable
		}
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := evalVariable(t.execPath, t.homePath, line[eq+1:], nil)
		switch key {
		case "XDG_DESKTOP_DIR":
			write(UserDesktop, value)
		case "XDG_DOWNLOAD_DIR":
			write(UserDownload, value)
		case "XDG_DOCUMENTS_DIR":
			write(UserDocuments, value)
		case "XDG_MUSIC_DIR":
			write(UserMusic, value)
		case "XDG_PICTURES_DIR":
			write(UserPictures, value)
		case "XDG_VIDEOS_DIR":
			write(UserVideos, value)
		}
	}
	return true
}
