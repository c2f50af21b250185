//go:build !windows

package resource

import (
	"os"
	"testing"
)

func TestParseUserDirsAssignsCategories(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	cfgDir := t.TempDir()
	content := "# user dirs\nXDG_DOWNLOAD_DIR=\"$HOME/Downloads\"\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\n"
	if err := os.WriteFile(cfgDir+"/user-dirs.dirs", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl := &Table{homePath: "/home/u"}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[CommonConfig].Paths = []pathEntry{{path: cfgDir, flags: Shared}}

	if !parseUserDirs(tbl, "/home/u") {
		t.Fatalf("expected user-dirs.dirs to be found")
	}

	var got []string
	tbl.EnumeratePaths(UserDownload, "", 0, AccessNone, func(p string, _ FileFlags) bool {
		got = append(got, p)
		return true
	})
	if len(got) != 1 || got[0] != "/home/u/Downloads" {
		t.Fatalf("expected single path /home/u/Downloads, got %v", got)
	}
}

func TestInitSystemPathsXDGDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")

	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	if err := initSystemPaths(tbl); err != nil {
		t.Fatal(err)
	}

	cfg := tbl.rows[CommonConfig].Paths
	if len(cfg) < 2 {
		t.Fatalf("expected at least two CommonConfig paths, got %v", cfg)
	}
	if cfg[0].path != "/home/u/.config" {
		t.Fatalf("expected first CommonConfig path /home/u/.config, got %q", cfg[0].path)
	}
	if cfg[1].path != "/etc/xdg" {
		t.Fatalf("expected second CommonConfig path /etc/xdg, got %q", cfg[1].path)
	}
}
