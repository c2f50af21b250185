package resource

import (
	"os"
	"testing"
)

func TestEnumerateOrdered(t *testing.T) {
	t.Run("PrivateFirstPreservesRelativeOrder", func(t *testing.T) {
		paths := []pathEntry{
			{path: "/a", flags: Shared},
			{path: "/b", flags: Private},
			{path: "/c", flags: Shared},
			{path: "/d", flags: Private},
		}
		var got []string
		enumerateOrdered(PrivateFirst, paths, func(p string, _ FileFlags) bool {
			got = append(got, p)
			return true
		})
		want := []string{"/b", "/d", "/a", "/c"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})

	t.Run("NoOrderFlagKeepsOriginalOrder", func(t *testing.T) {
		paths := []pathEntry{{path: "/a"}, {path: "/b"}, {path: "/c"}}
		var got []string
		enumerateOrdered(0, paths, func(p string, _ FileFlags) bool {
			got = append(got, p)
			return true
		})
		if len(got) != 3 || got[0] != "/a" || got[1] != "/b" || got[2] != "/c" {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("CallbackFalseStopsIteration", func(t *testing.T) {
		paths := []pathEntry{{path: "/a"}, {path: "/b"}, {path: "/c"}}
		var got []string
		enumerateOrdered(0, paths, func(p string, _ FileFlags) bool {
			got = append(got, p)
			return len(got) < 2
		})
		if len(got) != 2 {
			t.Fatalf("expected early stop after 2, got %v", got)
		}
	})
}

func TestResourcePrefixRoundTrip(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[CommonConfig].Paths = []pathEntry{{path: "/etc/xdg", flags: Shared}}
	tbl.rows[CommonConfig].Flags |= Locateable

	var capturedPrefixed, capturedCat string
	cat := tbl.DetectResourceCategory("%COMMON_CONFIG%:myapp.conf", func(prefixed, categoryPath string) {
		capturedPrefixed = prefixed
		capturedCat = categoryPath
	})
	if cat != CommonConfig {
		t.Fatalf("expected CommonConfig, got %v", cat)
	}
	if capturedCat != "myapp.conf" {
		t.Fatalf("expected categoryPath myapp.conf, got %q (prefixed=%q)", capturedCat, capturedPrefixed)
	}
}

func TestDetectResourceCategoryLongestPrefixMatch(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[CommonData].Paths = []pathEntry{{path: "/usr/share", flags: Shared}}
	tbl.rows[CommonData].Flags |= Locateable
	tbl.rows[Fonts].Paths = []pathEntry{{path: "/usr/share/fonts", flags: Shared}}
	tbl.rows[Fonts].Flags |= Locateable

	cat := tbl.DetectResourceCategory("/usr/share/fonts/dejavu.ttf", nil)
	if cat != Fonts {
		t.Fatalf("expected longest-prefix match Fonts, got %v", cat)
	}
}

func TestDetectResourceCategoryUnknown(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	if cat := tbl.DetectResourceCategory("/does/not/match/anything", nil); cat != Max {
		t.Fatalf("expected Max for an unmatched path, got %v", cat)
	}
}

func TestEnumeratePathsOrderAndFilter(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	dir := t.TempDir()
	tbl.rows[CommonConfig].Paths = []pathEntry{
		{path: dir + "/shared", flags: Shared},
		{path: dir + "/private", flags: Private},
	}
	tbl.rows[CommonConfig].Flags |= Locateable
	if err := os.MkdirAll(dir+"/shared", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dir+"/private", 0o755); err != nil {
		t.Fatal(err)
	}

	var got []string
	tbl.EnumeratePaths(CommonConfig, "", PrivateFirst, AccessNone, func(p string, _ FileFlags) bool {
		got = append(got, p)
		return true
	})
	if len(got) != 2 || got[0] != dir+"/private" || got[1] != dir+"/shared" {
		t.Fatalf("expected private-first order, got %v", got)
	}
}

func TestEnumeratePathsRejectsAboveRoot(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[CommonConfig].Paths = []pathEntry{{path: "/etc/xdg", flags: Shared}}

	var called bool
	tbl.EnumeratePaths(CommonConfig, "../../etc/passwd", 0, AccessNone, func(string, FileFlags) bool {
		called = true
		return true
	})
	if called {
		t.Fatalf("expected above-root filename to be rejected")
	}
}

func TestIsAboveRoot(t *testing.T) {
	cases := map[string]bool{
		"a/b/c":       false,
		"./a/b":       false,
		"../a":        true,
		"a/../b":      false,
		"a/../../b":   true,
		"":            false,
		"a/b/../../c": true,
	}
	for in, want := range cases {
		if got := isAboveRoot(in); got != want {
			t.Errorf("isAboveRoot(%q) = %v, want %v", in, got, want)
		}
	}
}

type fakeArchive struct{ entries map[string]bool }

func (a fakeArchive) Has(rel string) bool { return a.entries[rel] }

func TestArchiveBackendClaimsBundled(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.SetArchiveBackend(fakeArchive{entries: map[string]bool{"shaders/main.glsl": true}})

	var prefixed string
	cat := tbl.DetectResourceCategory("/shaders/main.glsl", func(p, _ string) { prefixed = p })
	if cat != Bundled {
		t.Fatalf("expected archive backend to claim the path for Bundled, got %v", cat)
	}
	if prefixed != "%PLATFORM%:shaders/main.glsl" {
		t.Fatalf("unexpected prefixed path %q", prefixed)
	}

	if cat := tbl.DetectResourceCategory("/not/in/archive", nil); cat != Max {
		t.Fatalf("expected Max for a path the archive does not hold, got %v", cat)
	}
}

func TestEnumerateWritableFiltersReadOnlyEntries(t *testing.T) {
	dir := t.TempDir()
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[AppCache].Paths = []pathEntry{
		{path: "/etc/xdg", flags: Shared},
		{path: dir + "/cache", flags: Private | Writable},
	}
	tbl.rows[AppCache].Flags |= Locateable

	var got []string
	tbl.EnumeratePaths(AppCache, "", Writable, AccessNone, func(p string, _ FileFlags) bool {
		got = append(got, p)
		return true
	})
	if len(got) != 1 || got[0] != dir+"/cache" {
		t.Fatalf("expected only the writable entry, got %v", got)
	}

	// A row with no writable entries yields no candidates at all.
	tbl.rows[AppState].Paths = []pathEntry{{path: "/etc/xdg", flags: Shared}}
	var none []string
	tbl.EnumeratePaths(AppState, "", Writable, AccessNone, func(p string, _ FileFlags) bool {
		none = append(none, p)
		return true
	})
	if len(none) != 0 {
		t.Fatalf("expected no candidates for a read-only row, got %v", none)
	}
}

func TestEnumerateMakeWritableDirCreatesParent(t *testing.T) {
	dir := t.TempDir()
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[AppData].Paths = []pathEntry{{path: dir + "/data", flags: Private | Writable}}
	tbl.rows[AppData].Flags |= Locateable

	var got []string
	tbl.EnumeratePaths(AppData, "nested/deep/file.bin", MakeWritableDir, AccessNone, func(p string, _ FileFlags) bool {
		got = append(got, p)
		return true
	})
	if len(got) != 1 {
		t.Fatalf("expected one candidate, got %v", got)
	}
	if fi, err := os.Stat(dir + "/data/nested/deep"); err != nil || !fi.IsDir() {
		t.Fatalf("expected candidate's parent directory created, err=%v", err)
	}
}

func TestWritableProbeInitialisesOnce(t *testing.T) {
	dir := t.TempDir()
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[AppConfig].Paths = []pathEntry{{path: dir + "/config", flags: Private | Writable}}
	tbl.rows[AppConfig].Flags |= Locateable

	run := func() []string {
		var got []string
		tbl.EnumeratePaths(AppConfig, "", Writable, AccessNone, func(p string, _ FileFlags) bool {
			got = append(got, p)
			return true
		})
		return got
	}
	first := run()
	if tbl.rows[AppConfig].init != stateInitialised {
		t.Fatalf("expected row initialised after the first writable enumeration")
	}
	second := run()
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("expected identical results across repeated enumerations: %v vs %v", first, second)
	}
}

func TestReadVariableSubstitution(t *testing.T) {
	tbl := &Table{execPath: "/opt/app/bin/app", homePath: "/home/u"}
	got := tbl.ReadVariable(nil, `"$HOME/.config/"`)
	if got != "/home/u/.config" {
		t.Fatalf("got %q", got)
	}
}

func TestReadVariableSingleQuotedLiteral(t *testing.T) {
	tbl := &Table{execPath: "/opt/app/bin/app", homePath: "/home/u"}
	got := tbl.ReadVariable(nil, `'/literal/path/'`)
	if got != "/literal/path" {
		t.Fatalf("got %q", got)
	}
}

func TestReadVariableExecDir(t *testing.T) {
	tbl := &Table{execPath: "/opt/app/bin/app", homePath: "/home/u"}
	got := tbl.ReadVariable(nil, `"$EXEC_DIR"`)
	if got != "/opt/app/bin" {
		t.Fatalf("got %q", got)
	}
}

func TestSerializeReferenceRoundTrip(t *testing.T) {
	tbl := &Table{}
	for c := FileCategory(0); c < categoryCount; c++ {
		tbl.rows[c] = ResourceLocation{Category: c, Prefix: resourcePrefix(c)}
	}
	tbl.rows[AppCache].Paths = []pathEntry{{path: "/home/u/.cache/app", flags: Private | Writable}}
	tbl.rows[AppCache].Flags |= Locateable

	ref, ok := SerializeReference(AppCache, "thumbs/1.png")
	if !ok || ref != "%APP_CACHE%:thumbs/1.png" {
		t.Fatalf("unexpected reference %q ok=%v", ref, ok)
	}
	if cat := tbl.DetectResourceCategory(ref, nil); cat != AppCache {
		t.Fatalf("expected serialized reference to detect back to AppCache, got %v", cat)
	}

	if _, ok := SerializeReference(AppCache, "../escape"); ok {
		t.Fatalf("expected above-root reference to be rejected")
	}

	info, ok := tbl.Info("/home/u/.cache/app/thumbs/1.png")
	if !ok || info.Category != AppCache || info.Flags&Writable == 0 {
		t.Fatalf("unexpected Info result %+v ok=%v", info, ok)
	}
	if _, ok := tbl.Info("/nowhere/at/all"); ok {
		t.Fatalf("expected no FileInfo for an unclaimed path")
	}
}
