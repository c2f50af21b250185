package fsmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapFile(t *testing.T) {
	t.Run("MapReadSyncUnmap", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob")
		content := make([]byte, 1<<20)
		for i := range content {
			content[i] = byte(i)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatal(err)
		}

		r, err := MapFile(path, Shared, ProtUserRead|ProtUserWrite, 0, 4096)
		if err != nil {
			t.Fatal(err)
		}
		if len(r.Data) != 4096 {
			t.Fatalf("expected 4096 mapped bytes, got %d", len(r.Data))
		}
		if r.Data[100] != content[100] {
			t.Fatalf("mapped byte mismatch at 100")
		}
		if err := r.Sync(); err != nil {
			t.Fatalf("sync: %v", err)
		}
		if err := r.Unmap(); err != nil {
			t.Fatalf("unmap: %v", err)
		}
		// Unmap is idempotent.
		if err := r.Unmap(); err != nil {
			t.Fatalf("second unmap: %v", err)
		}

		st, err := StatPath(path)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size != int64(len(content)) {
			t.Fatalf("expected file size unchanged at %d, got %d", len(content), st.Size)
		}
	})

	t.Run("LengthClampsToFileSize", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short")
		if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
			t.Fatal(err)
		}
		r, err := MapFile(path, Private, ProtUserRead, 0, 1<<20)
		if err != nil {
			t.Fatal(err)
		}
		defer r.Unmap()
		if len(r.Data) != 10 {
			t.Fatalf("expected mapping clamped to 10 bytes, got %d", len(r.Data))
		}
	})

	t.Run("UnalignedOffsetRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob")
		if err := os.WriteFile(path, make([]byte, 64*1024), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := MapFile(path, Shared, ProtUserRead, 1, 4096); err == nil {
			t.Fatalf("expected rejection of a page-unaligned offset")
		}
	})

	t.Run("OffsetPastEOFRejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiny")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		off := int64(os.Getpagesize() * 4)
		if _, err := MapFile(path, Shared, ProtUserRead, off, 16); err == nil {
			t.Fatalf("expected rejection of an offset past EOF")
		}
	})
}

func TestStatPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("hello"), 0o640); err != nil {
		t.Fatal(err)
	}
	st, err := StatPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size != 5 {
		t.Fatalf("expected size 5, got %d", st.Size)
	}
	if st.Type != TypeFile {
		t.Fatalf("expected regular file, got %v", st.Type)
	}
	if st.Mode&ProtUserRead == 0 || st.Mode&ProtUserWrite == 0 {
		t.Fatalf("expected user read/write bits set, got %v", st.Mode)
	}

	dir, err := StatPath(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if dir.Type != TypeDir {
		t.Fatalf("expected directory, got %v", dir.Type)
	}
}

func TestAccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Access(path, None); err != nil {
		t.Fatalf("None must never fail, got %v", err)
	}
	if err := Access(path, Exists); err != nil {
		t.Fatalf("expected existing file to pass Exists, got %v", err)
	}
	if err := Access(path, Read); err != nil {
		t.Fatalf("expected readable file to pass Read, got %v", err)
	}

	missing := filepath.Join(dir, "missing")
	err := Access(missing, Exists)
	if err == nil {
		t.Fatalf("expected missing path to fail Exists")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestPathConvRoundTrip(t *testing.T) {
	// On POSIX both directions are identity; on Windows they translate
	// drive-letter form. Either way a round trip is stable.
	for _, p := range []string{"/c/dir/file", "relative/path", "/usr/share"} {
		if got := FromNative(ToNative(p)); got != p {
			t.Errorf("round trip of %q produced %q", p, got)
		}
	}
}
