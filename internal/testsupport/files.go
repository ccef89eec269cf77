package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTrackDir lays out a complete valid track directory under root and
// returns its path.
func WriteTrackDir(t testing.TB, root, slug, title string) string {
	t.Helper()
	dir := filepath.Join(root, slug)
	WriteFile(t, filepath.Join(dir, "info.md"), []byte("---\ntitle: "+title+"\n---\nBody text.\n"))
	WriteFile(t, filepath.Join(dir, "master.wav"), []byte("RIFF fake wav"))
	WriteFile(t, filepath.Join(dir, "cover.jpg"), []byte("fake jpeg"))
	return dir
}

// StubBinary writes an executable shell stub and prepends its directory to
// PATH for the duration of the test.
func StubBinary(t *testing.T, name, script string) string {
	t.Helper()
	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return target
}
