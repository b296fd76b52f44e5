package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("#!/bin/sh\necho noise\necho noise >&2\nexit %d\n", exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  if [ \"$arg\" = \"%s\" ]; then exit 0; fi\ndone\nexit 1\n", expectedArg))
}

// WriteStubRecordArgs writes a stub that appends each argument on its own line to argsFile and exits 0.
func WriteStubRecordArgs(t *testing.T, dir string, name string, argsFile string) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> '%s'\ndone\nexit 0\n", argsFile))
}

func writeScript(t *testing.T, dir string, name string, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteTree creates the given entries under root. Names ending in "/" become
// directories holding a nested file; other names become small files.
func WriteTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry, "/"); ok {
			dir := filepath.Join(root, name)
			if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", dir, err)
			}
			if err := os.WriteFile(filepath.Join(dir, "nested", "payload.bin"), []byte("x"), 0o644); err != nil {
				t.Fatalf("write payload in %s: %v", dir, err)
			}
			continue
		}
		if err := os.WriteFile(filepath.Join(root, entry), []byte(entry), 0o644); err != nil {
			t.Fatalf("write %s: %v", entry, err)
		}
	}
}

// Entries returns the sorted names of the immediate children of dir.
func Entries(t *testing.T, dir string) []string {
	t.Helper()
	items, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name())
	}
	return names
}

// BoolPtr returns a pointer to v.
// v is the boolean value to take the address of.
func BoolPtr(v bool) *bool {
	return &v
}
