package mdat

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// createTestArchive writes a ZIP archive with the given members to a temp
// directory and returns its path.
func createTestArchive(t *testing.T, name string, members map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create archive file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for memberName, content := range members {
		w, err := zw.Create(memberName)
		if err != nil {
			t.Fatalf("Failed to create member %s: %v", memberName, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write member %s: %v", memberName, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	return path
}

func TestOpenRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.mdat")
	if err := os.WriteFile(path, []byte("this is not a zip container"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("Open() accepted a non-ZIP file")
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.mdat")); err == nil {
		t.Fatal("Open() accepted a missing file")
	}
}

func TestMembersFiltersCaseInsensitively(t *testing.T) {
	path := createTestArchive(t, "sample.mdat", map[string]string{
		"Run01/ac.z":     "a",
		"Run02/ac.Z":     "b",
		"Run03/dc.d":     "c",
		"meta/notes.txt": "d",
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer r.Close()

	members := r.Members()
	if len(members) != 2 {
		t.Fatalf("Members() returned %d members, want 2: %v", len(members), members)
	}
	seen := map[string]bool{}
	for _, m := range members {
		seen[m] = true
	}
	if !seen["Run01/ac.z"] || !seen["Run02/ac.Z"] {
		t.Errorf("Members() = %v, want Run01/ac.z and Run02/ac.Z", members)
	}
}

func TestMembersEmptyWhenNoACData(t *testing.T) {
	path := createTestArchive(t, "empty.mdat", map[string]string{
		"meta/notes.txt": "nothing here",
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer r.Close()

	if members := r.Members(); len(members) != 0 {
		t.Errorf("Members() = %v, want empty", members)
	}
}

func TestReadMember(t *testing.T) {
	path := createTestArchive(t, "sample.mdat", map[string]string{
		"Run01/ac.z": "line one\nline two\n",
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer r.Close()

	data, err := r.ReadMember("Run01/ac.z")
	if err != nil {
		t.Fatalf("ReadMember() error: %v", err)
	}
	if string(data) != "line one\nline two\n" {
		t.Errorf("ReadMember() = %q", data)
	}

	if _, err := r.ReadMember("absent.z"); err == nil {
		t.Error("ReadMember() found a nonexistent member")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := createTestArchive(t, "sample.mdat", map[string]string{"a.z": "x"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if members := r.Members(); len(members) != 0 {
		t.Errorf("Members() after Close = %v, want empty", members)
	}
}
