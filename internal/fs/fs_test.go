package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prettymuchbryce/extops/internal/testutil"
	"github.com/spf13/afero"
)

func TestMemCopy(t *testing.T) {
	src := testutil.Path("/", "src", "a.txt")
	dst := testutil.Path("/", "dst", "a.txt")

	tests := []struct {
		name    string
		setup   func(m *MemFileSystem)
		wantErr bool
	}{
		{
			name: "copies content",
			setup: func(m *MemFileSystem) {
				m.MustWriteFile(src, "hello")
				m.MustMkdirAll(filepath.Dir(dst))
			},
		},
		{
			name: "missing source",
			setup: func(m *MemFileSystem) {
				m.MustMkdirAll(filepath.Dir(dst))
			},
			wantErr: true,
		},
		{
			name: "source is a directory",
			setup: func(m *MemFileSystem) {
				m.MustMkdirAll(src)
				m.MustMkdirAll(filepath.Dir(dst))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemTest()
			tt.setup(m)

			err := m.Copy(src, dst)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := m.MustReadFile(dst); got != "hello" {
				t.Errorf("dest content = %q, want %q", got, "hello")
			}
			if got := m.MustReadFile(src); got != "hello" {
				t.Errorf("source content = %q, want %q", got, "hello")
			}
		})
	}
}

func TestMemMove(t *testing.T) {
	m := NewMemTest()
	src := testutil.Path("/", "src", "a.txt")
	dst := testutil.Path("/", "dst", "a.txt")
	m.MustWriteFile(src, "payload")
	m.MustMkdirAll(filepath.Dir(dst))

	if err := m.Move(src, dst); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if exists, _ := afero.Exists(m, src); exists {
		t.Error("source should not exist after move")
	}
	if got := m.MustReadFile(dst); got != "payload" {
		t.Errorf("dest content = %q, want %q", got, "payload")
	}
}

func TestRealMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dstDir := filepath.Join(dir, "out")
	if err := os.WriteFile(src, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(dstDir, 0755); err != nil {
		t.Fatal(err)
	}

	r := NewReal()
	dst := filepath.Join(dstDir, "a.txt")
	if err := r.Move(src, dst); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still exists: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("dest content = %q, want %q", data, "data")
	}
}

func TestRealCopyPreservesMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	dst := filepath.Join(dir, "copy.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	// WriteFile is subject to umask; read back the mode the source actually got.
	srcInfo, err := os.Stat(src)
	if err != nil {
		t.Fatal(err)
	}

	if err := NewReal().Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	dstInfo, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if dstInfo.Mode().Perm() != srcInfo.Mode().Perm() {
		t.Errorf("mode = %v, want %v", dstInfo.Mode().Perm(), srcInfo.Mode().Perm())
	}
}

func TestRealTimes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ts, err := NewReal().Times(path)
	if err != nil {
		t.Fatalf("Times: %v", err)
	}
	if ts.Modified.IsZero() {
		t.Error("Modified should be set")
	}

	if _, err := NewReal().Times(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDryRunLeavesDiskUntouched(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dstDir := filepath.Join(dir, "out")
	if err := os.WriteFile(src, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(dstDir, 0755); err != nil {
		t.Fatal(err)
	}

	d := NewDryRun()
	dst := filepath.Join(dstDir, "a.txt")

	if err := d.Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if exists, _ := afero.Exists(d, dst); !exists {
		t.Error("dry-run copy should be visible through the dry-run filesystem")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("dry-run copy must not reach the disk")
	}

	if err := d.Remove(src); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("dry-run remove must not delete the file: %v", err)
	}

	if err := d.Move(src, filepath.Join(dstDir, "b.txt")); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("dry-run move must keep the source on disk: %v", err)
	}
}
