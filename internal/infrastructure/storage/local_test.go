package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	path, size, err := s.Save(context.Background(), strings.NewReader("hello upload"), "deed.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello upload")) {
		t.Fatalf("size = %d", size)
	}
	if filepath.Ext(path) != ".pdf" {
		t.Fatalf("extension not kept: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello upload" {
		t.Fatalf("stored content = %q, %v", data, err)
	}
}

func TestLocalStore_Save_UniqueNames(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	p1, _, err := s.Save(context.Background(), strings.NewReader("v1"), "deed.pdf")
	if err != nil {
		t.Fatalf("Save v1: %v", err)
	}
	p2, _, err := s.Save(context.Background(), strings.NewReader("v2"), "deed.pdf")
	if err != nil {
		t.Fatalf("Save v2: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("re-upload clobbered earlier file: %s", p1)
	}
}

func TestLocalStore_Save_CancelledContext(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := s.Save(ctx, strings.NewReader("x"), "deed.pdf"); err == nil {
		t.Fatal("cancelled context accepted")
	}
}

func TestNewLocalStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}
