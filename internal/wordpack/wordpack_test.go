package wordpack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	pack, err := Parse("demo.wdpck", []byte("cat,dog, sun ,,mountain lion,"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pack.Name != "demo" {
		t.Errorf("Name %q, want demo", pack.Name)
	}
	want := []string{"cat", "dog", "sun", "mountain lion"}
	if len(pack.Words) != len(want) {
		t.Fatalf("got %d words %v, want %d", len(pack.Words), pack.Words, len(want))
	}
	for i, w := range want {
		if pack.Words[i] != w {
			t.Errorf("word %d = %q, want %q", i, pack.Words[i], w)
		}
	}
}

func TestParse_EmptyIsError(t *testing.T) {
	if _, err := Parse("x.wdpck", []byte(" , ,")); !errors.Is(err, ErrEmptyPack) {
		t.Errorf("got %v, want ErrEmptyPack", err)
	}
}

func TestLoad_Embedded(t *testing.T) {
	pack, err := Load("", "everyday")
	if err != nil {
		t.Fatalf("Load embedded pack: %v", err)
	}
	if len(pack.Words) == 0 {
		t.Error("embedded pack should not be empty")
	}
}

func TestLoad_DirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "everyday"+Ext)
	if err := os.WriteFile(path, []byte("alpha,beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	pack, err := Load(dir, "everyday")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pack.Words) != 2 || pack.Words[0] != "alpha" {
		t.Errorf("expected the directory pack to win, got %v", pack.Words)
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("", "nosuchpack"); err == nil {
		t.Error("Load should fail for a pack that exists nowhere")
	}
}

func TestList_MergesDirAndEmbedded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom"+Ext), []byte("a,b"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-pack files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names := List(dir)
	if !containsName(names, "custom") {
		t.Errorf("List %v should include the directory pack", names)
	}
	if !containsName(names, "everyday") || !containsName(names, "science") {
		t.Errorf("List %v should include embedded packs", names)
	}
	if containsName(names, "notes") {
		t.Errorf("List %v should skip non-.wdpck files", names)
	}
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
