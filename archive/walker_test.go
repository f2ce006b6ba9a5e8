package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWalk(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	// Create a test zip file
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)

	// Add files with different prefixes
	files := []struct {
		name    string
		content string
	}{
		{"docs/readme.txt", "readme content"},
		{"docs/guide.txt", "guide content"},
		{"src/main.go", "main content"},
		{"src/test.go", "test content"},
		{"config.yml", "config content"},
	}

	for _, f := range files {
		fw, err := w.Create(f.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", f.name, err)
		}
		if _, err := fw.Write([]byte(f.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", f.name, err)
		}
	}

	w.Close()
	zipFile.Close()

	t.Run("walk with docs prefix", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "docs/", func(_ fs.FS, archive string, file *zip.File) error {
			if archive != zipPath {
				t.Errorf("archive = %s, want %s", archive, zipPath)
			}
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}

		if len(visited) != 2 {
			t.Errorf("visited %d files, want 2", len(visited))
		}

		expected := map[string]bool{
			"docs/readme.txt": true,
			"docs/guide.txt":  true,
		}
		for _, name := range visited {
			if !expected[name] {
				t.Errorf("unexpected file visited: %s", name)
			}
		}
	})

	t.Run("walk with src prefix", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "src/", func(_ fs.FS, archive string, file *zip.File) error {
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}

		if len(visited) != 2 {
			t.Errorf("visited %d files, want 2", len(visited))
		}
	})

	t.Run("walk with no matching prefix", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "nonexistent/", func(_ fs.FS, archive string, file *zip.File) error {
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}

		if len(visited) != 0 {
			t.Errorf("visited %d files, want 0", len(visited))
		}
	})

	t.Run("walk with empty prefix", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "", func(_ fs.FS, archive string, file *zip.File) error {
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}

		if len(visited) != 5 {
			t.Errorf("visited %d files, want 5", len(visited))
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		err := Walk(zipPath, "docs/", func(_ fs.FS, archive string, file *zip.File) error {
			return expectedErr
		})

		if err != expectedErr {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
	})
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.zip", "", func(_ fs.FS, archive string, file *zip.File) error {
			return nil
		})

		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		tmpDir := t.TempDir()
		invalidZip := filepath.Join(tmpDir, "invalid.zip")

		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}

		err := Walk(invalidZip, "", func(_ fs.FS, archive string, file *zip.File) error {
			return nil
		})

		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestWalk_WithDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	// Create a zip with directories
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)

	// Add directory entries (usually created by zip utilities)
	dirHeader := &zip.FileHeader{
		Name: "mydir/",
	}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Add a file
	fw, err := w.Create("mydir/file.txt")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	fw.Write([]byte("content"))

	w.Close()
	zipFile.Close()

	// Walk should not call walkFn for directories
	var visited []string
	err = Walk(zipPath, "mydir/", func(_ fs.FS, archive string, file *zip.File) error {
		visited = append(visited, file.Name)
		return nil
	})

	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}

	// Should only visit the file, not the directory
	if len(visited) != 1 {
		t.Errorf("visited %d entries, want 1 (file only, not directory)", len(visited))
	}

	if len(visited) > 0 && visited[0] != "mydir/file.txt" {
		t.Errorf("visited %s, want mydir/file.txt", visited[0])
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	// Create a zip with multiple files
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	for i := 0; i < 5; i++ {
		fw, err := w.Create(filepath.Join("files", "file"+string(rune('0'+i))+".txt"))
		if err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
		fw.Write([]byte("content"))
	}
	w.Close()
	zipFile.Close()

	// Walk should stop when walkFn returns error
	var visited int
	stopErr := errors.New("stop walking")
	err = Walk(zipPath, "files/", func(_ fs.FS, archive string, file *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})

	if err != stopErr {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}

	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestWalk_FileContent(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	// Create a zip file
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	content := []byte("test content")
	fw, err := w.Create("test.txt")
	if err != nil {
		t.Fatalf("Failed to create file in zip: %v", err)
	}
	fw.Write(content)
	w.Close()
	zipFile.Close()

	// Walk and read file content
	err = Walk(zipPath, "", func(_ fs.FS, archive string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(rc); err != nil {
			return err
		}

		if !bytes.Equal(buf.Bytes(), content) {
			t.Errorf("content = %s, want %s", buf.Bytes(), content)
		}

		return nil
	})

	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestWalkFunc(t *testing.T) {
	// Test that WalkFunc has the correct signature
	var fn WalkFunc = func(_ fs.FS, archive string, file *zip.File) error {
		return nil
	}

	// Should be able to call it
	err := fn(nil, "test.zip", nil)
	if err != nil {
		t.Error("WalkFunc should work with nil file")
	}
}

func TestWalk_CaseSensitivity(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	fw, err := w.Create("Docs/README.txt")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()
	zipFile.Close()

	// Prefix matching is case-sensitive
	t.Run("case sensitive match", func(t *testing.T) {
		var visited int
		err := Walk(zipPath, "Docs/", func(_ fs.FS, archive string, file *zip.File) error {
			visited++
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if visited != 1 {
			t.Errorf("visited %d files with 'Docs/', want 1", visited)
		}
	})

	t.Run("case sensitive no match", func(t *testing.T) {
		var visited int
		err := Walk(zipPath, "docs/", func(_ fs.FS, archive string, file *zip.File) error {
			visited++
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if visited != 0 {
			t.Errorf("visited %d files with 'docs/', want 0", visited)
		}
	})
}

func writeZip(t *testing.T, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "models.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		fw.Write([]byte(content))
	}
	w.Close()
	zipFile.Close()
	return zipPath
}

func TestWalk_NaturalOrder(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"robot10.sdf": "",
		"robot2.sdf":  "",
		"robot1.sdf":  "",
	})

	var visited []string
	err := Walk(zipPath, "", func(_ fs.FS, _ string, file *zip.File) error {
		visited = append(visited, file.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	want := []string{"robot1.sdf", "robot2.sdf", "robot10.sdf"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestWalk_ArchiveFS(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"rover/model.sdf":          "<sdf/>",
		"rover/meshes/chassis.stl": "solid",
	})

	err := Walk(zipPath, "rover/model", func(fsys fs.FS, _ string, file *zip.File) error {
		data, err := fs.ReadFile(fsys, "rover/meshes/chassis.stl")
		if err != nil {
			return err
		}
		if string(data) != "solid" {
			t.Errorf("sibling content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		safe bool
	}{
		{"model.sdf", true},
		{"rover/meshes/a.dae", true},
		{"rover/..hidden/a.dae", true},
		{"/etc/passwd", false},
		{`\windows\system32`, false},
		{"../escape.sdf", false},
		{"rover/../../escape.sdf", false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.safe {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.safe)
		}
	}
}

func TestIsArchive(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("non-zip extension", func(t *testing.T) {
		name := filepath.Join(tmpDir, "model.sdf")
		if err := os.WriteFile(name, []byte("<sdf/>"), 0644); err != nil {
			t.Fatal(err)
		}
		if got, err := IsArchive(name); err != nil || got {
			t.Errorf("IsArchive() = %v, %v, want false", got, err)
		}
	})

	t.Run("zip extension but invalid content", func(t *testing.T) {
		name := filepath.Join(tmpDir, "fake.zip")
		if err := os.WriteFile(name, []byte("not a real zip file"), 0644); err != nil {
			t.Fatal(err)
		}
		if got, err := IsArchive(name); err != nil || got {
			t.Errorf("IsArchive() = %v, %v, want false", got, err)
		}
	})

	t.Run("real zip", func(t *testing.T) {
		name := writeZip(t, map[string]string{"model.sdf": "<sdf/>"})
		if got, err := IsArchive(name); err != nil || !got {
			t.Errorf("IsArchive() = %v, %v, want true", got, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := IsArchive(filepath.Join(tmpDir, "missing.zip")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}
