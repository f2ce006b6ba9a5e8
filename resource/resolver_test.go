package resource

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, data, 0644))
}

// layout: <tmp>/rover/model.sdf, <tmp>/rover/meshes/chassis.stl
func roverTree(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rover", "model.sdf"), []byte("<sdf/>"))
	writeFile(t, filepath.Join(dir, "rover", "meshes", "chassis.stl"), []byte("solid chassis"))
	return dir
}

func TestResolve_Sibling(t *testing.T) {
	dir := roverTree(t)
	r, err := ForFile(filepath.Join(dir, "rover", "model.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("meshes/chassis.stl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rover", "meshes", "chassis.stl"), res.Location)

	data, err := res.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "solid chassis", string(data))
}

func TestResolve_ModelURIParent(t *testing.T) {
	dir := roverTree(t)
	r, err := ForFile(filepath.Join(dir, "rover", "model.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("model://rover/meshes/chassis.stl")
	require.NoError(t, err)
	assert.Equal(t, "model://rover/meshes/chassis.stl", res.URI)
	assert.Equal(t, filepath.Join(dir, "rover", "meshes", "chassis.stl"), res.Location)
}

func TestResolve_SiblingWins(t *testing.T) {
	dir := roverTree(t)
	writeFile(t, filepath.Join(dir, "rover", "rover", "meshes", "chassis.stl"), []byte("solid nested"))
	r, err := ForFile(filepath.Join(dir, "rover", "model.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("model://rover/meshes/chassis.stl")
	require.NoError(t, err)
	data, err := res.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "solid nested", string(data))
}

func TestResolve_FileURIAbsolute(t *testing.T) {
	dir := roverTree(t)
	mesh := filepath.Join(dir, "rover", "meshes", "chassis.stl")
	r, err := ForFile(filepath.Join(t.TempDir(), "world.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("file://" + filepath.ToSlash(mesh))
	require.NoError(t, err)
	assert.Equal(t, mesh, res.Location)
}

func TestResolve_SearchPaths(t *testing.T) {
	extra := t.TempDir()
	writeFile(t, filepath.Join(extra, "ground", "meshes", "plane.dae"), []byte("<COLLADA/>"))

	r, err := ForFile(filepath.Join(roverTree(t), "rover", "model.sdf"), []string{t.TempDir(), extra}, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("model://ground/meshes/plane.dae")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(extra, "ground", "meshes", "plane.dae"), res.Location)
}

func TestResolve_Missing(t *testing.T) {
	dir := roverTree(t)
	r, err := ForFile(filepath.Join(dir, "rover", "model.sdf"), []string{t.TempDir()}, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = r.Resolve("model://rover/meshes/wheel.stl")
	require.Error(t, err)

	var rerr *ResourceResolutionError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "model://rover/meshes/wheel.stl", rerr.URI)
	// sibling, parent, literal, search path
	assert.Len(t, rerr.Tried, 4)
	assert.Contains(t, err.Error(), "wheel.stl")
}

func TestResolve_DirectoryIsNotResource(t *testing.T) {
	dir := roverTree(t)
	r, err := ForFile(filepath.Join(dir, "rover", "model.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = r.Resolve("model://rover/meshes")
	assert.Error(t, err)
}

func TestResolve_Empty(t *testing.T) {
	r := NewResolver(os.DirFS(t.TempDir()), "", "model.sdf", nil, nil)
	_, err := r.Resolve("model://")
	var rerr *ResourceResolutionError
	assert.True(t, errors.As(err, &rerr))
}

func TestResolve_Archive(t *testing.T) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for name, content := range map[string]string{
		"rover/model.sdf":          "<sdf/>",
		"rover/meshes/chassis.stl": "solid chassis",
	} {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	r := NewResolver(zr, "models.zip", "rover/model.sdf", nil, zaptest.NewLogger(t))
	res, err := r.Resolve("model://rover/meshes/chassis.stl")
	require.NoError(t, err)
	assert.Equal(t, "rover/meshes/chassis.stl", res.Path)
	assert.Equal(t, filepath.Join("models.zip", "rover", "meshes", "chassis.stl"), res.Location)

	res, err = r.Resolve("meshes/chassis.stl")
	require.NoError(t, err)
	assert.Equal(t, "rover/meshes/chassis.stl", res.Path)
}

func TestResource_IsImage(t *testing.T) {
	dir := t.TempDir()
	img := new(bytes.Buffer)
	require.NoError(t, png.Encode(img, image.NewGray(image.Rect(0, 0, 4, 4))))
	writeFile(t, filepath.Join(dir, "terrain", "height.png"), img.Bytes())
	writeFile(t, filepath.Join(dir, "terrain", "mesh.stl"), []byte("solid terrain"))

	r, err := ForFile(filepath.Join(dir, "terrain", "model.sdf"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := r.Resolve("height.png")
	require.NoError(t, err)
	assert.True(t, res.IsImage())
	kind, err := res.Sniff()
	require.NoError(t, err)
	assert.Equal(t, "png", kind.Extension)

	res, err = r.Resolve("mesh.stl")
	require.NoError(t, err)
	assert.False(t, res.IsImage())
}

func TestResolver_For(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "world", "empty.world"), []byte("<sdf/>"))
	writeFile(t, filepath.Join(dir, "world", "rover", "model.sdf"), []byte("<sdf/>"))
	writeFile(t, filepath.Join(dir, "world", "rover", "meshes", "chassis.stl"), []byte("solid chassis"))

	r, err := ForFile(filepath.Join(dir, "world", "empty.world"), nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	inc, err := r.Resolve("model://rover/model.sdf")
	require.NoError(t, err)

	// relative to included model now
	res, err := r.For(inc).Resolve("meshes/chassis.stl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "world", "rover", "meshes", "chassis.stl"), res.Location)

	_, err = r.Resolve("meshes/chassis.stl")
	assert.Error(t, err)
}
