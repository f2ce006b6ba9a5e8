package importer

import (
	"fmt"
	"image"
	"path"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"sdfc/resource"
	"sdfc/sdf"
)

func (im *Importer) geometry(g *sdf.Geometry, role ShapeRole) (GeometrySpec, error) {
	switch s := g.Shape.(type) {
	case *sdf.EmptyShape:
		return GeometrySpec{Kind: s.Kind()}, nil
	case *sdf.BoxShape:
		size := vector3(s.Size)
		return GeometrySpec{Kind: s.Kind(), Size: &size}, nil
	case *sdf.CylinderShape:
		return GeometrySpec{Kind: s.Kind(), Radius: s.Radius, Length: s.Length}, nil
	case *sdf.SphereShape:
		return GeometrySpec{Kind: s.Kind(), Radius: s.Radius}, nil
	case *sdf.PlaneShape:
		normal, size := vector3(s.Normal), math32.Vec3(float32(s.Size.X), float32(s.Size.Y), 0)
		return GeometrySpec{Kind: s.Kind(), Normal: &normal, Size: &size}, nil
	case *sdf.PolylineShape:
		spec := GeometrySpec{Kind: s.Kind(), Height: value(s.Height, 1)}
		for _, p := range s.Points {
			spec.Points = append(spec.Points, math32.Vec2(float32(p.X), float32(p.Y)))
		}
		return spec, nil
	case *sdf.MeshShape:
		res, err := im.res.Resolve(s.URI)
		if err != nil {
			return GeometrySpec{}, err
		}
		scale := math32.Vec3(1, 1, 1)
		if s.Scale != nil {
			scale = vector3(*s.Scale)
		}
		spec := GeometrySpec{
			Kind:   s.Kind(),
			Source: res.Location,
			Format: format(res),
			Scale:  &scale,
			Convex: role == RoleCollision && im.opts.ConvexDecompose,
		}
		if s.Submesh != nil {
			spec.Submesh = s.Submesh.Name
		}
		return spec, nil
	case *sdf.ImageShape:
		res, err := im.image(s.URI)
		if err != nil {
			return GeometrySpec{}, err
		}
		scale := math32.Vec3(float32(s.Scale), float32(s.Scale), 1)
		return GeometrySpec{
			Kind:   s.Kind(),
			Source: res.Location,
			Format: format(res),
			Scale:  &scale,
			Height: value(s.Height, 1),
		}, nil
	case *sdf.HeightmapShape:
		res, err := im.image(s.URI)
		if err != nil {
			return GeometrySpec{}, err
		}
		hf, err := im.heightField(res, s)
		if err != nil {
			return GeometrySpec{}, err
		}
		return GeometrySpec{Kind: s.Kind(), Source: res.Location, Format: format(res), Heights: hf}, nil
	}
	return GeometrySpec{}, fmt.Errorf("unsupported geometry %T", g.Shape)
}

func (im *Importer) image(uri string) (*resource.Resource, error) {
	res, err := im.res.Resolve(uri)
	if err != nil {
		return nil, err
	}
	if !res.IsImage() {
		return nil, fmt.Errorf("resource %q is not an image (%s)", uri, res.Location)
	}
	return res, nil
}

// format returns detected file type or, for formats filetype does not know
// (collada, stl, obj), lower case extension.
func format(res *resource.Resource) string {
	if t, err := res.Sniff(); err == nil && t != filetype.Unknown {
		return t.Extension
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(res.Path)), ".")
}

// heightField samples grayscale heightmap image. White is the highest point,
// Size.Z above Position.Z.
func (im *Importer) heightField(res *resource.Resource, s *sdf.HeightmapShape) (*HeightField, error) {
	f, err := res.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode heightmap %s: %w", res.Location, err)
	}
	if colored(imaging.Clone(src)) {
		im.log.Warn("Heightmap is not grayscale, using luminance", zap.String("source", res.Location))
	}
	var img image.Image = imaging.Grayscale(src)
	if n := im.opts.HeightmapResolution; n > 0 && (img.Bounds().Dx() != n || img.Bounds().Dy() != n) {
		img = imaging.Resize(img, n, n, imaging.Linear)
	}
	gray := imaging.Clone(img)

	hf := &HeightField{
		Rows: gray.Bounds().Dy(),
		Cols: gray.Bounds().Dx(),
		Size: math32.Vec3(1, 1, 1),
	}
	if s.Size != nil {
		hf.Size = vector3(*s.Size)
	}
	if s.Pos != nil {
		hf.Position = vector3(*s.Pos)
	}

	hf.Samples = make([]float32, 0, hf.Rows*hf.Cols)
	hf.Min, hf.Max = math32.Inf(1), math32.Inf(-1)
	for y := range hf.Rows {
		row := gray.Pix[y*gray.Stride:]
		for x := range hf.Cols {
			h := float32(row[x*4]) / 255 * hf.Size.Z
			hf.Min, hf.Max = min(hf.Min, h), max(hf.Max, h)
			hf.Samples = append(hf.Samples, h)
		}
	}
	im.log.Debug("Heightmap sampled",
		zap.String("source", res.Location), zap.Int("rows", hf.Rows), zap.Int("cols", hf.Cols))
	return hf, nil
}

// colored reports whether any pixel has distinct color channels.
func colored(img *image.NRGBA) bool {
	w := img.Rect.Dx() * 4
	for y := range img.Rect.Dy() {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for i := 0; i < w; i += 4 {
			if row[i] != row[i+1] || row[i+1] != row[i+2] {
				return true
			}
		}
	}
	return false
}
