package sdf

import (
	"github.com/beevik/etree"
)

// Material describes visual appearance, either through named script or
// through explicit colors.
type Material struct {
	Script   *Script
	Shader   *Shader
	Lighting *bool
	Ambient  *Color
	Diffuse  *Color
	Specular *Color
	Emissive *Color
}

// Script names material defined in external resource files.
type Script struct {
	URIs []string
	Name string
}

type Shader struct {
	Type      ShaderType
	NormalMap *string
}

func (m *Material) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "script", &m.Script)
	maybe(f, "shader", &m.Shader)
	optValue(f, "lighting", &m.Lighting)
	maybe(f, "ambient", &m.Ambient)
	maybe(f, "diffuse", &m.Diffuse)
	maybe(f, "specular", &m.Specular)
	maybe(f, "emissive", &m.Emissive)
	return f.done()
}

func (s *Script) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	f.strings("uri", &s.URIs)
	value(f, "name", &s.Name)
	return f.done()
}

func (s *Shader) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enumAttr(f, "type", ShaderTypeNames(), &s.Type)
	optValue(f, "normal_map", &s.NormalMap)
	return f.done()
}
