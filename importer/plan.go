package importer

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"
)

type Op string

const (
	OpAddModel  Op = "add_model"
	OpAddLink   Op = "add_link"
	OpAddShape  Op = "add_shape"
	OpAddJoint  Op = "add_joint"
	OpAddSensor Op = "add_sensor"
	OpAddLight  Op = "add_light"
	OpSetParent Op = "set_parent"
)

// Command is one recorded scene call. Exactly one spec is set for Add*
// operations, SetParent uses Handle and Parent only.
type Command struct {
	Op     Op          `yaml:"op"`
	Handle Handle      `yaml:"handle"`
	Parent Handle      `yaml:"parent,omitempty"`
	Model  *ModelSpec  `yaml:"model,omitempty"`
	Link   *LinkSpec   `yaml:"link,omitempty"`
	Shape  *ShapeSpec  `yaml:"shape,omitempty"`
	Joint  *JointSpec  `yaml:"joint,omitempty"`
	Sensor *SensorSpec `yaml:"sensor,omitempty"`
	Light  *LightSpec  `yaml:"light,omitempty"`
}

// Plan is Scene which only records what it was asked to do. It could be
// saved and replayed by a host later.
type Plan struct {
	ID       uuid.UUID `yaml:"id"`
	Source   string    `yaml:"source"`
	Version  string    `yaml:"version"`
	Commands []Command `yaml:"commands"`

	last Handle
}

func NewPlan(source, version string) (*Plan, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate plan id: %w", err)
	}
	return &Plan{ID: id, Source: source, Version: version}, nil
}

func (p *Plan) add(cmd Command) (Handle, error) {
	p.last++
	cmd.Handle = p.last
	p.Commands = append(p.Commands, cmd)
	return p.last, nil
}

func (p *Plan) AddModel(spec ModelSpec) (Handle, error) {
	return p.add(Command{Op: OpAddModel, Model: &spec})
}

func (p *Plan) AddLink(spec LinkSpec) (Handle, error) {
	return p.add(Command{Op: OpAddLink, Link: &spec})
}

func (p *Plan) AddShape(spec ShapeSpec) (Handle, error) {
	return p.add(Command{Op: OpAddShape, Shape: &spec})
}

func (p *Plan) AddJoint(spec JointSpec) (Handle, error) {
	if !p.valid(spec.Child) || (spec.Parent != 0 && !p.valid(spec.Parent)) {
		return 0, fmt.Errorf("joint %q refers to unknown handle", spec.Name)
	}
	return p.add(Command{Op: OpAddJoint, Joint: &spec})
}

func (p *Plan) AddSensor(spec SensorSpec) (Handle, error) {
	return p.add(Command{Op: OpAddSensor, Sensor: &spec})
}

func (p *Plan) AddLight(spec LightSpec) (Handle, error) {
	return p.add(Command{Op: OpAddLight, Light: &spec})
}

func (p *Plan) SetParent(child, parent Handle) error {
	if !p.valid(child) || !p.valid(parent) || child == parent {
		return fmt.Errorf("unable to attach %d to %d: bad handle", child, parent)
	}
	p.Commands = append(p.Commands, Command{Op: OpSetParent, Handle: child, Parent: parent})
	return nil
}

func (p *Plan) valid(h Handle) bool {
	return h > 0 && h <= p.last
}

// Created returns commands creating objects, optionally limited to a single
// operation.
func (p *Plan) Created(op Op) []Command {
	var out []Command
	for _, c := range p.Commands {
		if c.Op != OpSetParent && (op == "" || c.Op == op) {
			out = append(out, c)
		}
	}
	return out
}

// ParentOf returns last parent set for handle, zero if none.
func (p *Plan) ParentOf(h Handle) Handle {
	var parent Handle
	for _, c := range p.Commands {
		if c.Op == OpSetParent && c.Handle == h {
			parent = c.Parent
		}
	}
	return parent
}

// Encode writes plan as YAML document.
func (p *Plan) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("unable to encode plan: %w", err)
	}
	return enc.Close()
}

// DecodePlan reads plan previously written by Encode.
func DecodePlan(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Plan{}
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("unable to decode plan: %w", err)
	}
	for _, c := range p.Commands {
		p.last = max(p.last, c.Handle)
	}
	return p, nil
}
