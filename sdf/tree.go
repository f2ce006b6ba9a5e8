package sdf

import (
	"strings"

	"go.uber.org/multierr"
)

// WorldFrame is parent name which attaches joint to the world instead of a
// link.
const WorldFrame = "world"

// Link returns link with given name or nil. Scoped names ("inner::link")
// descend into nested models.
func (m *Model) Link(name string) *Link {
	for i := range m.Links {
		if m.Links[i].Name == name {
			return &m.Links[i]
		}
	}
	if scope, rest, ok := strings.Cut(name, "::"); ok {
		for i := range m.Models {
			if m.Models[i].Name == scope {
				return m.Models[i].Link(rest)
			}
		}
	}
	return nil
}

// Joint returns joint with given name or nil.
func (m *Model) Joint(name string) *Joint {
	for i := range m.Joints {
		if m.Joints[i].Name == name {
			return &m.Joints[i]
		}
	}
	return nil
}

// ChildJoints returns joints having link as their parent, in document order.
func (m *Model) ChildJoints(link *Link) []*Joint {
	var out []*Joint
	for i := range m.Joints {
		if m.Joints[i].Parent == link.Name {
			out = append(out, &m.Joints[i])
		}
	}
	return out
}

// ParentJoint returns first joint having link as its child, nil for root
// links.
func (m *Model) ParentJoint(link *Link) *Joint {
	for i := range m.Joints {
		if m.Joints[i].Child == link.Name {
			return &m.Joints[i]
		}
	}
	return nil
}

// ParentLink resolves parent reference of a joint. Joints attached to the
// world resolve to nil without error.
func (m *Model) ParentLink(j *Joint) (*Link, error) {
	if j.Parent == WorldFrame {
		return nil, nil
	}
	return m.resolve(j, "parent", j.Parent)
}

// ChildLink resolves child reference of a joint.
func (m *Model) ChildLink(j *Joint) (*Link, error) {
	return m.resolve(j, "child", j.Child)
}

func (m *Model) resolve(j *Joint, role, name string) (*Link, error) {
	if l := m.Link(name); l != nil {
		return l, nil
	}
	return nil, &UnresolvedReferenceError{Model: m.Name, Joint: j.Name, Role: role, Link: name}
}

// RootLinks returns links which are not child of any joint, in document
// order.
func (m *Model) RootLinks() []*Link {
	var out []*Link
	for i := range m.Links {
		if m.ParentJoint(&m.Links[i]) == nil {
			out = append(out, &m.Links[i])
		}
	}
	return out
}

// CheckReferences verifies every joint of the model and its nested models
// refers to existing links. All failures are reported together.
func (m *Model) CheckReferences() (err error) {
	for i := range m.Joints {
		j := &m.Joints[i]
		_, perr := m.ParentLink(j)
		_, cerr := m.ChildLink(j)
		err = multierr.Append(err, multierr.Combine(perr, cerr))
	}
	for i := range m.Models {
		err = multierr.Append(err, m.Models[i].CheckReferences())
	}
	return err
}

// CheckReferences verifies joint references of every model in the document.
func (r *Root) CheckReferences() (err error) {
	for i := range r.Models {
		err = multierr.Append(err, r.Models[i].CheckReferences())
	}
	for i := range r.Worlds {
		for j := range r.Worlds[i].Models {
			err = multierr.Append(err, r.Worlds[i].Models[j].CheckReferences())
		}
	}
	return err
}
