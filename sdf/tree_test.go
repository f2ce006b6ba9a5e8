package sdf

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func twoLinkModel(t *testing.T) *Model {
	t.Helper()
	root := mustParse(t, `<sdf version="1.6"><model name="m">
		<link name="A"/>
		<link name="B"/>
		<joint name="J" type="revolute"><parent>A</parent><child>B</child><axis><xyz>0 0 1</xyz></axis></joint>
	</model></sdf>`)
	return &root.Models[0]
}

func TestKinematicTree(t *testing.T) {
	m := twoLinkModel(t)
	a, b := m.Link("A"), m.Link("B")
	if a == nil || b == nil {
		t.Fatalf("links not found")
	}

	children := m.ChildJoints(a)
	if len(children) != 1 || children[0].Name != "J" {
		t.Fatalf("ChildJoints(A) = %v", children)
	}
	if got := m.ChildJoints(b); len(got) != 0 {
		t.Fatalf("ChildJoints(B) = %v", got)
	}
	if j := m.ParentJoint(b); j == nil || j.Name != "J" {
		t.Fatalf("ParentJoint(B) = %v", j)
	}
	if j := m.ParentJoint(a); j != nil {
		t.Fatalf("ParentJoint(A) = %v, want none", j)
	}

	j := m.Joint("J")
	parent, err := m.ParentLink(j)
	if err != nil || parent != a {
		t.Fatalf("ParentLink = %v, %v", parent, err)
	}
	child, err := m.ChildLink(j)
	if err != nil || child != b {
		t.Fatalf("ChildLink = %v, %v", child, err)
	}

	roots := m.RootLinks()
	if len(roots) != 1 || roots[0] != a {
		t.Fatalf("RootLinks = %v", roots)
	}
	if err := m.CheckReferences(); err != nil {
		t.Fatalf("CheckReferences: %v", err)
	}
}

func TestWorldParent(t *testing.T) {
	root := mustParse(t, `<sdf version="1.6"><model name="m">
		<link name="base"/>
		<joint name="anchor" type="fixed"><parent>world</parent><child>base</child></joint>
	</model></sdf>`)
	m := &root.Models[0]
	parent, err := m.ParentLink(m.Joint("anchor"))
	if err != nil || parent != nil {
		t.Fatalf("world parent must resolve to nil without error, got %v, %v", parent, err)
	}
	if err := root.CheckReferences(); err != nil {
		t.Fatalf("CheckReferences: %v", err)
	}
}

func TestDanglingReferences(t *testing.T) {
	root := mustParse(t, `<sdf version="1.6"><world name="w"><model name="m">
		<link name="a"/>
		<joint name="j1" type="fixed"><parent>a</parent><child>ghost</child></joint>
		<joint name="j2" type="fixed"><parent>phantom</parent><child>spectre</child></joint>
	</model></world></sdf>`)
	m := &root.Worlds[0].Models[0]

	_, err := m.ChildLink(m.Joint("j1"))
	var unresolved *UnresolvedReferenceError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}
	if unresolved.Joint != "j1" || unresolved.Role != "child" || unresolved.Link != "ghost" || unresolved.Model != "m" {
		t.Fatalf("unexpected details: %+v", unresolved)
	}

	err = root.CheckReferences()
	if got := len(multierr.Errors(err)); got != 3 {
		t.Fatalf("expected 3 aggregated errors, got %d: %v", got, err)
	}
}

func TestScopedLinkNames(t *testing.T) {
	root := mustParse(t, `<sdf version="1.6"><model name="robot">
		<link name="base"/>
		<model name="gripper"><link name="palm"/></model>
		<joint name="mount" type="fixed"><parent>base</parent><child>gripper::palm</child></joint>
	</model></sdf>`)
	m := &root.Models[0]
	child, err := m.ChildLink(m.Joint("mount"))
	if err != nil || child == nil || child.Name != "palm" {
		t.Fatalf("scoped child: %v, %v", child, err)
	}
	if m.Link("gripper::finger") != nil || m.Link("arm::palm") != nil {
		t.Fatalf("unknown scoped names must not resolve")
	}
}
