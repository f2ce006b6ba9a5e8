package sdf

import (
	"strings"
	"testing"
)

func TestDumpContainsSuppliedValues(t *testing.T) {
	root := mustParse(t, `<sdf version="1.6">
		<model name="rover">
			<static>false</static>
			<pose>1 2 3 0 0 0.5</pose>
			<link name="chassis">
				<inertial><mass>12.5</mass></inertial>
				<collision name="hull">
					<geometry><box><size>1 0.6 0.3</size></box></geometry>
					<surface><friction><ode><mu>0.9</mu></ode></friction></surface>
				</collision>
				<visual name="paint">
					<geometry><mesh><uri>model://rover/meshes/hull.dae</uri><scale>2 2 2</scale></mesh></geometry>
					<material><script><uri>file://media/materials</uri><name>Rover/Red</name></script><diffuse>1 0 0 1</diffuse></material>
				</visual>
				<sensor name="imu" type="imu"><update_rate>100</update_rate><imu><topic>/imu</topic></imu></sensor>
			</link>
			<link name="wheel"/>
			<joint name="axle" type="revolute">
				<parent>chassis</parent>
				<child>wheel</child>
				<axis><xyz>0 1 0</xyz></axis>
			</joint>
			<plugin name="drive" filename="libdrive.so"><speed>3</speed></plugin>
		</model>
	</sdf>`)

	dump := root.String()
	for _, want := range []string{
		`SDF version="1.6"`,
		`Models[0] name="rover"`,
		`Static=false`,
		`Pose=1 2 3 0 0 0.5`,
		`Links[0] name="chassis"`,
		`Mass=12.5`,
		`Collisions[0] name="hull"`,
		`Shape <box>`,
		`Size=1 0.6 0.3`,
		`Mu=0.9`,
		`Shape <mesh>`,
		`URI="model://rover/meshes/hull.dae"`,
		`Scale=2 2 2`,
		`URIs[0]="file://media/materials"`,
		`Script name="Rover/Red"`,
		`Diffuse=1 0 0 1`,
		`Sensors[0] name="imu"`,
		`Type=imu`,
		`UpdateRate=100`,
		`Data <imu>`,
		`Topic="/imu"`,
		`Links[1] name="wheel"`,
		`Joints[0] name="axle"`,
		`Type=revolute`,
		`Parent="chassis"`,
		`Child="wheel"`,
		`XYZ=0 1 0`,
		`Plugins[0] name="drive"`,
		`Filename="libdrive.so"`,
		`<speed>3</speed>`,
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump does not contain %q\n%s", want, dump)
		}
	}

	for _, absent := range []string{"Gravity", "Axis2", "IXX", "SelfCollide"} {
		if strings.Contains(dump, absent) {
			t.Errorf("dump shows absent field %q", absent)
		}
	}
}

func TestDumpIndentsByDepth(t *testing.T) {
	root := mustParse(t, `<sdf version="1.6"><model name="m"><link name="l"><pose>0 0 1 0 0 0</pose></link></model></sdf>`)
	want := "SDF version=\"1.6\"\n" +
		"  Models[0] name=\"m\"\n" +
		"    Links[0] name=\"l\"\n" +
		"      Pose=0 0 1 0 0 0\n"
	if got := root.String(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestModelString(t *testing.T) {
	m := &Model{Name: "solo"}
	if got := m.String(); got != "Model name=\"solo\"\n" {
		t.Fatalf("String() = %q", got)
	}
	var nilRoot *Root
	if nilRoot.String() != "<nil Root>" {
		t.Fatalf("nil root")
	}
}
