package sdf

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Sensor carries declared type plus at most one populated data block. Type
// names what simulator should instantiate, while Data is selected by which
// block element is actually present; several types share a block (depth
// uses camera, gpu_ray uses ray).
type Sensor struct {
	Name       string
	Type       SensorType
	AlwaysOn   *bool
	UpdateRate *float64
	Visualize  *bool
	Topic      *string
	Frames     []Frame
	Pose       *Pose
	Plugins    []Plugin
	Data       SensorData
}

// SensorData is closed set of sensor specific parameter blocks.
type SensorData interface {
	// Kind returns SDF tag of the block.
	Kind() string
	isSensorData()
}

// Noise is noise model applied to a measurement.
type Noise struct {
	Type       NoiseType
	Mean       *float64
	StdDev     *float64
	BiasMean   *float64
	BiasStdDev *float64
	Precision  *float64
}

// NoisyValue is measurement channel which only carries noise model.
type NoisyValue struct {
	Noise *Noise
}

type AltimeterSensor struct {
	VerticalPosition *NoisyValue
	VerticalVelocity *NoisyValue
}

type CameraSensor struct {
	Name          *string
	HorizontalFOV float64
	Image         Image
	Clip          Clip
	Save          *Save
	DepthCamera   *DepthCamera
	Noise         *Noise
	Distortion    *Distortion
	Lens          *Lens
	Frames        []Frame
	Pose          *Pose
}

// MultiCameraSensor is camera block repeated for stereo and similar rigs.
type MultiCameraSensor struct {
	Cameras []CameraSensor
}

type Image struct {
	Width  int
	Height int
	Format *ImageFormat
}

type Clip struct {
	Near float64
	Far  float64
}

type Save struct {
	Enabled bool
	Path    string
}

type DepthCamera struct {
	Output string
}

type Distortion struct {
	K1     *float64
	K2     *float64
	K3     *float64
	P1     *float64
	P2     *float64
	Center *Vector2d
}

type Lens struct {
	Type           LensType
	ScaleToHFOV    bool
	CustomFunction *CustomFunction
	CutoffAngle    *float64
	EnvTextureSize *int
}

// CustomFunction maps angle to image radius as c1*f*fun(angle/c2 + c3).
type CustomFunction struct {
	C1  *float64
	C2  *float64
	C3  *float64
	F   *float64
	Fun LensFunction
}

type ContactSensor struct {
	Collision string
	Topic     *string
}

type ForceTorqueSensor struct {
	Frame            *ForceTorqueFrame
	MeasureDirection *MeasureDirection
}

type GPSSensor struct {
	PositionSensing *GPSSensing
	VelocitySensing *GPSSensing
}

type GPSSensing struct {
	Horizontal *NoisyValue
	Vertical   *NoisyValue
}

type IMUSensor struct {
	Topic              *string
	AngularVelocity    *AxesNoise
	LinearAcceleration *AxesNoise
	Noise              *Noise
}

// AxesNoise holds noise models of x, y and z measurement channels.
type AxesNoise struct {
	X *NoisyValue
	Y *NoisyValue
	Z *NoisyValue
}

type LogicalCameraSensor struct {
	Near          float64
	Far           float64
	AspectRatio   float64
	HorizontalFOV float64
}

type MagnetometerSensor struct {
	AxesNoise
}

type RaySensor struct {
	Horizontal ScanDirection
	Vertical   *ScanDirection
	Range      RayRange
	Noise      *Noise
}

type ScanDirection struct {
	Samples    int
	Resolution *float64
	MinAngle   float64
	MaxAngle   float64
}

type RayRange struct {
	Min        float64
	Max        float64
	Resolution *float64
}

type RFIDSensor struct{}

type RFIDTagSensor struct{}

type SonarSensor struct {
	Min    float64
	Max    float64
	Radius float64
}

// TransceiverSensor models wireless transmitters and receivers.
type TransceiverSensor struct {
	ESSID        *string
	Frequency    *float64
	MinFrequency *float64
	MaxFrequency *float64
	Gain         float64
	Power        float64
	Sensitivity  *float64
}

func (*AltimeterSensor) Kind() string     { return "altimeter" }
func (*CameraSensor) Kind() string        { return "camera" }
func (*MultiCameraSensor) Kind() string   { return "multicamera" }
func (*ContactSensor) Kind() string       { return "contact" }
func (*ForceTorqueSensor) Kind() string   { return "force_torque" }
func (*GPSSensor) Kind() string           { return "gps" }
func (*IMUSensor) Kind() string           { return "imu" }
func (*LogicalCameraSensor) Kind() string { return "logical_camera" }
func (*MagnetometerSensor) Kind() string  { return "magnetometer" }
func (*RaySensor) Kind() string           { return "ray" }
func (*RFIDSensor) Kind() string          { return "rfid" }
func (*RFIDTagSensor) Kind() string       { return "rfidtag" }
func (*SonarSensor) Kind() string         { return "sonar" }
func (*TransceiverSensor) Kind() string   { return "transceiver" }

func (*AltimeterSensor) isSensorData()     {}
func (*CameraSensor) isSensorData()        {}
func (*MultiCameraSensor) isSensorData()   {}
func (*ContactSensor) isSensorData()       {}
func (*ForceTorqueSensor) isSensorData()   {}
func (*GPSSensor) isSensorData()           {}
func (*IMUSensor) isSensorData()           {}
func (*LogicalCameraSensor) isSensorData() {}
func (*MagnetometerSensor) isSensorData()  {}
func (*RaySensor) isSensorData()           {}
func (*RFIDSensor) isSensorData()          {}
func (*RFIDTagSensor) isSensorData()       {}
func (*SonarSensor) isSensorData()         {}
func (*TransceiverSensor) isSensorData()   {}

var sensorBlocks = []string{
	"altimeter", "camera", "contact", "force_torque", "gps", "imu", "logical_camera",
	"magnetometer", "ray", "rfid", "rfidtag", "sonar", "transceiver",
}

// sensorBlock tells which data block given sensor type is expected to carry.
func sensorBlock(t SensorType) string {
	switch t {
	case SensorTypeDepth, SensorTypeMulticamera:
		return "camera"
	case SensorTypeGpuRay:
		return "ray"
	case SensorTypeWirelessReceiver, SensorTypeWirelessTransmitter:
		return "transceiver"
	default:
		return string(t)
	}
}

func (s *Sensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "name", &s.Name)
	enumAttr(f, "type", SensorTypeNames(), &s.Type)
	optValue(f, "always_on", &s.AlwaysOn)
	optValue(f, "update_rate", &s.UpdateRate)
	optValue(f, "visualize", &s.Visualize)
	optValue(f, "topic", &s.Topic)
	many(f, "frame", &s.Frames)
	maybe(f, "pose", &s.Pose)
	many(f, "plugin", &s.Plugins)
	f.check(func() (err error) {
		s.Data, err = p.sensorData(el, s.Type)
		return err
	})
	return f.done()
}

func (p *parser) sensorData(el *etree.Element, typ SensorType) (SensorData, error) {
	if typ == SensorTypeMulticamera {
		return parseVariant[MultiCameraSensor, *MultiCameraSensor](p, el)
	}
	kind, err := union(el, sensorBlocks...)
	if err != nil || kind == "" {
		return nil, err
	}
	if expected := sensorBlock(typ); expected != kind {
		p.log.Debug("Sensor block does not match declared type",
			zap.String("type", string(typ)), zap.String("block", kind))
	}
	switch kind {
	case "altimeter":
		return parseSensorBlock[AltimeterSensor](p, el, kind)
	case "camera":
		return parseSensorBlock[CameraSensor](p, el, kind)
	case "contact":
		return parseSensorBlock[ContactSensor](p, el, kind)
	case "force_torque":
		return parseSensorBlock[ForceTorqueSensor](p, el, kind)
	case "gps":
		return parseSensorBlock[GPSSensor](p, el, kind)
	case "imu":
		return parseSensorBlock[IMUSensor](p, el, kind)
	case "logical_camera":
		return parseSensorBlock[LogicalCameraSensor](p, el, kind)
	case "magnetometer":
		return parseSensorBlock[MagnetometerSensor](p, el, kind)
	case "ray":
		return parseSensorBlock[RaySensor](p, el, kind)
	case "rfid":
		return parseSensorBlock[RFIDSensor](p, el, kind)
	case "rfidtag":
		return parseSensorBlock[RFIDTagSensor](p, el, kind)
	case "sonar":
		return parseSensorBlock[SonarSensor](p, el, kind)
	case "transceiver":
		return parseSensorBlock[TransceiverSensor](p, el, kind)
	}
	return nil, nil
}

func parseSensorBlock[T any, P interface {
	node[T]
	SensorData
}](p *parser, el *etree.Element, tag string) (SensorData, error) {
	v, err := parseOne[T, P](p, el, tag)
	if err != nil {
		return nil, err
	}
	return P(&v), nil
}

// parseVariant populates block whose fields live directly on the sensor
// element.
func parseVariant[T any, P interface {
	node[T]
	SensorData
}](p *parser, el *etree.Element) (SensorData, error) {
	var v T
	if err := P(&v).parse(p, el); err != nil {
		return nil, err
	}
	return P(&v), nil
}

func (n *Noise) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	f.check(func() (err error) {
		// older grammar versions spell type as sub-element
		if _, ok := lookupAttr(el, "type"); ok {
			n.Type, err = attrEnum[NoiseType](el, "type", NoiseTypeNames())
		} else {
			n.Type, err = childEnum[NoiseType](el, "type", NoiseTypeNames())
		}
		return err
	})
	optValue(f, "mean", &n.Mean)
	optValue(f, "stddev", &n.StdDev)
	optValue(f, "bias_mean", &n.BiasMean)
	optValue(f, "bias_stddev", &n.BiasStdDev)
	optValue(f, "precision", &n.Precision)
	return f.done()
}

func (n *NoisyValue) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "noise", &n.Noise)
	return f.done()
}

func (a *AltimeterSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "vertical_position", &a.VerticalPosition)
	maybe(f, "vertical_velocity", &a.VerticalVelocity)
	return f.done()
}

func (c *CameraSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optAttr(f, "name", &c.Name)
	value(f, "horizontal_fov", &c.HorizontalFOV)
	one(f, "image", &c.Image)
	one(f, "clip", &c.Clip)
	maybe(f, "save", &c.Save)
	maybe(f, "depth_camera", &c.DepthCamera)
	maybe(f, "noise", &c.Noise)
	maybe(f, "distortion", &c.Distortion)
	maybe(f, "lens", &c.Lens)
	many(f, "frame", &c.Frames)
	maybe(f, "pose", &c.Pose)
	return f.done()
}

func (m *MultiCameraSensor) parse(p *parser, el *etree.Element) error {
	var err error
	m.Cameras, err = parseMany[CameraSensor](p, el, "camera", true)
	return err
}

func (i *Image) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "width", &i.Width)
	value(f, "height", &i.Height)
	optEnum(f, "format", ImageFormatNames(), &i.Format)
	return f.done()
}

func (c *Clip) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "near", &c.Near)
	value(f, "far", &c.Far)
	return f.done()
}

func (s *Save) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	attr(f, "enabled", &s.Enabled)
	value(f, "path", &s.Path)
	return f.done()
}

func (d *DepthCamera) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "output", &d.Output)
	return f.done()
}

func (d *Distortion) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "k1", &d.K1)
	optValue(f, "k2", &d.K2)
	optValue(f, "k3", &d.K3)
	optValue(f, "p1", &d.P1)
	optValue(f, "p2", &d.P2)
	maybe(f, "center", &d.Center)
	return f.done()
}

func (l *Lens) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	enum(f, "type", LensTypeNames(), &l.Type)
	value(f, "scale_to_hfov", &l.ScaleToHFOV)
	maybe(f, "custom_function", &l.CustomFunction)
	optValue(f, "cutoff_angle", &l.CutoffAngle)
	optValue(f, "env_texture_size", &l.EnvTextureSize)
	return f.done()
}

func (c *CustomFunction) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "c1", &c.C1)
	optValue(f, "c2", &c.C2)
	optValue(f, "c3", &c.C3)
	optValue(f, "f", &c.F)
	enum(f, "fun", LensFunctionNames(), &c.Fun)
	return f.done()
}

func (c *ContactSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "collision", &c.Collision)
	optValue(f, "topic", &c.Topic)
	return f.done()
}

func (ft *ForceTorqueSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optEnum(f, "frame", ForceTorqueFrameNames(), &ft.Frame)
	optEnum(f, "measure_direction", MeasureDirectionNames(), &ft.MeasureDirection)
	return f.done()
}

func (g *GPSSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "position_sensing", &g.PositionSensing)
	maybe(f, "velocity_sensing", &g.VelocitySensing)
	return f.done()
}

func (g *GPSSensing) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "horizontal", &g.Horizontal)
	maybe(f, "vertical", &g.Vertical)
	return f.done()
}

func (i *IMUSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "topic", &i.Topic)
	maybe(f, "angular_velocity", &i.AngularVelocity)
	maybe(f, "linear_acceleration", &i.LinearAcceleration)
	maybe(f, "noise", &i.Noise)
	return f.done()
}

func (a *AxesNoise) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	maybe(f, "x", &a.X)
	maybe(f, "y", &a.Y)
	maybe(f, "z", &a.Z)
	return f.done()
}

func (l *LogicalCameraSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "near", &l.Near)
	value(f, "far", &l.Far)
	value(f, "aspect_ratio", &l.AspectRatio)
	value(f, "horizontal_fov", &l.HorizontalFOV)
	return f.done()
}

func (m *MagnetometerSensor) parse(p *parser, el *etree.Element) error {
	return m.AxesNoise.parse(p, el)
}

func (r *RaySensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	f.check(func() error {
		scan, err := lookupChild(el, "scan")
		if err != nil {
			return err
		}
		if scan == nil {
			return &MissingFieldError{Element: el.Tag, Field: "scan"}
		}
		sf := p.fields(scan)
		one(sf, "horizontal", &r.Horizontal)
		maybe(sf, "vertical", &r.Vertical)
		return sf.done()
	})
	one(f, "range", &r.Range)
	maybe(f, "noise", &r.Noise)
	return f.done()
}

func (s *ScanDirection) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "samples", &s.Samples)
	optValue(f, "resolution", &s.Resolution)
	value(f, "min_angle", &s.MinAngle)
	value(f, "max_angle", &s.MaxAngle)
	return f.done()
}

func (r *RayRange) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "min", &r.Min)
	value(f, "max", &r.Max)
	optValue(f, "resolution", &r.Resolution)
	return f.done()
}

func (*RFIDSensor) parse(*parser, *etree.Element) error    { return nil }
func (*RFIDTagSensor) parse(*parser, *etree.Element) error { return nil }

func (s *SonarSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	value(f, "min", &s.Min)
	value(f, "max", &s.Max)
	value(f, "radius", &s.Radius)
	return f.done()
}

func (t *TransceiverSensor) parse(p *parser, el *etree.Element) error {
	f := p.fields(el)
	optValue(f, "essid", &t.ESSID)
	optValue(f, "frequency", &t.Frequency)
	optValue(f, "min_frequency", &t.MinFrequency)
	optValue(f, "max_frequency", &t.MaxFrequency)
	value(f, "gain", &t.Gain)
	value(f, "power", &t.Power)
	optValue(f, "sensitivity", &t.Sensitivity)
	return f.done()
}
