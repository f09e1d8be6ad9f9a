package config

// Defaults for the initial RHEED FPGA build and its serial link.
const (
	DefaultDriver    = "goburrow"
	DefaultBaud      = 115200
	DefaultDataBits  = 8
	DefaultStopBits  = 1
	DefaultParity    = "N"
	DefaultTimeoutMs = 1000

	DefaultNumRegs = 5
	DefaultVersion = 0x0008
	DefaultLED     = 0x0009

	DefaultCanvasWidth  = 700
	DefaultCanvasHeight = 500
	DefaultCropWidth    = 48
	DefaultCropHeight   = 48

	DefaultMirrorTransport = "modbus"
	DefaultMirrorTimeoutMs = 1000
)

// Normalize fills unset fields with defaults.
// It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	s := &cfg.Serial
	if s.Driver == "" {
		s.Driver = DefaultDriver
	}
	if s.Baud == 0 {
		s.Baud = DefaultBaud
	}
	if s.DataBits == 0 {
		s.DataBits = DefaultDataBits
	}
	if s.StopBits == 0 {
		s.StopBits = DefaultStopBits
	}
	if s.Parity == "" {
		s.Parity = DefaultParity
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultTimeoutMs
	}

	// Param0 defaults to 0x0000, which is also the zero value.
	r := &cfg.Registers
	if r.NumRegs == 0 {
		r.NumRegs = DefaultNumRegs
	}
	if r.Version == 0 && r.LED == 0 {
		r.Version = DefaultVersion
		r.LED = DefaultLED
	}

	if cfg.Canvas.Width == 0 && cfg.Canvas.Height == 0 {
		cfg.Canvas = SizeConfig{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight}
	}
	if cfg.Crop.Width == 0 && cfg.Crop.Height == 0 {
		cfg.Crop = SizeConfig{Width: DefaultCropWidth, Height: DefaultCropHeight}
	}

	if m := cfg.Mirror; m != nil {
		if m.Transport == "" {
			m.Transport = DefaultMirrorTransport
		}
		if m.TimeoutMs == 0 {
			m.TimeoutMs = DefaultMirrorTimeoutMs
		}
	}
}
