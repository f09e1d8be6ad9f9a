package config

type Config struct {
	Serial    SerialConfig   `yaml:"serial"`
	Registers RegisterConfig `yaml:"registers"`
	Image     SizeConfig     `yaml:"image"`
	Canvas    SizeConfig     `yaml:"canvas"`
	Crop      SizeConfig     `yaml:"crop"`
	Poll      PollConfig     `yaml:"poll"`
	Mirror    *MirrorConfig  `yaml:"mirror"` // optional, opt-in
}

// ---- SERIAL ----

type SerialConfig struct {
	Port      string `yaml:"port"`
	Driver    string `yaml:"driver"` // goburrow | bugst
	Baud      int    `yaml:"baud"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"` // N | E | O
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- REGISTER MAP ----

type RegisterConfig struct {
	NumRegs int    `yaml:"num_regs"`
	Param0  uint16 `yaml:"param0"`
	Version uint16 `yaml:"version"`
	LED     uint16 `yaml:"led"`
}

// ---- IMAGE GEOMETRY ----

type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"` // 0 disables
}

// ---- MIRROR ----

type MirrorConfig struct {
	Transport string `yaml:"transport"` // modbus | ingest
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`
}
