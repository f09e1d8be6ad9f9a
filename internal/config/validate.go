package config

import (
	"fmt"

	"github.com/tamzrod/rheed-regctl/internal/status"
)

// MaxNumRegs bounds the PARAM block (and the mirror status block).
const MaxNumRegs = 64

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// SERIAL LINK
	// ------------------------------------------------------------

	s := cfg.Serial
	if s.Port == "" {
		return fmt.Errorf("serial: port is required")
	}
	switch s.Driver {
	case "goburrow", "bugst":
	default:
		return fmt.Errorf("serial: unknown driver %q", s.Driver)
	}
	if s.Baud <= 0 {
		return fmt.Errorf("serial: baud must be > 0, got %d", s.Baud)
	}
	if s.DataBits < 5 || s.DataBits > 8 {
		return fmt.Errorf("serial: data_bits must be 5..8, got %d", s.DataBits)
	}
	if s.StopBits != 1 && s.StopBits != 2 {
		return fmt.Errorf("serial: stop_bits must be 1 or 2, got %d", s.StopBits)
	}
	switch s.Parity {
	case "N", "E", "O":
	default:
		return fmt.Errorf("serial: parity must be N, E or O, got %q", s.Parity)
	}
	if s.TimeoutMs <= 0 {
		return fmt.Errorf("serial: timeout_ms must be > 0, got %d", s.TimeoutMs)
	}

	// ------------------------------------------------------------
	// REGISTER MAP
	// ------------------------------------------------------------

	r := cfg.Registers
	if r.NumRegs < 1 || r.NumRegs > MaxNumRegs {
		return fmt.Errorf("registers: num_regs must be 1..%d, got %d", MaxNumRegs, r.NumRegs)
	}

	start := int(r.Param0)
	end := start + r.NumRegs - 1
	if end > 0xFFFF {
		return fmt.Errorf("registers: param block 0x%04x+%d exceeds 16-bit address space", r.Param0, r.NumRegs)
	}
	if r.Version == r.LED {
		return fmt.Errorf("registers: version and led share address 0x%04x", r.Version)
	}
	for name, addr := range map[string]uint16{"version": r.Version, "led": r.LED} {
		// overlap check (inclusive)
		if int(addr) >= start && int(addr) <= end {
			return fmt.Errorf(
				"registers: %s address 0x%04x overlaps param block 0x%04x-0x%04x",
				name, addr, start, end,
			)
		}
	}

	// ------------------------------------------------------------
	// IMAGE GEOMETRY
	// ------------------------------------------------------------

	for name, sz := range map[string]SizeConfig{"image": cfg.Image, "canvas": cfg.Canvas, "crop": cfg.Crop} {
		if sz.Width <= 0 || sz.Height <= 0 {
			return fmt.Errorf("%s: width and height must be > 0, got %dx%d", name, sz.Width, sz.Height)
		}
	}
	if cfg.Crop.Width > cfg.Image.Width || cfg.Crop.Height > cfg.Image.Height {
		return fmt.Errorf(
			"crop: %dx%d larger than image %dx%d",
			cfg.Crop.Width, cfg.Crop.Height, cfg.Image.Width, cfg.Image.Height,
		)
	}

	// ------------------------------------------------------------
	// POLL + MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0, got %d", cfg.Poll.IntervalMs)
	}

	if m := cfg.Mirror; m != nil {
		switch m.Transport {
		case "modbus", "ingest":
		default:
			return fmt.Errorf("mirror: unknown transport %q", m.Transport)
		}
		if m.Endpoint == "" {
			return fmt.Errorf("mirror: endpoint is required when mirror is set")
		}
		if m.TimeoutMs <= 0 {
			return fmt.Errorf("mirror: timeout_ms must be > 0, got %d", m.TimeoutMs)
		}
		last := int(m.Address) + status.BlockSize(r.NumRegs) - 1
		if last > 0xFFFF {
			return fmt.Errorf("mirror: status block at %d exceeds 16-bit address space", m.Address)
		}
	}

	return nil
}
