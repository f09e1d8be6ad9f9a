package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/tamzrod/rheed-regctl/internal/config"
	"github.com/tamzrod/rheed-regctl/internal/mirror"
	"github.com/tamzrod/rheed-regctl/internal/poller"
	"github.com/tamzrod/rheed-regctl/internal/regproto"
	"github.com/tamzrod/rheed-regctl/internal/selection"
	"github.com/tamzrod/rheed-regctl/internal/serialport"
	"github.com/tamzrod/rheed-regctl/internal/session"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rheedctl [flags] <config.yaml> [command args...]")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfgPath string, args []string) error {
	// --------------------
	// Load + normalize + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	regs := regproto.RegisterMap{
		NumRegs: cfg.Registers.NumRegs,
		Param0:  regproto.Address(cfg.Registers.Param0),
		Version: regproto.Address(cfg.Registers.Version),
		LED:     regproto.Address(cfg.Registers.LED),
	}

	geo, err := selection.NewGeometry(
		selection.Size{Width: cfg.Image.Width, Height: cfg.Image.Height},
		selection.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		selection.Size{Width: cfg.Crop.Width, Height: cfg.Crop.Height},
	)
	if err != nil {
		return err
	}
	glog.Infof("image %dx%d shown at %dx%d (scale %.4f), box %dx%d px",
		geo.Image.Width, geo.Image.Height, geo.Resized.Width, geo.Resized.Height,
		geo.Scale, geo.Crop.Width, geo.Crop.Height)

	// --------------------
	// Serial channel. A missing port leaves the device unavailable;
	// selection still works.
	// --------------------

	var ch io.ReadWriter
	port, err := serialport.Open(serialport.FromConfig(cfg.Serial))
	if err != nil {
		glog.Warningf("no serial port, device operations disabled: %v", err)
	} else {
		ch = port
	}
	eng := regproto.New(ch, regs)
	defer eng.Close()

	// --------------------
	// Status mirror (optional)
	// --------------------

	mw, closeMirror, err := mirror.Build(cfg)
	if err != nil {
		return fmt.Errorf("mirror build failed: %w", err)
	}
	defer closeMirror()

	var sink session.StatusSink
	if mw != nil {
		sink = mw
	}

	sess, err := session.New(eng, geo, sink)
	if err != nil {
		return err
	}

	// --------------------
	// Liveness poller (optional)
	// --------------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Poll.IntervalMs > 0 {
		p, err := poller.New(poller.Config{
			Interval: time.Duration(cfg.Poll.IntervalMs) * time.Millisecond,
		}, sess)
		if err != nil {
			return fmt.Errorf("poller build failed: %w", err)
		}

		out := make(chan poller.PollResult)
		go watch(ctx, out)
		go p.Run(ctx, out)
	}

	return newShell(sess).Run(args...)
}

// watch logs liveness transitions only.
func watch(ctx context.Context, in <-chan poller.PollResult) {
	var (
		seen    bool
		healthy bool
		version uint32
	)

	for {
		select {
		case <-ctx.Done():
			return
		case res := <-in:
			ok := res.Err == nil
			if seen && ok == healthy && (!ok || res.Version == version) {
				continue
			}
			seen, healthy = true, ok
			if ok {
				version = res.Version
				glog.Infof("poll: device up, version 0x%08x", res.Version)
			} else {
				glog.Warningf("poll: device down: %v", res.Err)
			}
		}
	}
}
