package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/tamzrod/rheed-regctl/internal/regproto"
	"github.com/tamzrod/rheed-regctl/internal/session"
)

// Shell is the operator front end over one session.
type Shell struct {
	Shell   *ishell.Shell
	Session *session.Session
}

const sessionKey = "$session"

var errUnavailable = errors.New("device unavailable")

func newShell(sess *session.Session) *Shell {
	s := &Shell{Shell: ishell.New(), Session: sess}
	s.Shell.Set(sessionKey, sess)
	s.Shell.SetPrompt("rheed > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// Run processes one command when args are given, otherwise runs interactively.
func (s *Shell) Run(args ...string) error {
	if len(args) > 0 {
		return s.Shell.Process(args...)
	}
	s.Shell.Println("RHEED register controller. Type 'help' for commands.")
	s.Shell.Run()
	return nil
}

func sessionFrom(c *ishell.Context) *session.Session {
	return c.Get(sessionKey).(*session.Session)
}

// mustBeAvailable disables a command while the serial channel is down.
func mustBeAvailable(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if !sessionFrom(c).Available() {
			c.Err(errUnavailable)
			return
		}
		fn(c)
	}
}

// Register addresses and values are hex, with or without a 0x prefix.
func parseHex32(s string) (uint32, error) {
	v, err := strconv.ParseUint(trimHexPrefix(s), 16, 32)
	return uint32(v), err
}

func parseAddr(s string) (regproto.Address, error) {
	v, err := strconv.ParseUint(trimHexPrefix(s), 16, 16)
	return regproto.Address(v), err
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

var commands = []*ishell.Cmd{
	&StatusCmd,
	&VersionCmd,
	&LEDCmd,
	&ReadCmd,
	&WriteCmd,
	&ClickCmd,
	&ListCmd,
	&SetCmd,
	&DownloadCmd,
}

var (
	// StatusCmd prints channel availability and the status snapshot.
	StatusCmd = ishell.Cmd{
		Name: "status",
		Help: "",
		Func: func(c *ishell.Context) {
			sess := sessionFrom(c)
			snap := sess.Snapshot()
			c.Printf("available=%v health=%d last_error=0x%02x version=0x%08x downloaded=%d\n",
				sess.Available(), snap.Health, snap.LastErrorCode, snap.Version, len(snap.Params))
		},
	}

	// VersionCmd reads the VERSION register.
	VersionCmd = ishell.Cmd{
		Name:    "version",
		Aliases: []string{"ver"},
		Help:    "",
		Func: mustBeAvailable(func(c *ishell.Context) {
			v, err := sessionFrom(c).ReadVersion()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("0x%x\n", v)
		}),
	}

	// LEDCmd writes the LED register.
	LEDCmd = ishell.Cmd{
		Name: "led",
		Help: "VALUE(hex)",
		Func: mustBeAvailable(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("VALUE required"))
				return
			}
			v, err := parseHex32(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid VALUE: %v", err))
				return
			}
			if err := sessionFrom(c).SetLED(v); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// ReadCmd reads any readable register.
	ReadCmd = ishell.Cmd{
		Name:    "read",
		Aliases: []string{"r"},
		Help:    "ADDR(hex)",
		Func: mustBeAvailable(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("ADDR required"))
				return
			}
			addr, err := parseAddr(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid ADDR: %v", err))
				return
			}
			v, err := sessionFrom(c).ReadRegister(addr)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("0x%04x = 0x%08X\n", uint16(addr), v)
		}),
	}

	// WriteCmd writes any writable register.
	WriteCmd = ishell.Cmd{
		Name:    "write",
		Aliases: []string{"w"},
		Help:    "ADDR(hex) VALUE(hex)",
		Func: mustBeAvailable(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("ADDR and VALUE required"))
				return
			}
			addr, err := parseAddr(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid ADDR: %v", err))
				return
			}
			v, err := parseHex32(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("invalid VALUE: %v", err))
				return
			}
			if err := sessionFrom(c).WriteRegister(addr, v); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// ClickCmd registers a click at canvas coordinates.
	ClickCmd = ishell.Cmd{
		Name:    "click",
		Aliases: []string{"c"},
		Help:    "X Y (canvas pixels)",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("X and Y required"))
				return
			}
			x, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid X: %v", err))
				return
			}
			y, err := strconv.ParseFloat(c.Args[1], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid Y: %v", err))
				return
			}
			coord, err := sessionFrom(c).Click(x, y)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("box at %v\n", coord)
		},
	}

	// ListCmd prints the selection buffer.
	ListCmd = ishell.Cmd{
		Name:    "list",
		Aliases: []string{"ls"},
		Help:    "",
		Func: func(c *ishell.Context) {
			sel := sessionFrom(c).Selections()
			if len(sel) == 0 {
				c.Println("no boxes")
				return
			}
			c.Println("box        X        Y")
			for i, coord := range sel {
				c.Printf("%3d %8d %8d\n", i, coord.X, coord.Y)
			}
		},
	}

	// SetCmd edits an occupied box.
	SetCmd = ishell.Cmd{
		Name: "set",
		Help: "BOX X Y (image pixels)",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("BOX, X and Y required"))
				return
			}
			i, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid BOX: %v", err))
				return
			}
			coord, err := sessionFrom(c).Set(i, c.Args[1], c.Args[2])
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("box %d = %v\n", i, coord)
		},
	}

	// DownloadCmd writes every box to its PARAM register.
	DownloadCmd = ishell.Cmd{
		Name:    "download",
		Aliases: []string{"dl"},
		Help:    "",
		Func: mustBeAvailable(func(c *ishell.Context) {
			if err := sessionFrom(c).DownloadAll(); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}
)
