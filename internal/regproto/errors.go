package regproto

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the engine has no usable channel.
var ErrUnavailable = errors.New("regproto: channel unavailable")

// Error codes carried into the controller status block.
const (
	CodeChannel       uint16 = 0x10
	CodeShortResponse uint16 = 0x11
	CodeInvalidAddr   uint16 = 0x12
)

// ChannelError wraps an I/O failure of the underlying channel.
type ChannelError struct {
	Op   string
	Addr Address
	Err  error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("regproto: %s 0x%04x: channel: %v", e.Op, uint16(e.Addr), e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

func (e *ChannelError) Code() uint16 { return CodeChannel }

// ShortResponseError reports a read that ended before the full response arrived.
type ShortResponseError struct {
	Addr Address
	Got  int
	Err  error // cause reported by the channel, may be nil
}

func (e *ShortResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("regproto: read 0x%04x: short response %d/%d bytes: %v",
			uint16(e.Addr), e.Got, ResponseLen, e.Err)
	}
	return fmt.Sprintf("regproto: read 0x%04x: short response %d/%d bytes",
		uint16(e.Addr), e.Got, ResponseLen)
}

func (e *ShortResponseError) Unwrap() error { return e.Err }

func (e *ShortResponseError) Code() uint16 { return CodeShortResponse }

// InvalidAddressError rejects an address outside the register map.
type InvalidAddressError struct {
	Addr   Address
	Reason string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("regproto: invalid address 0x%04x: %s", uint16(e.Addr), e.Reason)
}

func (e *InvalidAddressError) Code() uint16 { return CodeInvalidAddr }
