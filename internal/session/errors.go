package session

import (
	"fmt"
	"strings"

	"github.com/tamzrod/rheed-regctl/internal/regproto"
	"github.com/tamzrod/rheed-regctl/internal/status"
)

// SlotError is one failed PARAM write during a download.
type SlotError struct {
	Index int
	Addr  regproto.Address
	Err   error
}

func (e SlotError) Error() string {
	return fmt.Sprintf("slot %d (0x%04x): %v", e.Index, uint16(e.Addr), e.Err)
}

// DownloadError lists every slot that failed. The download does not stop
// at the first failure, so slots absent from Failed were written.
type DownloadError struct {
	Attempted int
	Failed    []SlotError
}

func (e *DownloadError) Error() string {
	parts := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("session: download: %d/%d slots failed: %s",
		len(e.Failed), e.Attempted, strings.Join(parts, " | "))
}

func (e *DownloadError) Unwrap() []error {
	out := make([]error, len(e.Failed))
	for i, f := range e.Failed {
		out[i] = f.Err
	}
	return out
}

// Code reports the code of the first failed slot.
func (e *DownloadError) Code() uint16 {
	if len(e.Failed) == 0 {
		return status.CodeGeneric
	}
	return status.ErrorCode(e.Failed[0].Err)
}

// Indices returns the failed slot indices in ascending order.
func (e *DownloadError) Indices() []int {
	out := make([]int, len(e.Failed))
	for i, f := range e.Failed {
		out[i] = f.Index
	}
	return out
}
