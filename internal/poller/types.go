package poller

import "time"

// PollResult is a snapshot produced by one probe.
type PollResult struct {
	At        time.Time
	Version   uint32
	Available bool
	Err       error // non-nil means the probe failed
}
