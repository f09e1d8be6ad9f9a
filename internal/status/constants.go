package status

// Controller Status Block layout constants.
// These values define the mirror protocol and MUST NOT be configurable.

// ---- SLOT INDICES ----

// SlotHealthCode holds the controller health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the code of the last failed device operation.
const SlotLastErrorCode = 1

// SlotVersionHi and SlotVersionLo hold the last VERSION register read.
const SlotVersionHi = 2
const SlotVersionLo = 3

// SlotParamCount holds the number of PARAM registers last downloaded.
const SlotParamCount = 4

// SlotParamStart is the first of NumRegs (x, y) slot pairs.
const SlotParamStart = 5

// SlotsPerParam is the number of slots used by one packed PARAM value.
const SlotsPerParam = 2

// BlockSize returns the block length for a controller with numRegs PARAM registers.
func BlockSize(numRegs int) int {
	return SlotParamStart + SlotsPerParam*numRegs
}

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before any device operation.
const HealthUnknown uint16 = 0

// HealthOK represents a controller whose last device operation succeeded.
const HealthOK uint16 = 1

// HealthError represents a failed last device operation.
const HealthError uint16 = 2

// HealthUnavailable represents a dead or missing serial channel.
const HealthUnavailable uint16 = 3

// ---- ERROR CODES ----

// CodeGeneric is used when an error exposes no code of its own.
const CodeGeneric uint16 = 1
