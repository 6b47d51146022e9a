package difficulty

import (
	"strings"
)

// Modifier is the closed set of gameplay modifiers the engine understands,
// stored as the client's bit flags.
type Modifier uint32

const (
	None       Modifier = 0
	NoFail     Modifier = 1 << iota >> 1
	Easy
	TouchDevice
	Hidden
	HardRock
	SuddenDeath
	DoubleTime
	Relax
	HalfTime
	Nightcore // always used with DoubleTime
	Flashlight
	SpunOut Modifier = 1 << 12
)

var modAcronyms = []struct {
	mod  Modifier
	name string
}{
	{NoFail, "NF"},
	{Easy, "EZ"},
	{TouchDevice, "TD"},
	{Hidden, "HD"},
	{HardRock, "HR"},
	{SuddenDeath, "SD"},
	{Nightcore, "NC"},
	{DoubleTime, "DT"},
	{HalfTime, "HT"},
	{Relax, "RX"},
	{Flashlight, "FL"},
	{SpunOut, "SO"},
}

func (mods Modifier) Active(mod Modifier) bool {
	return mods&mod != 0
}

func (mods Modifier) String() (s string) {
	for _, entry := range modAcronyms {
		if mods.Active(entry.mod) {
			if entry.mod == Nightcore && mods.Active(DoubleTime) {
				mods &= ^DoubleTime
			}

			s += entry.name
		}
	}

	if s == "" {
		s = "NM"
	}

	return
}

// ParseMods converts an acronym string like "HDDT" to a Modifier set.
// Unknown pairs are ignored.
func ParseMods(s string) (mods Modifier) {
	s = strings.ToUpper(strings.TrimSpace(s))

	for i := 0; i+2 <= len(s); i += 2 {
		for _, entry := range modAcronyms {
			if s[i:i+2] == entry.name {
				mods |= entry.mod

				if entry.mod == Nightcore {
					mods |= DoubleTime
				}

				break
			}
		}
	}

	return
}

// Speed is the clock-rate multiplier implied by the mod set.
func (mods Modifier) Speed() float64 {
	if mods.Active(DoubleTime) {
		return 1.5
	} else if mods.Active(HalfTime) {
		return 0.75
	}

	return 1
}
