package rrg

// SwitchCatalogue is the "Switch catalogue" collaborator of §6.2: a lookup
// from SwitchID to its timing/topology properties.
type SwitchCatalogue interface {
	Switch(id SwitchID) (Switch, bool)
}

// SwitchTable is a slice-backed SwitchCatalogue; index i answers SwitchID(i).
type SwitchTable []Switch

// Switch implements SwitchCatalogue.
func (t SwitchTable) Switch(id SwitchID) (Switch, bool) {
	if int(id) < 0 || int(id) >= len(t) {
		return Switch{}, false
	}

	return t[id], true
}
