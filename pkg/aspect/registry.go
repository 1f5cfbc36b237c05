package aspect

import (
	"fmt"
	"sync"
)

// System states. Controls interpret them, the codec only names them.
var (
	Disabled = SystemState(0)
	Hovered  = SystemState(1)
	Pressed  = SystemState(2)
	Checked  = SystemState(3)
	Focused  = SystemState(4)
	Selected = SystemState(5)
	ReadOnly = SystemState(6)
	Invalid  = SystemState(7)
)

var systemStateNames = [SystemStateCount]string{
	"Disabled", "Hovered", "Pressed", "Checked",
	"Focused", "Selected", "ReadOnly", "Invalid",
}

var (
	registryMu      sync.RWMutex
	subcontrolNames = []string{"Control"}
	subcontrolByKey = map[string]Aspect{"Control": Control}
	userStateNames  []string
	userStateByKey  = map[string]Aspect{}
)

// RegisterSubcontrol allocates the next free subcontrol id for name.
// Registering a name twice returns the id of the first registration.
// It panics once the 12 bit id space is exhausted.
func RegisterSubcontrol(name string) Aspect {
	registryMu.Lock()
	defer registryMu.Unlock()

	if sc, ok := subcontrolByKey[name]; ok {
		return sc
	}
	sc := SubcontrolID(len(subcontrolNames))
	subcontrolNames = append(subcontrolNames, name)
	subcontrolByKey[name] = sc
	return sc
}

// RegisterUserState allocates the next free user state bit for name.
// It panics when all user state bits are taken.
func RegisterUserState(name string) Aspect {
	registryMu.Lock()
	defer registryMu.Unlock()

	if s, ok := userStateByKey[name]; ok {
		return s
	}
	s := UserState(len(userStateNames))
	userStateNames = append(userStateNames, name)
	userStateByKey[name] = s
	return s
}

// SubcontrolName returns the registered name of the subcontrol of a.
func SubcontrolName(a Aspect) string {
	id := a.SubcontrolIndex()

	registryMu.RLock()
	defer registryMu.RUnlock()
	if id < len(subcontrolNames) {
		return subcontrolNames[id]
	}
	return fmt.Sprintf("Subcontrol(%d)", id)
}

// LookupSubcontrol returns the subcontrol registered under name.
func LookupSubcontrol(name string) (Aspect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	sc, ok := subcontrolByKey[name]
	return sc, ok
}

// stateName returns the name of a single state bit.
func stateName(bit int) string {
	if bit < SystemStateCount {
		return systemStateNames[bit]
	}
	n := bit - SystemStateCount

	registryMu.RLock()
	defer registryMu.RUnlock()
	if n < len(userStateNames) {
		return userStateNames[n]
	}
	return fmt.Sprintf("UserState(%d)", n)
}

func lookupUserState(name string) (Aspect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := userStateByKey[name]
	return s, ok
}
