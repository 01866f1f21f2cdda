// Package modifier tracks the inversion and extension modifier keys. Every
// modifier can be held from two sources at once and stays active until
// both let go.
package modifier

type Modifier int

const (
	Inv1 Modifier = iota // first-inversion request
	Inv2                 // second-inversion request
	Ext7                 // seventh-extension request
	Ext9                 // ninth-extension request

	numModifiers
)

var modifierNames = [numModifiers]string{"inv1", "inv2", "ext7", "ext9"}

func (m Modifier) String() string {
	if m < 0 || m >= numModifiers {
		return "unknown"
	}
	return modifierNames[m]
}

// ParseModifier is the inverse of String.
func ParseModifier(s string) (Modifier, bool) {
	for i, name := range modifierNames {
		if name == s {
			return Modifier(i), true
		}
	}
	return 0, false
}

// Source is the physical origin of a modifier press.
type Source int

const (
	Keyboard Source = iota // a real key
	Pointer                // an on-screen control

	numSources
)

func (s Source) String() string {
	if s == Pointer {
		return "pointer"
	}
	return "keyboard"
}

// ParseSource maps "keyboard" and "pointer".
func ParseSource(s string) (Source, bool) {
	switch s {
	case "keyboard":
		return Keyboard, true
	case "pointer":
		return Pointer, true
	}
	return 0, false
}

// Mode names the extension a Change is about.
type Mode int

const (
	Seventh Mode = iota
	Ninth
)

func (m Mode) String() string {
	if m == Ninth {
		return "ninth"
	}
	return "seventh"
}

// Change is emitted once per real on/off transition of seventh or ninth mode.
type Change struct {
	Mode Mode
	On   bool
}

// Machine is not safe for concurrent use; the owning session serializes it.
type Machine struct {
	held     [numModifiers][numSources]bool
	onChange func(Change)
}

// New creates a Machine. onChange may be nil.
func New(onChange func(Change)) *Machine {
	return &Machine{onChange: onChange}
}

func valid(mod Modifier, src Source) bool {
	return mod >= 0 && mod < numModifiers && src >= 0 && src < numSources
}

// Active is true while either source holds mod.
func (m *Machine) Active(mod Modifier) bool {
	if mod < 0 || mod >= numModifiers {
		return false
	}
	return m.held[mod][Keyboard] || m.held[mod][Pointer]
}

// Held reports whether src holds mod.
func (m *Machine) Held(mod Modifier, src Source) bool {
	if !valid(mod, src) {
		return false
	}
	return m.held[mod][src]
}

// Press holds mod from src and reports whether the press took effect.
//
// Ext9 is refused while the same source holds another modifier; otherwise
// it wins and clears Inv1, Inv2 and Ext7 from both sources. Inv1, Inv2 and
// Ext7 are refused while Ext9 is active.
func (m *Machine) Press(mod Modifier, src Source) bool {
	if !valid(mod, src) {
		return false
	}
	if m.held[mod][src] {
		return true
	}

	if mod != Ext9 {
		if m.Active(Ext9) {
			return false
		}
		was := m.Active(mod)
		m.held[mod][src] = true
		if mod == Ext7 && !was {
			m.emit(Seventh, true)
		}
		return true
	}

	for _, other := range []Modifier{Inv1, Inv2, Ext7} {
		if m.held[other][src] {
			return false
		}
	}
	seventh := m.Active(Ext7)
	ninth := m.Active(Ext9)
	for _, other := range []Modifier{Inv1, Inv2, Ext7} {
		m.held[other] = [numSources]bool{}
	}
	m.held[Ext9][src] = true
	if seventh {
		m.emit(Seventh, false)
	}
	if !ninth {
		m.emit(Ninth, true)
	}
	return true
}

// Release lets go of mod from src. Releasing something not held is a no-op.
func (m *Machine) Release(mod Modifier, src Source) {
	if !valid(mod, src) || !m.held[mod][src] {
		return
	}
	m.held[mod][src] = false
	if m.Active(mod) {
		return
	}
	switch mod {
	case Ext7:
		m.emit(Seventh, false)
	case Ext9:
		m.emit(Ninth, false)
	}
}

// Set presses or releases depending on held.
func (m *Machine) Set(mod Modifier, src Source, held bool) bool {
	if held {
		return m.Press(mod, src)
	}
	m.Release(mod, src)
	return true
}

// Inversion is the inversion the held modifiers ask for. Inv1 with Inv2
// means third inversion only on a seventh chord; on a triad it clamps to
// second.
func (m *Machine) Inversion() int {
	inv1, inv2 := m.Active(Inv1), m.Active(Inv2)
	switch {
	case m.Active(Ext9):
		return 0
	case inv1 && inv2 && m.Active(Ext7):
		return 3
	case inv2:
		return 2
	case inv1:
		return 1
	}
	return 0
}

// Extension is 9, 7 or 0 for a plain triad.
func (m *Machine) Extension() int {
	switch {
	case m.Active(Ext9):
		return 9
	case m.Active(Ext7):
		return 7
	}
	return 0
}

// Reset drops every modifier from every source, emitting the off changes
// for seventh and ninth mode if they were on.
func (m *Machine) Reset() {
	seventh, ninth := m.Active(Ext7), m.Active(Ext9)
	m.held = [numModifiers][numSources]bool{}
	if seventh {
		m.emit(Seventh, false)
	}
	if ninth {
		m.emit(Ninth, false)
	}
}

func (m *Machine) emit(mode Mode, on bool) {
	if m.onChange != nil {
		m.onChange(Change{Mode: mode, On: on})
	}
}
