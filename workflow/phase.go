package workflow

// Phase is the global workflow stage. Exactly one value is active at any
// time; it gates which operations each role may perform.
type Phase string

const (
	PhasePreWorkshop Phase = "pre_workshop"
	PhaseWorkshop    Phase = "workshop"
	PhasePosWorkshop Phase = "pos_workshop"
	PhaseEncerrado   Phase = "encerrado"

	// PhaseUnknown is returned when a raw value does not parse. Every gate
	// predicate fails closed on it.
	PhaseUnknown Phase = ""
)

// ParsePhase maps a raw status_sistema value to a Phase. Anything
// unrecognized yields PhaseUnknown.
func ParsePhase(raw string) Phase {
	switch raw {
	case "pre_workshop":
		return PhasePreWorkshop
	case "workshop":
		return PhaseWorkshop
	case "pos_workshop":
		return PhasePosWorkshop
	case "encerrado":
		return PhaseEncerrado
	}
	return PhaseUnknown
}

// Valid reports whether p is one of the four known phases
func (p Phase) Valid() bool {
	switch p {
	case PhasePreWorkshop, PhaseWorkshop, PhasePosWorkshop, PhaseEncerrado:
		return true
	}
	return false
}

// Display returns the human-readable label used by the dashboards
func (p Phase) Display() string {
	switch p {
	case PhasePreWorkshop:
		return "Pré-Workshop"
	case PhaseWorkshop:
		return "Workshop"
	case PhasePosWorkshop:
		return "Pós-Workshop"
	case PhaseEncerrado:
		return "Encerrado"
	}
	return "Desconhecido"
}
