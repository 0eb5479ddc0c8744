package epidemic

// State is the disease state of an individual. The numeric values are part of
// the contract: they index the transition table and the render palette.
type State uint8

const (
	Healthy   State = 0
	Sick      State = 1
	Immune    State = 2
	Recovered State = 3
	Dead      State = 4
)

// NumStates is the size of the State domain.
const NumStates = 5

var stateNames = [NumStates]string{
	Healthy:   "healthy",
	Sick:      "sick",
	Immune:    "immune",
	Recovered: "recovered",
	Dead:      "dead",
}

// States lists every state in report order.
func States() []State {
	return []State{Healthy, Sick, Immune, Recovered, Dead}
}

// Valid reports whether s belongs to the State domain.
func (s State) Valid() bool { return s < NumStates }

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// Individual is the record held by every grid cell.
type Individual struct {
	State    State
	Previous State
}
