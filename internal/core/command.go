package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandAuthenticate presents the shared admin secret.
	CommandAuthenticate CommandKind = iota
	// CommandAddPerson creates a new named counter.
	CommandAddPerson
	// CommandUpdateCount increments or decrements one counter.
	CommandUpdateCount
	// CommandRemovePerson deletes one counter.
	CommandRemovePerson
)

// Command represents an action requested by a client.
type Command struct {
	Kind   CommandKind
	Client *Client

	Password  string // CommandAuthenticate
	Name      string // CommandAddPerson
	ID        int64  // CommandUpdateCount, CommandRemovePerson
	Increment bool   // CommandUpdateCount
}

// String returns the wire name of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandAuthenticate:
		return "AUTHENTICATE"
	case CommandAddPerson:
		return "ADD_PERSON"
	case CommandUpdateCount:
		return "UPDATE_COUNT"
	case CommandRemovePerson:
		return "REMOVE_PERSON"
	default:
		return "UNKNOWN"
	}
}
