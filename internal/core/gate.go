package core

// RequiresAuth reports whether a command kind is gated behind the admin
// secret. Adding an entry is open to anyone connected; AUTHENTICATE is
// itself the credential check and is never gated.
func RequiresAuth(kind CommandKind) bool {
	switch kind {
	case CommandUpdateCount, CommandRemovePerson:
		return true
	default:
		return false
	}
}

// Gate decides whether a session may run a command.
type Gate struct {
	registry *Registry
}

// NewGate builds a gate over the given registry.
func NewGate(registry *Registry) *Gate {
	return &Gate{registry: registry}
}

// Check returns nil when the command is allowed, or a denial whose
// message is suitable for an AUTH_FAILED reply to the sender.
func (g *Gate) Check(c *Client, kind CommandKind) *CoreError {
	if !RequiresAuth(kind) {
		return nil
	}
	if !g.registry.IsAuthenticated(c) {
		return coreError(ErrCodeAuthRequired, MsgAuthRequired)
	}
	return nil
}
