package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Outbound is the envelope for frames sent to clients.
type Outbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Message types sent by clients.
const (
	TypeAuthenticate = "AUTHENTICATE"
	TypeAddPerson    = "ADD_PERSON"
	TypeUpdateCount  = "UPDATE_COUNT"
	TypeRemovePerson = "REMOVE_PERSON"
)

// Message types sent by the server.
const (
	TypeSyncState        = "SYNC_STATE"
	TypePersonAdded      = "PERSON_ADDED"
	TypeCountUpdated     = "COUNT_UPDATED"
	TypePersonRemoved    = "PERSON_REMOVED"
	TypeAuthSuccess      = "AUTH_SUCCESS"
	TypeAuthFailed       = "AUTH_FAILED"
	TypeAuthStatusUpdate = "AUTH_STATUS_UPDATE"
)

// Person is the wire shape of a counter entry.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AuthenticatePayload carries the shared admin secret.
type AuthenticatePayload struct {
	Password string `json:"password"`
}

// AddPersonPayload requests a new counter entry.
type AddPersonPayload struct {
	Name string `json:"name"`
}

// UpdateCountPayload increments or decrements one entry.
type UpdateCountPayload struct {
	ID        int64 `json:"id"`
	Increment bool  `json:"increment"`
}

// RemovePersonPayload deletes one entry. The same shape is echoed
// back to all clients as PERSON_REMOVED.
type RemovePersonPayload struct {
	ID int64 `json:"id"`
}

// SyncStatePayload is sent to a client right after it connects.
type SyncStatePayload struct {
	People             []Person `json:"people"`
	AuthenticatedCount int      `json:"authenticatedCount"`
	ClientID           string   `json:"clientId"`
}

// CountUpdatedPayload announces the new count of one entry.
type CountUpdatedPayload struct {
	ID    int64 `json:"id"`
	Count int   `json:"count"`
}

// AuthResultPayload is the AUTH_SUCCESS / AUTH_FAILED reply body.
type AuthResultPayload struct {
	Message string `json:"message"`
}

// AuthStatusPayload carries the aggregate count of authenticated sessions.
type AuthStatusPayload struct {
	AuthenticatedCount int `json:"authenticatedCount"`
}
