package http

import (
	"github.com/y4pp1/counter/internal/core"
	"github.com/y4pp1/counter/internal/proto"
)

// inboundToCommand maps a decoded envelope to a core command. A nil
// command with nil error means the type is unrecognized; the caller
// logs it and moves on.
func inboundToCommand(client *core.Client, in proto.Inbound) (*core.Command, error) {
	switch in.Type {
	case proto.TypeAuthenticate:
		var p proto.AuthenticatePayload
		if err := proto.DecodePayload(in, &p); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandAuthenticate, Client: client, Password: p.Password}, nil

	case proto.TypeAddPerson:
		var p proto.AddPersonPayload
		if err := proto.DecodePayload(in, &p); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandAddPerson, Client: client, Name: p.Name}, nil

	case proto.TypeUpdateCount:
		var p proto.UpdateCountPayload
		if err := proto.DecodePayload(in, &p); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandUpdateCount, Client: client, ID: p.ID, Increment: p.Increment}, nil

	case proto.TypeRemovePerson:
		var p proto.RemovePersonPayload
		if err := proto.DecodePayload(in, &p); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandRemovePerson, Client: client, ID: p.ID}, nil

	default:
		return nil, nil
	}
}

func peopleToWire(people []core.Person) []proto.Person {
	out := make([]proto.Person, len(people))
	for i, p := range people {
		out[i] = proto.Person{ID: p.ID, Name: p.Name, Count: p.Count}
	}
	return out
}
