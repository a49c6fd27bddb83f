package service

import (
	"github.com/RigobertoEHA1/chismezon/internal/domain"
)

type ReactionService interface {
	Get(device domain.DeviceId, news domain.NewsId) (domain.Reaction, bool, error)
	Cast(device domain.DeviceId, news domain.NewsId, kind string) (domain.Reaction, error)
}

// VoteGate is the one-vote-per-device rule. The postgres implementation
// keys votes by the anonymous device token; a server-enforced identity can
// replace it without touching callers.
type VoteGate interface {
	GetReaction(device domain.DeviceId, news domain.NewsId) (domain.Reaction, bool, error)
	CastReaction(device domain.DeviceId, news domain.NewsId, kind string) (reaction domain.Reaction, created bool, err error)
}

type Reaction struct {
	gate      VoteGate
	validator ReactionKindValidator
}

type ReactionKindValidator interface {
	Kind(kind string) error
}

func NewReaction(gate VoteGate, validator ReactionKindValidator) ReactionService {
	return &Reaction{gate, validator}
}

func (r *Reaction) Get(device domain.DeviceId, news domain.NewsId) (domain.Reaction, bool, error) {
	return r.gate.GetReaction(device, news)
}

// Cast casts the device's vote. Casting again, with either kind, is a
// silent no-op returning the vote already on record: the gate decides
// exactly once per device and news item.
func (r *Reaction) Cast(device domain.DeviceId, news domain.NewsId, kind string) (domain.Reaction, error) {
	if err := r.validator.Kind(kind); err != nil {
		return domain.Reaction{}, err
	}
	reaction, _, err := r.gate.CastReaction(device, news, kind)
	if err != nil {
		return domain.Reaction{}, err
	}
	return reaction, nil
}
