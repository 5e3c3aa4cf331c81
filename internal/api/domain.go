package api

import (
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/predictions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	History     history.System
	Predictions predictions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	historySystem := history.New(
		runtime.History,
		runtime.Storage,
		runtime.Logger,
	)

	predictionsSystem := predictions.New(
		runtime.Artifacts,
		historySystem,
		runtime.Logger,
	)

	return &Domain{
		History:     historySystem,
		Predictions: predictionsSystem,
	}
}
