package game

import (
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var statusLogger = log.With().Str("logger_name", "game::status").Logger()

const (
	eventInitialize = "initialize"
	eventStart      = "start"
	eventPlay       = "play"
	eventRedraw     = "redraw"
	eventFinish     = "finish"
)

var allStatuses = []string{
	string(StatusIdle),
	string(StatusSelecting),
	string(StatusPlaying),
	string(StatusGameOver),
}

func newStatusMachine(current Status) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{
				Name: eventInitialize,
				Src:  allStatuses,
				Dst:  string(StatusIdle),
			},
			{
				Name: eventStart,
				Src:  []string{string(StatusIdle)},
				Dst:  string(StatusSelecting),
			},
			{
				Name: eventPlay,
				Src:  []string{string(StatusSelecting)},
				Dst:  string(StatusPlaying),
			},
			{
				Name: eventRedraw,
				Src:  []string{string(StatusPlaying)},
				Dst:  string(StatusSelecting),
			},
			{
				Name: eventFinish,
				Src:  []string{string(StatusPlaying)},
				Dst:  string(StatusGameOver),
			},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				statusLogger.Debug().Msgf("[%s] ===> [%s]", e.Src, e.Dst)
			},
		},
	)
}

// transition fires event from current and returns the resulting status.
func transition(current Status, event string) (Status, error) {
	sm := newStatusMachine(current)
	err := sm.Event(event)
	if err != nil {
		if _, ok := err.(fsm.NoTransitionError); !ok {
			return current, errors.Wrapf(err, "Invalid status transition %s from %s", event, current)
		}
	}
	return Status(sm.Current()), nil
}

func (s Status) Valid() bool {
	for _, status := range allStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
