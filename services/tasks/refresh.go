package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeTokenRefreshSweep = "token:refresh-sweep"

// RefreshSweepPayload tells the worker how far ahead to look for expiring
// credentials.
type RefreshSweepPayload struct {
	HorizonMinutes int `json:"horizonMinutes"`
}

func NewTokenRefreshSweepTask(horizonMinutes int) (*asynq.Task, error) {
	b, err := json.Marshal(RefreshSweepPayload{HorizonMinutes: horizonMinutes})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTokenRefreshSweep, b), nil
}
