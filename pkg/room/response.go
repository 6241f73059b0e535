package room

import (
	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

// Payload is a message received from a web client
type Payload struct {
	// Action is either "startGame" or a betting action name like "Raise"
	Action  string `json:"action"`
	Amount  int    `json:"amount"`
	Context string `json:"context"`
}

// Response is a keyed message sent to a web client
type Response struct {
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Context string `json:"context,omitempty"`
}

type stateResponse struct {
	Key   string           `json:"key"`
	Info  *table.TableInfo `json:"info"`
	State *table.GameState `json:"state"`
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
