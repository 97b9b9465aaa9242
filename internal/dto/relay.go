package dto

import "encoding/json"

// RelayRequest is the inbound relay message.
// @Description Action name plus action-specific payload
type RelayRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// RelayResponse carries either a result or an error; both arrive with status 200.
// HTML is set for free-text actions only.
type RelayResponse struct {
	Result interface{} `json:"result,omitempty"`
	HTML   string      `json:"html,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type RenderRequest struct {
	Text string `json:"text"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}

// HealthResponse reports process and store health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
