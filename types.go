package main

type messageType string

const (
	passphraseType  messageType = "passphrase"
	emojiphraseType messageType = "emojiphrase"
	errorType       messageType = "error"
)

type requestMsg struct {
	Type messageType `json:"type"`
}

// Type is only set on WebSocket replies. HTTP bodies carry the payload alone.
type PassphraseMsg struct {
	Type       messageType `json:"type,omitempty"`
	Passphrase string      `json:"passphrase"`
}

type EmojiphraseMsg struct {
	Type        messageType `json:"type,omitempty"`
	Emojiphrase string      `json:"emojiphrase"`
	Emojis      string      `json:"emojis"`
}

type ErrorMsg struct {
	Type  messageType `json:"type,omitempty"`
	Error string      `json:"error"`
}

type HealthMsg struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}
