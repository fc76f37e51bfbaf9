package domain

import "time"

// BuildInfo records one completed derivation build for the store index.
type BuildInfo struct {
	Derivation string    `json:"derivation,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
