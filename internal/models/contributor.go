package models

import (
	"time"
)

// Contributor represents a registered participant: an on-chain style address
// bound to a GitHub handle and a reputation score.
type Contributor struct {
	Address         string    `json:"address"`
	GithubHandle    string    `json:"github_handle"`
	ReputationScore uint64    `json:"reputation_score"`
	RegisteredAt    time.Time `json:"registered_at"`
}
