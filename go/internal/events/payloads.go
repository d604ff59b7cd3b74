package events

import (
	"encoding/json"
	"time"
)

// Event types written to the contract outbox
const (
	EventTypeSeasonTurnoverCompleted = "SeasonTurnoverCompleted"
	EventTypeContractSigned          = "ContractSigned"
	EventTypeContractCut             = "ContractCut"
	EventTypeContractExtended        = "ContractExtended"
	EventTypeFranchiseTagApplied     = "FranchiseTagApplied"
)

// Event payload types that are shared between the contract services, the
// outbox relay and the live feed

// SeasonTurnoverCompletedPayload is the payload for a SeasonTurnoverCompleted event
type SeasonTurnoverCompletedPayload struct {
	LeagueID         string    `json:"league_id"`
	PreviousSeason   int       `json:"previous_season"`
	NewSeason        int       `json:"new_season"`
	ContractsUpdated int       `json:"contracts_updated"`
	ContractsExpired int       `json:"contracts_expired"`
	TagsReset        int       `json:"tags_reset"`
	ExecutedBy       string    `json:"executed_by"`
	ExecutedAt       time.Time `json:"executed_at"`
}

// ContractSignedPayload is the payload for a ContractSigned event
type ContractSignedPayload struct {
	ContractID      string    `json:"contract_id"`
	TeamID          string    `json:"team_id"`
	PlayerID        string    `json:"player_id"`
	Salary          int64     `json:"salary"`
	Years           int       `json:"years"`
	AcquisitionType string    `json:"acquisition_type"`
	SignedAt        time.Time `json:"signed_at"`
}

// ContractCutPayload is the payload for a ContractCut event
type ContractCutPayload struct {
	ContractID     string    `json:"contract_id"`
	TeamID         string    `json:"team_id"`
	PlayerID       string    `json:"player_id"`
	Season         int       `json:"season"`
	DeadMoneyTotal int64     `json:"dead_money_total"`
	CutAt          time.Time `json:"cut_at"`
}

// ContractExtendedPayload is the payload for a ContractExtended event
type ContractExtendedPayload struct {
	ContractID string    `json:"contract_id"`
	TeamID     string    `json:"team_id"`
	PlayerID   string    `json:"player_id"`
	NewYears   int       `json:"new_years"`
	NewSalary  int64     `json:"new_salary"`
	ExtendedAt time.Time `json:"extended_at"`
}

// FranchiseTagAppliedPayload is the payload for a FranchiseTagApplied event
type FranchiseTagAppliedPayload struct {
	ContractID string    `json:"contract_id"`
	TeamID     string    `json:"team_id"`
	PlayerID   string    `json:"player_id"`
	TagValue   int64     `json:"tag_value"`
	TaggedAt   time.Time `json:"tagged_at"`
}

// Envelope is the message published to JetStream and pushed to feed clients
type Envelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	LeagueID  string          `json:"leagueId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Subject returns the JetStream subject an event type is published on.
func Subject(prefix, eventType string) string {
	return prefix + "." + eventType
}
