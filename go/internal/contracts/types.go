package contracts

import (
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/contractmath"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// SignContractParams are the terms of a new contract
type SignContractParams struct {
	TeamID              uuid.UUID
	PlayerID            uuid.UUID
	Salary              int64
	Years               int
	AcquisitionType     models.AcquisitionType
	HasFourthYearOption bool
	GuaranteedAmount    *int64
}

func (p SignContractParams) validate() error {
	if p.Years < 1 || p.Years > models.MaxContractYears {
		return apperr.Validation("contract years must be between 1 and %d, got %d", models.MaxContractYears, p.Years)
	}
	if p.Salary <= 0 {
		return apperr.Validation("salary must be positive")
	}
	if p.GuaranteedAmount != nil && *p.GuaranteedAmount < 0 {
		return apperr.Validation("guaranteed amount must not be negative")
	}
	switch p.AcquisitionType {
	case models.AcquisitionTypeRookieDraft, models.AcquisitionTypeAuction, models.AcquisitionTypeFreeAgency,
		models.AcquisitionTypeTrade, models.AcquisitionTypeWaiver:
	default:
		return apperr.Validation("unknown acquisition type %q", p.AcquisitionType)
	}
	return nil
}

// CutContractParams identifies the contract to cut. DeadMoneyOverride
// replaces the configured schedule with a single current-season charge and
// must not exceed the contract's guaranteed amount when it has one.
type CutContractParams struct {
	ContractID        uuid.UUID
	DeadMoneyOverride *int64
}

// ExtendContractParams are the new terms of an extension
type ExtendContractParams struct {
	ContractID uuid.UUID
	Years      int
	Salary     int64
}

// CutResult is the cut contract and the dead money it left behind
type CutResult struct {
	Contract       *models.Contract   `json:"contract"`
	DeadMoney      []models.DeadMoney `json:"deadMoney"`
	TotalDeadMoney int64              `json:"totalDeadMoney"`
}

// FranchiseTagResult is a tagged contract and how its value was set
type FranchiseTagResult struct {
	Contract        *models.Contract `json:"contract"`
	TagValue        int64            `json:"tagValue"`
	PreviousSalary  int64            `json:"previousSalary"`
	PositionSamples int              `json:"positionSamples"`
}

// Wire messages

type SignContractRequest struct {
	TeamID              string `json:"teamId"`
	PlayerID            string `json:"playerId"`
	Salary              int64  `json:"salary"`
	Years               int    `json:"years"`
	AcquisitionType     string `json:"acquisitionType"`
	HasFourthYearOption bool   `json:"hasFourthYearOption"`
	GuaranteedAmount    *int64 `json:"guaranteedAmount,omitempty"`
}

type CutContractRequest struct {
	ContractID        string `json:"contractId"`
	DeadMoneyOverride *int64 `json:"deadMoneyOverride,omitempty"`
}

type ExtendContractRequest struct {
	ContractID string `json:"contractId"`
	Years      int    `json:"years"`
	Salary     int64  `json:"salary"`
}

type ApplyFranchiseTagRequest struct {
	ContractID string `json:"contractId"`
}

type ContractResponse struct {
	Contract *models.Contract `json:"contract"`
}

type GetTeamCapRequest struct {
	TeamID string `json:"teamId"`
}

type TeamCapResponse struct {
	TeamID     string                     `json:"teamId"`
	Projection contractmath.CapProjection `json:"projection"`
}

type ProjectTeamCapRequest struct {
	TeamID string `json:"teamId"`
	Years  int    `json:"years"`
}

type ProjectTeamCapResponse struct {
	TeamID      string                       `json:"teamId"`
	Projections []contractmath.CapProjection `json:"projections"`
}
