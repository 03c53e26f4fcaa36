package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
)

// Account represents a trading account owned by a user. Accounts are
// reference data: the journal never mutates them outside of explicit
// administrative updates.
type Account struct {
	// AccountID is the unique identifier for the account.
	AccountID string `yaml:"account_id" json:"account_id" validate:"required"`
	// Name is the human-readable account name.
	Name string `yaml:"name" json:"name" validate:"required"`
	// OwnerID identifies the user that owns this account.
	OwnerID string `yaml:"owner_id" json:"owner_id" validate:"required"`
	// InitialCapital is the capital the account started with, in the
	// account's base currency.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital" validate:"gte=0"`
}

// Asset represents a tradeable instrument referenced by journal entries.
type Asset struct {
	// AssetID is the unique identifier for the asset.
	AssetID string `yaml:"asset_id" json:"asset_id" validate:"required"`
	// Name is the human-readable asset name.
	Name string `yaml:"name" json:"name" validate:"required"`
	// Type classifies the asset (e.g., "forex", "crypto", "index").
	Type string `yaml:"type" json:"type"`
	// Notes holds free-form reference notes.
	Notes string `yaml:"notes" json:"notes"`
}

// Validate validates the Account struct.
func (a *Account) Validate() error {
	validate := validator.New()

	if err := validate.Struct(a); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAccount, "invalid account", err)
	}

	return nil
}

// Validate validates the Asset struct.
func (a *Asset) Validate() error {
	validate := validator.New()

	if err := validate.Struct(a); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAsset, "invalid asset", err)
	}

	return nil
}
