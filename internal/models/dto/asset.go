package dto

import (
	"github.com/hongminglow/finance-be/internal/models"
)

// AssetInput is the body of POST /assets and PUT /assets/{id}.
// Nil fields were not sent by the client.
type AssetInput struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Amount      *Flex   `json:"amount"`
	Description *string `json:"description"`
}

// NewAsset validates a create request and builds the asset for userID.
func (in AssetInput) NewAsset(userID string) (models.Asset, error) {
	name, kind := trimmed(in.Name), trimmed(in.Type)
	if name == "" {
		return models.Asset{}, invalid("name", "is required")
	}
	if kind == "" {
		return models.Asset{}, invalid("type", "is required")
	}
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return models.Asset{}, err
	}
	return models.Asset{
		UserID:      userID,
		Name:        name,
		Type:        kind,
		Amount:      amount,
		Description: optional(in.Description),
	}, nil
}

// Apply merges the supplied fields onto an existing asset. Blank name, type
// and amount are treated as not supplied; description is replaced whenever
// the key is present, so sending "" clears it.
func (in AssetInput) Apply(asset models.Asset) (models.Asset, error) {
	if v := trimmed(in.Name); v != "" {
		asset.Name = v
	}
	if v := trimmed(in.Type); v != "" {
		asset.Type = v
	}
	if !empty(in.Amount) {
		amount, err := parseAmount("amount", in.Amount)
		if err != nil {
			return models.Asset{}, err
		}
		asset.Amount = amount
	}
	if in.Description != nil {
		asset.Description = optional(in.Description)
	}
	return asset, nil
}
