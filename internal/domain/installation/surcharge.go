package installation

import (
	"errors"
	"fmt"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownInstallationType = errors.New("unknown installation type")
	ErrNegativeFrameCost       = errors.New("negative frame cost")
)

// Total is the surcharge an installation choice adds to the grand total.
// ROOF_MOUNT costs nothing; GROUND_FRAME adds frame sell price plus labor, a
// missing amount counting as zero. The sum is not rounded.
func Total(choice entities.InstallationChoice) decimal.Decimal {
	if choice.Type != entities.InstallationGroundFrame {
		return decimal.Zero
	}
	return amountOrZero(choice.FrameSellPrice).Add(amountOrZero(choice.FrameLaborPrice))
}

// Normalize validates a choice and strips frame costs from a roof mount.
// An empty type is read as ROOF_MOUNT.
func Normalize(choice entities.InstallationChoice) (entities.InstallationChoice, error) {
	if choice.Type == "" {
		choice.Type = entities.InstallationRoofMount
	}
	if !choice.Type.Valid() {
		return entities.InstallationChoice{}, fmt.Errorf("%w: %q", ErrUnknownInstallationType, choice.Type)
	}
	if choice.Type == entities.InstallationRoofMount {
		return entities.RoofMount(), nil
	}
	for _, v := range []*decimal.Decimal{choice.FrameSellPrice, choice.FrameLaborPrice} {
		if v != nil && v.IsNegative() {
			return entities.InstallationChoice{}, fmt.Errorf("%w: %s", ErrNegativeFrameCost, v)
		}
	}
	return entities.InstallationChoice{
		Type:            entities.InstallationGroundFrame,
		FrameSellPrice:  copyAmount(choice.FrameSellPrice),
		FrameLaborPrice: copyAmount(choice.FrameLaborPrice),
	}, nil
}

func amountOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func copyAmount(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
