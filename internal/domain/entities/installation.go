package entities

import "github.com/shopspring/decimal"

// InstallationType is the equipment-mount method.

type InstallationType string

const (
	InstallationRoofMount   InstallationType = "ROOF_MOUNT"
	InstallationGroundFrame InstallationType = "GROUND_FRAME"
)

func (t InstallationType) Valid() bool {
	return t == InstallationRoofMount || t == InstallationGroundFrame
}

// InstallationChoice carries the optional frame costs of a ground-frame install.
// Both amounts are ignored for ROOF_MOUNT; a nil amount counts as zero.
type InstallationChoice struct {
	Type            InstallationType `json:"type"`
	FrameSellPrice  *decimal.Decimal `json:"frame_sell_price,omitempty"`
	FrameLaborPrice *decimal.Decimal `json:"frame_labor_price,omitempty"`
}

// RoofMount is the default installation of a fresh quotation.
func RoofMount() InstallationChoice {
	return InstallationChoice{Type: InstallationRoofMount}
}
