package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteState is the lifecycle of a quotation session.
//
//	EMPTY -> BUILDING -> FINALIZED
//
// A reset from any state returns to EMPTY.

type QuoteState string

const (
	QuoteStateEmpty     QuoteState = "EMPTY"
	QuoteStateBuilding  QuoteState = "BUILDING"
	QuoteStateFinalized QuoteState = "FINALIZED"
)

// QuoteSection is a presentation group of a finalized quote. Every catalog
// category is a section; the installation surcharge gets its own.

type QuoteSection string

const SectionInstallation QuoteSection = "INSTALLATION"

// SectionOrder is the fixed presentation order of a priced quote.
var SectionOrder = []QuoteSection{
	QuoteSection(CategoryPanel),
	QuoteSection(CategoryInverter),
	QuoteSection(CategoryBattery),
	SectionInstallation,
	QuoteSection(CategoryAccessory),
}

// Address is the installation site picked in the wizard. The ids point at
// administrative subdivisions owned by an external directory and are not
// revalidated here.
type Address struct {
	ProvinceID int64  `json:"province_id,omitempty"`
	DistrictID int64  `json:"district_id,omitempty"`
	WardID     int64  `json:"ward_id,omitempty"`
	Street     string `json:"street,omitempty"`
}

// CustomerLink ties a quotation to the customer it is prepared for.
type CustomerLink struct {
	CustomerID string  `json:"customer_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Address    Address `json:"address"`
}

// QuoteGroup is one section of a priced quote.
type QuoteGroup struct {
	Section  QuoteSection    `json:"section"`
	Lines    []LineItem      `json:"lines,omitempty"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PricedQuote is the frozen output of a quotation session.
//
// It owns copies of every slice it exposes, so later changes to the session
// that produced it are never observed. AgentID is nil when the authoring agent
// could not be resolved at finalize time.
type PricedQuote struct {
	ID                string             `json:"id"`
	SessionID         string             `json:"session_id"`
	AgentID           *int64             `json:"agent_id,omitempty"`
	Customer          CustomerLink       `json:"customer"`
	Groups            []QuoteGroup       `json:"groups"`
	Installation      InstallationChoice `json:"installation"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	InstallationTotal decimal.Decimal    `json:"installation_total"`
	GrandTotal        decimal.Decimal    `json:"grand_total"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

// Group returns the section group, if present.
func (q PricedQuote) Group(section QuoteSection) (QuoteGroup, bool) {
	for _, g := range q.Groups {
		if g.Section == section {
			return g, true
		}
	}
	return QuoteGroup{}, false
}

// QuoteDraft is the live view of a quotation session.
type QuoteDraft struct {
	SessionID         string             `json:"session_id"`
	State             QuoteState         `json:"state"`
	Revision          uint64             `json:"revision"`
	Lines             []LineItem         `json:"lines"`
	Installation      InstallationChoice `json:"installation"`
	Customer          CustomerLink       `json:"customer"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	InstallationTotal decimal.Decimal    `json:"installation_total"`
	GrandTotal        decimal.Decimal    `json:"grand_total"`
	QuoteID           string             `json:"quote_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
