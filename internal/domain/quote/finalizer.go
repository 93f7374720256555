package quote

import (
	"time"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/installation"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/domain/selection"
)

// Meta identifies a quote being finalized.
type Meta struct {
	QuoteID     string
	SessionID   string
	AgentID     *int64
	Customer    entities.CustomerLink
	GeneratedAt time.Time
}

// Finalize freezes the selection and prices it together with the installation
// choice.
//
// Groups follow entities.SectionOrder; empty groups are left out and the
// installation group only appears for a ground-frame install. The grand total
// is rounded once more after adding the surcharge.
func Finalize(sel *selection.Store, choice entities.InstallationChoice, calc *pricing.Calculator, meta Meta) (entities.PricedQuote, error) {
	choice, err := installation.Normalize(choice)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	sel.Freeze()

	surcharge := calc.Round(installation.Total(choice))
	subtotal := sel.Subtotal()

	groups := make([]entities.QuoteGroup, 0, len(entities.SectionOrder))
	for _, section := range entities.SectionOrder {
		if section == entities.SectionInstallation {
			if choice.Type == entities.InstallationGroundFrame {
				groups = append(groups, entities.QuoteGroup{Section: section, Quantity: 1, Subtotal: surcharge})
			}
			continue
		}
		lines := sel.ByCategory(entities.Category(section))
		if len(lines) == 0 {
			continue
		}
		qty := 0
		for _, l := range lines {
			qty += l.Quantity
		}
		groups = append(groups, entities.QuoteGroup{
			Section:  section,
			Lines:    lines,
			Quantity: qty,
			Subtotal: calc.Round(selection.SumLines(lines)),
		})
	}

	var agentID *int64
	if meta.AgentID != nil {
		id := *meta.AgentID
		agentID = &id
	}

	return entities.PricedQuote{
		ID:                meta.QuoteID,
		SessionID:         meta.SessionID,
		AgentID:           agentID,
		Customer:          meta.Customer,
		Groups:            groups,
		Installation:      choice,
		Subtotal:          subtotal,
		InstallationTotal: surcharge,
		GrandTotal:        calc.Round(subtotal.Add(surcharge)),
		GeneratedAt:       meta.GeneratedAt.UTC(),
	}, nil
}
