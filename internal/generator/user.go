package generator

import (
	"aggregator/internal/catalog"
	"aggregator/internal/models"
	"aggregator/internal/random"
	"aggregator/internal/synth"
)

// User fabricates a profile. PinHash is left empty for the caller to fill.
func (g *Generator) User() models.User {
	src := g.src
	now := g.now()
	name := random.Pick(src, catalog.FirstNames) + " " + random.Pick(src, catalog.LastNames)
	mobile := synth.Mobile(src)
	city := random.Pick(src, catalog.Cities)

	return models.User{
		ID:               g.newID(),
		AAHandle:         models.AAHandleFor(mobile),
		Mobile:           mobile,
		Name:             name,
		Email:            synth.Email(src, name),
		PAN:              synth.PAN(src),
		DOB:              synth.DOB(src, now, 21, 60),
		Address:          synth.Address(src, city),
		City:             city.Name,
		State:            city.State,
		Pincode:          synth.Pincode(src),
		Dependents:       g.dependents(),
		CreditCards:      g.heldCards(),
		PreciousMetals:   g.preciousMetals(),
		FinancialPersona: random.Pick(src, catalog.FinancialPersonas),
		UserPersona:      random.Pick(src, catalog.UserPersonas),
		CreatedAt:        now,
	}
}

func (g *Generator) dependents() []models.Dependent {
	count := g.src.Int(0, 4)
	out := make([]models.Dependent, 0, count)
	for i := 0; i < count; i++ {
		age := g.src.Int(0, 70)
		relationship := random.Pick(g.src, catalog.Relationships)
		switch {
		case age < 18:
			relationship = random.Pick(g.src, []string{"Son", "Daughter"})
		case age > 50:
			relationship = random.Pick(g.src, []string{"Father", "Mother", "Grandfather", "Grandmother"})
		}
		out = append(out, models.Dependent{
			Name:         random.Pick(g.src, catalog.FirstNames) + " " + random.Pick(g.src, catalog.LastNames),
			Age:          age,
			Sex:          random.Pick(g.src, []string{"MALE", "FEMALE", "OTHER"}),
			Relationship: relationship,
		})
	}
	return out
}

func (g *Generator) heldCards() []models.HeldCard {
	count := g.src.Int(0, 4)
	out := make([]models.HeldCard, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, models.HeldCard{
			BankName:    random.Pick(g.src, catalog.CreditCardBanks),
			CardType:    random.Pick(g.src, catalog.CardNetworks),
			CardVariant: random.Pick(g.src, catalog.CreditCardVariants),
		})
	}
	return out
}

func (g *Generator) preciousMetals() models.PreciousMetals {
	var metals models.PreciousMetals
	if g.src.Chance(0.5) {
		metals.Gold = g.src.Int(5, 200)
	}
	if g.src.Chance(0.4) {
		metals.Silver = g.src.Int(50, 1000)
	}
	return metals
}
