package seed

import (
	"fmt"
	"time"

	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/pricing"
)

// ReferenceLotCode is the code of the demo lot.
const ReferenceLotCode = "2025-Q4-AL"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reference returns the demo data set: one running lot with 16 of 18 spaces
// and 7 of 10 stations sold, one planned lot, costs worth 46200 a year, cash
// movements and a small pipeline.
func Reference() domain.Snapshot {
	lot := domain.Lot{
		ID:              "lot-2025-q4-al",
		Code:            ReferenceLotCode,
		City:            "Alassio",
		Address:         "Passeggiata Ciccione",
		Status:          domain.LotActive,
		StartDate:       date(2025, time.October, 1),
		EndDate:         date(2026, time.January, 31),
		TotalSpaces:     18,
		TotalStations:   10,
		GoNoGoThreshold: 70,
		TargetRevenue:   27000,
	}
	next := domain.Lot{
		ID:              "lot-2026-q1-al",
		Code:            "2026-Q1-AL",
		City:            "Alassio",
		Address:         "Passeggiata Ciccione",
		Status:          domain.LotPlanned,
		StartDate:       date(2026, time.February, 1),
		EndDate:         date(2026, time.May, 31),
		TotalSpaces:     18,
		TotalStations:   10,
		GoNoGoThreshold: 70,
		TargetRevenue:   27000,
	}

	clients := []domain.Client{
		{ID: "cli-bagni-aurora", LegalName: "Bagni Aurora S.r.l.", TaxID: "01234560098", Category: domain.ClientCategoryStabilimento, Active: true,
			Contact: domain.Contact{Name: "Marta Ferri", Email: "marta@bagniaurora.it", Phone: "0182 640011"}},
		{ID: "cli-gelateria-riva", LegalName: "Gelateria Riva di Conti", TaxID: "02345670091", Category: domain.ClientCategoryCommercio, Active: true,
			Contact: domain.Contact{Name: "Paolo Conti", Email: "info@gelateriariva.it"}},
		{ID: "cli-comune", LegalName: "Comune di Alassio", TaxID: "00318300095", Category: domain.ClientCategoryEnte, Active: true},
	}

	prices := pricing.DefaultPriceList()
	spaces := make([]domain.Space, 0, 18)
	addSpace := func(n int, t domain.UnitType, discount float64, status domain.SpaceStatus, clientID string) {
		list, _ := prices.SpacePrice(t)
		spaces = append(spaces, domain.Space{
			ID:        fmt.Sprintf("spc-%s-%02d", lot.Code, n),
			LotID:     lot.ID,
			Number:    n,
			Type:      t,
			ListPrice: list,
			Discount:  discount,
			NetPrice:  pricing.NetPrice(list, discount),
			Status:    status,
			ClientID:  clientID,
		})
	}
	for n := 1; n <= 2; n++ {
		addSpace(n, domain.UnitStandard, 0, domain.SpaceVenduto, "cli-gelateria-riva")
	}
	for n := 3; n <= 10; n++ {
		addSpace(n, domain.UnitPlus, 0, domain.SpaceVenduto, "cli-bagni-aurora")
	}
	for n := 11; n <= 14; n++ {
		addSpace(n, domain.UnitPremium, 0, domain.SpaceVenduto, "cli-comune")
	}
	for n := 15; n <= 16; n++ {
		addSpace(n, domain.UnitPremium, 10, domain.SpaceVenduto, "cli-bagni-aurora")
	}
	addSpace(17, domain.UnitStandard, 0, domain.SpaceLibero, "")
	addSpace(18, domain.UnitPlus, 0, domain.SpaceOpzionato, "cli-gelateria-riva")

	stations := make([]domain.Station, 0, 10)
	for n := 1; n <= 10; n++ {
		status := domain.StationVenduta
		clientID := "cli-bagni-aurora"
		switch {
		case n == 8:
			status = domain.StationOpzionata
		case n > 8:
			status, clientID = domain.StationLibera, ""
		}
		stations = append(stations, domain.Station{
			ID:        fmt.Sprintf("stz-%s-%02d", lot.Code, n),
			LotID:     lot.ID,
			Number:    n,
			ListPrice: prices.StationPrice(),
			NetPrice:  prices.StationPrice(),
			Status:    status,
			ClientID:  clientID,
		})
	}

	costs := []domain.CostItem{
		{ID: "cost-personale", Category: domain.CostPersonale, Description: "Agente commerciale", Amount: 2000,
			Frequency: domain.FrequencyMensile, AccrualDate: date(2025, time.January, 31), Recurring: true},
		{ID: "cost-affitto", Category: domain.CostAffitto, Description: "Magazzino attrezzature", Amount: 3000,
			Frequency: domain.FrequencyTrimestrale, AccrualDate: date(2025, time.January, 1), Recurring: true, PaymentMonths: "1,4,7,10"},
		{ID: "cost-allestimento", Category: domain.CostAllestimento, Description: "Montaggio ombrelloni", Amount: 2500,
			Frequency: domain.FrequencySemestrale, AccrualDate: date(2025, time.March, 1), Recurring: true, PaymentMonths: "3,9"},
		{ID: "cost-marketing", Category: domain.CostMarketing, Description: "Campagna social", Amount: 3200,
			Frequency: domain.FrequencyAnnuale, AccrualDate: date(2025, time.May, 1), Recurring: true},
		{ID: "cost-stampa", Category: domain.CostStampa, Description: "Impianti di stampa", Amount: 2000,
			Frequency: domain.FrequencyUnaTantum, AccrualDate: date(2025, time.September, 15)},
	}

	cash := []domain.CashMovement{
		{ID: "cash-001", Date: date(2025, time.August, 20), Direction: domain.DirectionEntrata, Amount: 12000, Description: "Acconti spazi", Category: "VENDITE"},
		{ID: "cash-002", Date: date(2025, time.September, 10), Direction: domain.DirectionEntrata, Amount: 7300, Description: "Saldo stazioni", Category: "VENDITE"},
		{ID: "cash-003", Date: date(2025, time.September, 15), Direction: domain.DirectionUscita, Amount: 6000, Description: "Stampa e personale", Category: "COSTI"},
		{ID: "cash-004", Date: date(2025, time.September, 30), Direction: domain.DirectionUscita, Amount: 2500, Description: "Allestimento", Category: "COSTI"},
	}

	opps := []domain.Opportunity{
		{ID: "opp-01", ClientID: "cli-gelateria-riva", LotID: next.ID, Subject: "Rinnovo spazi", Type: domain.OpportunitySpazio,
			ExpectedValue: 1000, Phase: domain.PhaseLead, Probability: 10, ExpectedCloseDate: date(2026, time.January, 10)},
		{ID: "opp-02", ClientID: "cli-comune", LotID: next.ID, Subject: "Stazioni evento", Type: domain.OpportunityStazione,
			ExpectedValue: 1500, Phase: domain.PhaseLead, Probability: 20, ExpectedCloseDate: date(2026, time.January, 15)},
		{ID: "opp-03", ClientID: "cli-bagni-aurora", LotID: next.ID, Subject: "Pacchetto misto", Type: domain.OpportunityMisto,
			ExpectedValue: 2000, Phase: domain.PhaseQualifica, Probability: 40, ExpectedCloseDate: date(2026, time.January, 20)},
		{ID: "opp-04", ClientID: "cli-gelateria-riva", LotID: lot.ID, Subject: "Spazio PLUS", Type: domain.OpportunitySpazio,
			ExpectedValue: 1100, Phase: domain.PhaseOfferta, Probability: 60, ExpectedCloseDate: date(2025, time.September, 25)},
		{ID: "opp-05", ClientID: "cli-comune", LotID: next.ID, Subject: "Premium lungomare", Type: domain.OpportunitySpazio,
			ExpectedValue: 3000, Phase: domain.PhaseOfferta, Probability: 50, ExpectedCloseDate: date(2026, time.January, 25)},
		{ID: "opp-06", ClientID: "cli-bagni-aurora", LotID: lot.ID, Subject: "Stazione 8", Type: domain.OpportunityStazione,
			ExpectedValue: 900, Phase: domain.PhaseChiusura, Probability: 90, ExpectedCloseDate: date(2025, time.September, 28)},
	}

	return domain.Snapshot{
		Clients:       clients,
		Lots:          []domain.Lot{lot, next},
		Spaces:        spaces,
		Stations:      stations,
		Opportunities: opps,
		Costs:         costs,
		CashMovements: cash,
	}
}
