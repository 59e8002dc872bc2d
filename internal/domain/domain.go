package domain

import "time"

// DateLayout is how calendar dates are stored and exchanged.
const DateLayout = "2006-01-02"

// ClientCategory is the commercial segment a client belongs to.
type ClientCategory string

const (
	ClientCategoryStabilimento ClientCategory = "STABILIMENTO"
	ClientCategoryCommercio    ClientCategory = "COMMERCIO"
	ClientCategoryEnte         ClientCategory = "ENTE"
	ClientCategoryAltro        ClientCategory = "ALTRO"
)

// UnitType is the price tier of a space.
type UnitType string

const (
	UnitStandard UnitType = "STANDARD"
	UnitPlus     UnitType = "PLUS"
	UnitPremium  UnitType = "PREMIUM"
)

// SpaceStatus is the sale state of a space.
type SpaceStatus string

const (
	SpaceLibero    SpaceStatus = "LIBERO"
	SpaceOpzionato SpaceStatus = "OPZIONATO"
	SpaceVenduto   SpaceStatus = "VENDUTO"
	SpaceInvenduto SpaceStatus = "INVENDUTO"
)

// StationStatus is the sale state of a station.
type StationStatus string

const (
	StationLibera    StationStatus = "LIBERA"
	StationOpzionata StationStatus = "OPZIONATA"
	StationVenduta   StationStatus = "VENDUTA"
)

// OpportunityType says what an opportunity is trying to sell.
type OpportunityType string

const (
	OpportunitySpazio   OpportunityType = "SPAZIO"
	OpportunityStazione OpportunityType = "STAZIONE"
	OpportunityMisto    OpportunityType = "MISTO"
)

// Phase is a sales pipeline phase. Any phase may follow any other.
type Phase string

const (
	PhaseLead      Phase = "LEAD"
	PhaseQualifica Phase = "QUALIFICA"
	PhaseOfferta   Phase = "OFFERTA"
	PhaseChiusura  Phase = "CHIUSURA"
)

// Phases lists the pipeline phases in funnel order.
var Phases = []Phase{PhaseLead, PhaseQualifica, PhaseOfferta, PhaseChiusura}

// CostCategory classifies structural costs.
type CostCategory string

const (
	CostPersonale       CostCategory = "PERSONALE"
	CostAffitto         CostCategory = "AFFITTO"
	CostStampa          CostCategory = "STAMPA"
	CostAllestimento    CostCategory = "ALLESTIMENTO"
	CostMarketing       CostCategory = "MARKETING"
	CostAmministrazione CostCategory = "AMMINISTRAZIONE"
	CostUtenze          CostCategory = "UTENZE"
	CostAltro           CostCategory = "ALTRO"
)

// Frequency is how often a cost item is charged.
type Frequency string

const (
	FrequencyMensile     Frequency = "MENSILE"
	FrequencyTrimestrale Frequency = "TRIMESTRALE"
	FrequencySemestrale  Frequency = "SEMESTRALE"
	FrequencyAnnuale     Frequency = "ANNUALE"
	FrequencyUnaTantum   Frequency = "UNA_TANTUM"
)

// Direction is the sign of a cash movement.
type Direction string

const (
	DirectionEntrata Direction = "ENTRATA"
	DirectionUscita  Direction = "USCITA"
)

type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Client struct {
	ID        string         `json:"id"`
	LegalName string         `json:"legal_name"`
	TaxID     string         `json:"tax_id"`
	Category  ClientCategory `json:"category"`
	Contact   Contact        `json:"contact"`
	Active    bool           `json:"active"`
}

// Lot is a time-boxed batch of sellable spaces and stations.
type Lot struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	City            string    `json:"city"`
	Address         string    `json:"address"`
	Status          LotStatus `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalSpaces     int       `json:"total_spaces"`
	TotalStations   int       `json:"total_stations"`
	GoNoGoThreshold float64   `json:"go_no_go_threshold"`
	TargetRevenue   float64   `json:"target_revenue"`
}

type Space struct {
	ID        string      `json:"id"`
	LotID     string      `json:"lot_id"`
	Number    int         `json:"number"`
	Type      UnitType    `json:"type"`
	ListPrice float64     `json:"list_price"`
	Discount  float64     `json:"discount"`
	NetPrice  float64     `json:"net_price"`
	Status    SpaceStatus `json:"status"`
	ClientID  string      `json:"client_id,omitempty"`
}

type Station struct {
	ID        string        `json:"id"`
	LotID     string        `json:"lot_id"`
	Number    int           `json:"number"`
	ListPrice float64       `json:"list_price"`
	Discount  float64       `json:"discount"`
	NetPrice  float64       `json:"net_price"`
	Status    StationStatus `json:"status"`
	ClientID  string        `json:"client_id,omitempty"`
}

type Opportunity struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	LotID             string          `json:"lot_id"`
	Subject           string          `json:"subject"`
	Type              OpportunityType `json:"type"`
	ExpectedValue     float64         `json:"expected_value"`
	Phase             Phase           `json:"phase"`
	Probability       float64         `json:"probability"`
	ExpectedCloseDate time.Time       `json:"expected_close_date"`
}

// CostItem is a structural cost. PaymentMonths is free text such as "1,4,7,10".
type CostItem struct {
	ID            string       `json:"id"`
	Category      CostCategory `json:"category"`
	Description   string       `json:"description"`
	Amount        float64      `json:"amount"`
	Frequency     Frequency    `json:"frequency"`
	AccrualDate   time.Time    `json:"accrual_date"`
	Recurring     bool         `json:"recurring"`
	PaymentMonths string       `json:"payment_months,omitempty"`
}

type CashMovement struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Direction   Direction `json:"direction"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

// Snapshot is a read-only view of every collection at one point in time.
type Snapshot struct {
	Clients       []Client
	Lots          []Lot
	Spaces        []Space
	Stations      []Station
	Opportunities []Opportunity
	Costs         []CostItem
	CashMovements []CashMovement
}
