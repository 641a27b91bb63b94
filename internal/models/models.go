package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyINR    = "INR"
	aaHandleSuffix = "@anumati"
)

// AAHandleFor derives the account aggregator handle from a mobile number.
func AAHandleFor(mobile string) string {
	return mobile + aaHandleSuffix
}

// CategoryFor maps an account type onto its FI category.
func CategoryFor(accountType AccountType) AccountCategory {
	switch accountType {
	case AccountCredit:
		return CategoryCreditCard
	case AccountFD:
		return CategoryTermDeposit
	case AccountRD:
		return CategoryRecurringDeposit
	default:
		return CategoryDeposit
	}
}

type AccountCategory string

const (
	CategoryDeposit          AccountCategory = "DEPOSIT"
	CategoryCreditCard       AccountCategory = "CREDIT_CARD"
	CategoryTermDeposit      AccountCategory = "TERM_DEPOSIT"
	CategoryRecurringDeposit AccountCategory = "RECURRING_DEPOSIT"
)

type AccountType string

const (
	AccountSavings AccountType = "SAVINGS"
	AccountCurrent AccountType = "CURRENT"
	AccountCredit  AccountType = "CREDIT"
	AccountFD      AccountType = "FD"
	AccountRD      AccountType = "RD"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountClosed   AccountStatus = "CLOSED"
)

type TxnType string

const (
	TxnCredit TxnType = "CREDIT"
	TxnDebit  TxnType = "DEBIT"
)

type TxnMode string

const (
	ModeCash   TxnMode = "CASH"
	ModeATM    TxnMode = "ATM"
	ModeCard   TxnMode = "CARD"
	ModeUPI    TxnMode = "UPI"
	ModeFT     TxnMode = "FT"
	ModeOthers TxnMode = "OTHERS"
)

type InvestmentType string

const (
	InvestmentMutualFunds InvestmentType = "MUTUAL_FUNDS"
	InvestmentEquities    InvestmentType = "EQUITIES"
	InvestmentPPF         InvestmentType = "PPF"
	InvestmentTermDeposit InvestmentType = "TERM_DEPOSIT"
	InvestmentNPS         InvestmentType = "NPS"
)

type InvestmentStatus string

const (
	InvestmentActive  InvestmentStatus = "ACTIVE"
	InvestmentMatured InvestmentStatus = "MATURED"
	InvestmentClosed  InvestmentStatus = "CLOSED"
)

type LiabilityType string

const (
	LiabilityCreditCard    LiabilityType = "CREDIT_CARD"
	LiabilityPersonalLoan  LiabilityType = "PERSONAL_LOAN"
	LiabilityHomeLoan      LiabilityType = "HOME_LOAN"
	LiabilityCarLoan       LiabilityType = "CAR_LOAN"
	LiabilityEducationLoan LiabilityType = "EDUCATION_LOAN"
)

type LiabilityStatus string

const (
	LiabilityActive LiabilityStatus = "ACTIVE"
	LiabilityClosed LiabilityStatus = "CLOSED"
	// LiabilityOverdue is never assigned by the generator; payment tracking
	// would have to set it.
	LiabilityOverdue LiabilityStatus = "OVERDUE"
)

type Dependent struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Sex          string `json:"sex"`
	Relationship string `json:"relationship,omitempty"`
}

type HeldCard struct {
	BankName    string `json:"bank_name"`
	CardType    string `json:"card_type"`
	CardVariant string `json:"card_variant,omitempty"`
}

// PreciousMetals holds grams of each metal.
type PreciousMetals struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
}

type User struct {
	ID               string         `json:"id"`
	AAHandle         string         `json:"aa_handle"`
	Mobile           string         `json:"mobile"`
	PinHash          string         `json:"-"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	PAN              string         `json:"pan"`
	DOB              time.Time      `json:"dob"`
	Address          string         `json:"address,omitempty"`
	City             string         `json:"city,omitempty"`
	State            string         `json:"state,omitempty"`
	Pincode          string         `json:"pincode,omitempty"`
	Dependents       []Dependent    `json:"dependents"`
	CreditCards      []HeldCard     `json:"credit_cards"`
	PreciousMetals   PreciousMetals `json:"precious_metals"`
	FinancialPersona string         `json:"financial_persona,omitempty"`
	UserPersona      string         `json:"user_persona,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

type Holder struct {
	Name           string    `json:"name"`
	DOB            time.Time `json:"dob"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email"`
	PAN            string    `json:"pan"`
	Nominee        string    `json:"nominee"`
	CKYCCompliance bool      `json:"ckyc_compliance"`
	Address        string    `json:"address,omitempty"`
}

type AccountProfile struct {
	HolderType string   `json:"holder_type"`
	Holders    []Holder `json:"holders"`
}

type AccountSummary struct {
	CurrentBalance  decimal.Decimal  `json:"current_balance"`
	Currency        string           `json:"currency"`
	BalanceDateTime time.Time        `json:"balance_date_time"`
	Type            AccountType      `json:"type"`
	Status          AccountStatus    `json:"status"`
	Branch          string           `json:"branch"`
	IFSC            string           `json:"ifsc_code"`
	MICR            string           `json:"micr_code,omitempty"`
	OpeningDate     time.Time        `json:"opening_date"`
	DrawingLimit    *decimal.Decimal `json:"drawing_limit,omitempty"`
	CurrentODLimit  *decimal.Decimal `json:"current_od_limit,omitempty"`
	Facility        string           `json:"facility,omitempty"`
}

type Transaction struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	Type           TxnType         `json:"type"`
	Mode           TxnMode         `json:"mode"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	TxnID          string          `json:"txn_id"`
	Narration      string          `json:"narration"`
	Reference      string          `json:"reference"`
	Timestamp      time.Time       `json:"transaction_timestamp"`
	ValueDate      time.Time       `json:"value_date"`
	Category       string          `json:"category,omitempty"`
	MerchantName   string          `json:"merchant_name,omitempty"`
	MerchantUPI    string          `json:"merchant_upi,omitempty"`
}

// SignedAmount is positive for credits and negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TxnCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}

type Account struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Type            AccountCategory `json:"type"`
	FipID           string          `json:"fip_id"`
	FipName         string          `json:"fip_name"`
	MaskedAccNumber string          `json:"masked_acc_number"`
	ActualAccNumber string          `json:"-"`
	IFSC            string          `json:"ifsc_code"`
	Branch          string          `json:"branch"`
	AccountType     AccountType     `json:"account_type"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	Currency        string          `json:"currency"`
	Status          AccountStatus   `json:"status"`
	OpeningDate     time.Time       `json:"opening_date"`
	LinkRefNumber   string          `json:"link_ref_number"`
	Profile         AccountProfile  `json:"profile"`
	Summary         AccountSummary  `json:"summary"`
	Transactions    []Transaction   `json:"transactions,omitempty"`
}

type Investment struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	Type              InvestmentType   `json:"type"`
	Provider          string           `json:"provider"`
	SchemeName        string           `json:"scheme_name,omitempty"`
	FolioNumber       string           `json:"folio_number,omitempty"`
	Units             *decimal.Decimal `json:"units,omitempty"`
	NAV               *decimal.Decimal `json:"nav,omitempty"`
	CurrentValue      decimal.Decimal  `json:"current_value"`
	InvestedAmount    decimal.Decimal  `json:"invested_amount"`
	Returns           decimal.Decimal  `json:"returns"`
	ReturnsPercentage decimal.Decimal  `json:"returns_percentage"`
	StartDate         time.Time        `json:"start_date"`
	MaturityDate      *time.Time       `json:"maturity_date,omitempty"`
	Status            InvestmentStatus `json:"status"`
}

type Liability struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	Type              LiabilityType    `json:"type"`
	Provider          string           `json:"provider"`
	AccountNumber     string           `json:"account_number"`
	PrincipalAmount   decimal.Decimal  `json:"principal_amount"`
	OutstandingAmount decimal.Decimal  `json:"outstanding_amount"`
	TotalLimit        *decimal.Decimal `json:"total_limit,omitempty"`
	EMIAmount         *decimal.Decimal `json:"emi_amount,omitempty"`
	Tenure            int              `json:"tenure,omitempty"`
	InterestRate      decimal.Decimal  `json:"interest_rate"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           *time.Time       `json:"end_date,omitempty"`
	Status            LiabilityStatus  `json:"status"`
}
