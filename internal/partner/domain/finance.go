package domain

import "time"

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutPaid       PayoutStatus = "paid"
	PayoutHeld       PayoutStatus = "held"
)

// Payout is a settlement batch. Batches are produced by the finance
// pipeline; the partner hub only reads them.
type Payout struct {
	ID             string
	OrganizationID string
	PeriodStart    string // YYYY-MM-DD
	PeriodEnd      string // YYYY-MM-DD
	AmountCents    int64
	Status         PayoutStatus
	PaidAt         *time.Time
	CreatedAt      time.Time
}

// EarningsLine is the revenue of one session with at least one check-in.
type EarningsLine struct {
	Date          string // org local YYYY-MM-DD
	SessionID     string
	ClassTitle    string
	CheckinsCount int
	Credits       int
	AmountCents   int64
}

type EarningsReport struct {
	Period     string // YYYY-MM
	TotalCents int64
	Lines      []EarningsLine
}

type DisputeReason string

const (
	DisputeWrongCheckinTime DisputeReason = "wrong_checkin_time"
	DisputeTechnicalIssue   DisputeReason = "technical_issue"
	DisputeDuplicateEntry   DisputeReason = "duplicate_entry"
	DisputeIncorrectCredits DisputeReason = "incorrect_credits"
	DisputeOther            DisputeReason = "other"
)

func ParseDisputeReason(s string) (DisputeReason, bool) {
	switch r := DisputeReason(s); r {
	case DisputeWrongCheckinTime, DisputeTechnicalIssue, DisputeDuplicateEntry, DisputeIncorrectCredits, DisputeOther:
		return r, true
	}
	return "", false
}

type DisputeStatus string

const (
	DisputePending     DisputeStatus = "pending"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
	DisputeRejected    DisputeStatus = "rejected"
)

type Dispute struct {
	ID             string
	OrganizationID string
	BookingID      string
	Reason         DisputeReason
	Notes          string
	Status         DisputeStatus
	CreatedBy      string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

// CentsToUSD converts an amount for the JSON surface.
func CentsToUSD(c int64) float64 {
	return float64(c) / 100
}
