package posting

import (
	"time"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// RecordStatus is the stored lifecycle of a posting row
type RecordStatus string

const (
	RecordStatusActive  RecordStatus = "active"
	RecordStatusDeleted RecordStatus = "deleted" // soft-deleted, hidden from seekers
)

// Status is the derived hiring state shown to employers
type Status string

const (
	StatusOpen            Status = "open"
	StatusPartiallyFilled Status = "partially_filled"
	StatusFilled          Status = "filled"
	StatusManuallyClosed  Status = "manually_closed"
	StatusAutoClosed      Status = "auto_closed"
	StatusDeleted         Status = "deleted"
)

type Posting struct {
	ID         kernel.PostingID `db:"id" json:"id"`
	EmployerID kernel.UserID    `db:"employer_id" json:"employer_id"`

	Title        string         `db:"title" json:"title"`
	Location     string         `db:"location" json:"location"`
	Salary       kernel.Money   `db:"salary" json:"salary"`
	JobType      kernel.JobType `db:"job_type" json:"job_type"`
	Experience   string         `db:"experience" json:"experience"`
	WorkingHours string         `db:"working_hours" json:"working_hours"`
	Urgency      string         `db:"urgency" json:"urgency"`
	ContractType string         `db:"contract_type" json:"contract_type"`
	Description  string         `db:"description" json:"description"`
	Requirements string         `db:"requirements" json:"requirements"`
	Benefits     string         `db:"benefits" json:"benefits"`

	// Hiring-slot accounting
	RequiredCandidates int  `db:"required_candidates" json:"required_candidates"`
	HiredCount         int  `db:"hired_count" json:"hired_count"`
	IsClosed           bool `db:"is_closed" json:"is_closed"`
	AutoClosed         bool `db:"auto_closed" json:"auto_closed"`

	RecordStatus RecordStatus `db:"record_status" json:"record_status"`
	ClosedAt     *time.Time   `db:"closed_at" json:"closed_at,omitempty"`
	PostedAt     time.Time    `db:"posted_at" json:"posted_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsDeleted checks if the posting has been soft-deleted
func (p *Posting) IsDeleted() bool {
	return p.RecordStatus == RecordStatusDeleted
}

// IsOpenForApplications checks whether seekers may still apply
func (p *Posting) IsOpenForApplications() bool {
	return !p.IsDeleted() && !p.IsClosed && p.HiredCount < p.RequiredCandidates
}

// RemainingSlots returns how many positions are still unfilled
func (p *Posting) RemainingSlots() int {
	remaining := p.RequiredCandidates - p.HiredCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DerivedStatus computes the employer-facing hiring state. Precedence:
// deleted, then closed (manual vs auto), then fill level.
func (p *Posting) DerivedStatus() Status {
	switch {
	case p.IsDeleted():
		return StatusDeleted
	case p.IsClosed && p.AutoClosed:
		return StatusAutoClosed
	case p.IsClosed:
		return StatusManuallyClosed
	case p.HiredCount >= p.RequiredCandidates:
		return StatusFilled
	case p.HiredCount > 0:
		return StatusPartiallyFilled
	default:
		return StatusOpen
	}
}

// RecordHire increments the hired count and auto-closes the posting once
// every required position is filled
func (p *Posting) RecordHire() error {
	if p.IsDeleted() {
		return ErrPostingDeleted()
	}
	if p.IsClosed {
		return ErrPostingClosed()
	}

	now := time.Now()
	p.HiredCount++
	if p.HiredCount >= p.RequiredCandidates {
		p.IsClosed = true
		p.AutoClosed = true
		p.ClosedAt = &now
	}
	p.UpdatedAt = now
	return nil
}

// Close manually closes the posting
func (p *Posting) Close() error {
	if p.IsDeleted() {
		return ErrPostingDeleted()
	}
	if p.IsClosed {
		return ErrPostingAlreadyClosed()
	}

	now := time.Now()
	p.IsClosed = true
	p.AutoClosed = false
	p.ClosedAt = &now
	p.UpdatedAt = now
	return nil
}

// SoftDelete marks the posting as deleted without removing the row
func (p *Posting) SoftDelete() error {
	if p.IsDeleted() {
		return ErrPostingDeleted()
	}

	p.RecordStatus = RecordStatusDeleted
	p.UpdatedAt = time.Now()
	return nil
}

// HireResult reports the slot state after an accepted application
type HireResult struct {
	PostingID          kernel.PostingID `json:"posting_id"`
	HiredCount         int              `json:"hired_count"`
	RequiredCandidates int              `json:"required_candidates"`
	AutoClosed         bool             `json:"auto_closed"`
}

// RemainingSlots returns the unfilled positions after the hire
func (r *HireResult) RemainingSlots() int {
	remaining := r.RequiredCandidates - r.HiredCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
