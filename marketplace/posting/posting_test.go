package posting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

func openPosting(required, hired int) *Posting {
	return &Posting{
		ID:                 kernel.NewPostingID("post-1"),
		EmployerID:         kernel.NewUserID("emp-1"),
		Title:              "Delivery Driver",
		RequiredCandidates: required,
		HiredCount:         hired,
		RecordStatus:       RecordStatusActive,
		PostedAt:           time.Now(),
	}
}

func TestDerivedStatusPrecedence(t *testing.T) {
	p := openPosting(3, 0)
	assert.Equal(t, StatusOpen, p.DerivedStatus())

	p.HiredCount = 1
	assert.Equal(t, StatusPartiallyFilled, p.DerivedStatus())

	p.HiredCount = 3
	assert.Equal(t, StatusFilled, p.DerivedStatus())

	p.IsClosed = true
	assert.Equal(t, StatusManuallyClosed, p.DerivedStatus())

	p.AutoClosed = true
	assert.Equal(t, StatusAutoClosed, p.DerivedStatus())

	// Deleted wins over everything
	p.RecordStatus = RecordStatusDeleted
	assert.Equal(t, StatusDeleted, p.DerivedStatus())
}

func TestRemainingSlots(t *testing.T) {
	assert.Equal(t, 3, openPosting(3, 0).RemainingSlots())
	assert.Equal(t, 1, openPosting(3, 2).RemainingSlots())
	assert.Equal(t, 0, openPosting(3, 3).RemainingSlots())
	// Never negative, even if over-filled rows exist
	assert.Equal(t, 0, openPosting(3, 5).RemainingSlots())
}

func TestRecordHireAutoClosesWhenFilled(t *testing.T) {
	p := openPosting(2, 0)

	require.NoError(t, p.RecordHire())
	assert.Equal(t, 1, p.HiredCount)
	assert.False(t, p.IsClosed)
	assert.Nil(t, p.ClosedAt)

	require.NoError(t, p.RecordHire())
	assert.Equal(t, 2, p.HiredCount)
	assert.True(t, p.IsClosed)
	assert.True(t, p.AutoClosed)
	assert.NotNil(t, p.ClosedAt)
	assert.Equal(t, StatusAutoClosed, p.DerivedStatus())
}

func TestRecordHireRejectedWhenClosed(t *testing.T) {
	p := openPosting(2, 2)
	p.IsClosed = true

	err := p.RecordHire()
	assert.Error(t, err)
	assert.Equal(t, 2, p.HiredCount)
}

func TestRecordHireRejectedWhenDeleted(t *testing.T) {
	p := openPosting(2, 0)
	p.RecordStatus = RecordStatusDeleted

	assert.Error(t, p.RecordHire())
}

func TestManualClose(t *testing.T) {
	p := openPosting(5, 1)

	require.NoError(t, p.Close())
	assert.True(t, p.IsClosed)
	assert.False(t, p.AutoClosed)
	assert.NotNil(t, p.ClosedAt)
	assert.Equal(t, StatusManuallyClosed, p.DerivedStatus())

	assert.Error(t, p.Close())
}

func TestIsOpenForApplications(t *testing.T) {
	assert.True(t, openPosting(2, 1).IsOpenForApplications())

	filled := openPosting(2, 2)
	assert.False(t, filled.IsOpenForApplications())

	closed := openPosting(2, 0)
	closed.IsClosed = true
	assert.False(t, closed.IsOpenForApplications())

	deleted := openPosting(2, 0)
	deleted.RecordStatus = RecordStatusDeleted
	assert.False(t, deleted.IsOpenForApplications())
}

func TestSoftDelete(t *testing.T) {
	p := openPosting(2, 0)

	require.NoError(t, p.SoftDelete())
	assert.True(t, p.IsDeleted())
	assert.Equal(t, StatusDeleted, p.DerivedStatus())

	assert.Error(t, p.SoftDelete())
}

func TestHireResultRemainingSlots(t *testing.T) {
	r := &HireResult{HiredCount: 2, RequiredCandidates: 5}
	assert.Equal(t, 3, r.RemainingSlots())

	r = &HireResult{HiredCount: 5, RequiredCandidates: 5, AutoClosed: true}
	assert.Equal(t, 0, r.RemainingSlots())
}
