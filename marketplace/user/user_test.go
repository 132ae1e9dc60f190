package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

func completeSeeker() *User {
	return &User{
		ID:             kernel.NewUserID("seeker-1"),
		Role:           kernel.RoleJobSeeker,
		Name:           "Ravi Kumar",
		Phone:          kernel.Phone("9876543210"),
		Email:          kernel.Email("ravi@example.com"),
		Aadhaar:        kernel.Aadhaar("123456789012"),
		Address:        "12 MG Road",
		City:           "Bengaluru",
		Experience:     "3 years",
		JobTypes:       []kernel.JobType{"Cook"},
		ExpectedSalary: 18000,
		Availability:   []string{"Weekdays"},
	}
}

func TestSeekerProfileCompletion(t *testing.T) {
	u := completeSeeker()
	assert.Equal(t, 100, u.ProfileCompletion())
	assert.True(t, u.HasCompleteProfile())

	u.Aadhaar = ""
	u.ExpectedSalary = 0
	// 8 of 10 required fields filled
	assert.Equal(t, 80, u.ProfileCompletion())
	assert.False(t, u.HasCompleteProfile())
}

func TestEmployerProfileCompletion(t *testing.T) {
	u := &User{
		Role:  kernel.RoleEmployer,
		Name:  "Asha Builders",
		Phone: kernel.Phone("9876500000"),
		Email: kernel.Email("hr@ashabuilders.in"),
	}
	// 3 of 8 required fields filled
	assert.Equal(t, 37, u.ProfileCompletion())

	u.CompanyName = "Asha Builders Pvt Ltd"
	u.CompanyType = "Construction"
	u.Address = "Plot 4, Industrial Area"
	u.City = "Pune"
	u.BusinessDescription = "Residential construction"
	assert.True(t, u.HasCompleteProfile())
}

func TestEmployerCompletionIgnoresSeekerFields(t *testing.T) {
	u := &User{Role: kernel.RoleEmployer, Name: "Solo"}
	withSeekerData := *u
	withSeekerData.Aadhaar = kernel.Aadhaar("123456789012")
	withSeekerData.ExpectedSalary = 50000

	assert.Equal(t, u.ProfileCompletion(), withSeekerData.ProfileCompletion())
}

func TestMatchesIdentifier(t *testing.T) {
	u := completeSeeker()

	assert.True(t, u.MatchesIdentifier("Ravi Kumar"))
	assert.True(t, u.MatchesIdentifier("ravi kumar"))
	assert.True(t, u.MatchesIdentifier("RAVI KUMAR"))
	assert.True(t, u.MatchesIdentifier("9876543210"))
	assert.True(t, u.MatchesIdentifier("ravi@example.com"))

	assert.False(t, u.MatchesIdentifier(""))
	assert.False(t, u.MatchesIdentifier("someone else"))
	assert.False(t, u.MatchesIdentifier("RAVI@EXAMPLE.COM"))
}

func TestRoleChecks(t *testing.T) {
	seeker := &User{Role: kernel.RoleJobSeeker}
	employer := &User{Role: kernel.RoleEmployer}

	assert.True(t, seeker.IsJobSeeker())
	assert.False(t, seeker.IsEmployer())
	assert.True(t, employer.IsEmployer())
	assert.False(t, employer.IsJobSeeker())
}
