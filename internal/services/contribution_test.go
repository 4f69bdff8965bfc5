package services

import (
	"context"
	"testing"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionService_Submit(t *testing.T) {
	api := &fakeRelief{}
	svc := NewContributionService(api, testResolver(), &fakeActivity{}, testLogger())

	c, err := svc.Submit(context.Background(), 42, models.ContributionRequest{
		District:    "Matara",
		TypeSupport: "Food",
		Description: " 50 dry ration packs ",
	})
	require.NoError(t, err)

	want := upstream.Contribution{VolunteerID: 42, District: "Matara", TypeSupport: "Food", Description: "50 dry ration packs"}
	assert.Equal(t, want, c)
	assert.Equal(t, []upstream.Contribution{want}, api.contributions)
}

func TestContributionService_Submit_OtherType(t *testing.T) {
	api := &fakeRelief{}
	svc := NewContributionService(api, testResolver(), &fakeActivity{}, testLogger())

	c, err := svc.Submit(context.Background(), 42, models.ContributionRequest{
		District:    "Matara",
		TypeSupport: "Other",
		OtherType:   " Boat transport ",
		Description: "Two boats with crew",
	})
	require.NoError(t, err)
	assert.Equal(t, "Boat transport", c.TypeSupport)

	_, err = svc.Submit(context.Background(), 42, models.ContributionRequest{
		District:    "Matara",
		TypeSupport: "Other",
		Description: "Two boats with crew",
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please specify the type of support", verrs["other_type"])
}

func TestContributionService_Submit_Rejects(t *testing.T) {
	api := &fakeRelief{}
	svc := NewContributionService(api, testResolver(), &fakeActivity{}, testLogger())
	valid := models.ContributionRequest{District: "Matara", TypeSupport: "Food", Description: "Rice"}

	_, err := svc.Submit(context.Background(), 0, valid)
	assert.ErrorIs(t, err, ErrNotVolunteer)

	bad := valid
	bad.District = "Gotham"
	_, err = svc.Submit(context.Background(), 42, bad)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Unknown district 'Gotham'", verrs["district"])

	_, err = svc.Submit(context.Background(), 42, models.ContributionRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please select a district", verrs["district"])
	assert.Equal(t, "Please select a type of support", verrs["type_support"])
	assert.Equal(t, "Description is required", verrs["description"])

	assert.Empty(t, api.contributions)
}

func TestContributionService_Pending(t *testing.T) {
	api := &fakeRelief{pendingContr: []upstream.Contribution{{ContributionID: 9, District: "Matara", Status: "Pending"}}}
	svc := NewContributionService(api, testResolver(), &fakeActivity{}, testLogger())

	list, err := svc.Pending(context.Background(), "Matara")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Matara", api.pendingFor)
}

func TestContributionService_Review(t *testing.T) {
	api := &fakeRelief{}
	activity := &fakeActivity{}
	svc := NewContributionService(api, testResolver(), activity, testLogger())

	require.NoError(t, svc.Review(context.Background(), 9, models.ContributionApproved, "ds-matara", "Matara"))
	require.NoError(t, svc.Review(context.Background(), 10, models.ContributionRejected, "ds-matara", "Matara"))

	assert.Equal(t, []upstream.ContributionStatus{
		{ContributionID: 9, Status: "Approved", Actor: "ds-matara"},
		{ContributionID: 10, Status: "Rejected", Actor: "ds-matara"},
	}, api.reviews)
	require.Len(t, activity.entries, 2)
	assert.Equal(t, "Contribution 10 rejected", activity.entries[1].ActionDescription)

	err := svc.Review(context.Background(), 11, "Maybe", "ds-matara", "Matara")
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
}
