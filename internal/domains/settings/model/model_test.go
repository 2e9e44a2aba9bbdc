package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sunstone/internal/domains/settings/model"
)

func TestFromRemote(t *testing.T) {
	t.Run("empty blob yields pure defaults", func(t *testing.T) {
		hotel := model.FromRemote(model.Remote{})

		assert.Equal(t, model.Defaults(), hotel)
	})

	t.Run("nil blob yields pure defaults", func(t *testing.T) {
		hotel := model.FromRemote(nil)

		assert.Equal(t, model.Defaults(), hotel)
	})

	t.Run("remote values override their defaults only", func(t *testing.T) {
		hotel := model.FromRemote(model.Remote{
			"general": {
				{Key: "name", Value: "Harbour View"},
				{Key: "currency", Value: "USD"},
			},
			"contact": {
				{Key: "phone", Value: "+2348000000000"},
			},
		})

		assert.Equal(t, "Harbour View", hotel.General.Name)
		assert.Equal(t, "USD", hotel.General.Currency)
		assert.Equal(t, "+2348000000000", hotel.Contact.Phone)

		defaults := model.Defaults()
		assert.Equal(t, defaults.General.Tagline, hotel.General.Tagline)
		assert.Equal(t, defaults.General.CheckInTime, hotel.General.CheckInTime)
		assert.Equal(t, defaults.Contact.Email, hotel.Contact.Email)
		assert.Equal(t, defaults.Booking, hotel.Booking)
	})

	t.Run("unknown categories and keys are ignored", func(t *testing.T) {
		hotel := model.FromRemote(model.Remote{
			"general":   {{Key: "mystery_key", Value: "x"}},
			"telemetry": {{Key: "name", Value: "should not apply"}},
		})

		assert.Equal(t, model.Defaults(), hotel)
	})

	t.Run("empty values do not clobber defaults", func(t *testing.T) {
		hotel := model.FromRemote(model.Remote{
			"general": {{Key: "name", Value: ""}},
		})

		assert.Equal(t, model.Defaults().General.Name, hotel.General.Name)
	})
}

func TestToRemoteRoundTrip(t *testing.T) {
	hotel := model.Defaults()
	hotel.General.Name = "Harbour View"
	hotel.Social.Instagram = "@harbourview"

	assert.Equal(t, hotel, model.FromRemote(hotel.ToRemote()))
}
