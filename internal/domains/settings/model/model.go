package model

// Entry is one key/value pair inside a remote settings category. The remote
// API stores everything as strings grouped by category name.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Remote is the loosely-typed settings blob as the remote API returns it.
type Remote map[string][]Entry

const (
	categoryGeneral = "general"
	categoryContact = "contact"
	categoryBooking = "booking"
	categorySocial  = "social"
)

// Hotel is the typed settings view this layer works with. Every field has a
// default; the remote blob only overrides what it names, so a partial or
// empty response still yields a fully-populated struct.
type Hotel struct {
	General General     `json:"general"`
	Contact ContactInfo `json:"contact"`
	Booking Booking     `json:"booking"`
	Social  Social      `json:"social"`
}

type General struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	Currency     string `json:"currency"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Booking struct {
	MinNights       string `json:"min_nights"`
	MaxRoomsPerStay string `json:"max_rooms_per_stay"`
	CancellationCut string `json:"cancellation_cutoff_hours"`
}

type Social struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

func Defaults() Hotel {
	return Hotel{
		General: General{
			Name:         "Sunstone Hotel",
			Tagline:      "Your home away from home",
			Currency:     "NGN",
			CheckInTime:  "14:00",
			CheckOutTime: "11:00",
		},
		Contact: ContactInfo{
			Email: "hello@sunstonehotel.example",
		},
		Booking: Booking{
			MinNights:       "1",
			MaxRoomsPerStay: "5",
			CancellationCut: "24",
		},
		Social: Social{},
	}
}

// FromRemote merges the remote blob over the defaults. Unknown categories
// and keys are ignored rather than failing the whole conversion.
func FromRemote(remote Remote) Hotel {
	hotel := Defaults()

	for category, entries := range remote {
		for _, entry := range entries {
			hotel.apply(category, entry.Key, entry.Value)
		}
	}

	return hotel
}

func (h *Hotel) apply(category, key, value string) {
	if value == "" {
		return
	}

	switch category {
	case categoryGeneral:
		switch key {
		case "name":
			h.General.Name = value
		case "tagline":
			h.General.Tagline = value
		case "currency":
			h.General.Currency = value
		case "check_in_time":
			h.General.CheckInTime = value
		case "check_out_time":
			h.General.CheckOutTime = value
		}
	case categoryContact:
		switch key {
		case "email":
			h.Contact.Email = value
		case "phone":
			h.Contact.Phone = value
		case "address":
			h.Contact.Address = value
		}
	case categoryBooking:
		switch key {
		case "min_nights":
			h.Booking.MinNights = value
		case "max_rooms_per_stay":
			h.Booking.MaxRoomsPerStay = value
		case "cancellation_cutoff_hours":
			h.Booking.CancellationCut = value
		}
	case categorySocial:
		switch key {
		case "instagram":
			h.Social.Instagram = value
		case "facebook":
			h.Social.Facebook = value
		case "twitter":
			h.Social.Twitter = value
		}
	}
}

// ToRemote flattens the typed struct back into the blob shape the remote
// PUT endpoint expects.
func (h Hotel) ToRemote() Remote {
	return Remote{
		categoryGeneral: {
			{Key: "name", Value: h.General.Name},
			{Key: "tagline", Value: h.General.Tagline},
			{Key: "currency", Value: h.General.Currency},
			{Key: "check_in_time", Value: h.General.CheckInTime},
			{Key: "check_out_time", Value: h.General.CheckOutTime},
		},
		categoryContact: {
			{Key: "email", Value: h.Contact.Email},
			{Key: "phone", Value: h.Contact.Phone},
			{Key: "address", Value: h.Contact.Address},
		},
		categoryBooking: {
			{Key: "min_nights", Value: h.Booking.MinNights},
			{Key: "max_rooms_per_stay", Value: h.Booking.MaxRoomsPerStay},
			{Key: "cancellation_cutoff_hours", Value: h.Booking.CancellationCut},
		},
		categorySocial: {
			{Key: "instagram", Value: h.Social.Instagram},
			{Key: "facebook", Value: h.Social.Facebook},
			{Key: "twitter", Value: h.Social.Twitter},
		},
	}
}
