package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Amenity is a closed label set; unknown labels are rejected when decoding.
type Amenity string

const (
	AmenityParking              Amenity = "Parking"
	AmenityPool                 Amenity = "Pool"
	AmenityGated                Amenity = "Gated"
	AmenitySecurity             Amenity = "Security"
	AmenityWheelchairAccessible Amenity = "WheelchairAccessible"
	AmenityElevator             Amenity = "Elevator"
	AmenityElectricity          Amenity = "Electricity"
	AmenityWater                Amenity = "Water"
)

// ParseAmenity maps a label to its Amenity value.
func ParseAmenity(s string) (Amenity, error) {
	switch Amenity(s) {
	case AmenityParking, AmenityPool, AmenityGated, AmenitySecurity,
		AmenityWheelchairAccessible, AmenityElevator, AmenityElectricity, AmenityWater:
		return Amenity(s), nil
	}
	return "", fmt.Errorf("unknown amenity label: %q", s)
}

func (a *Amenity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAmenity(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ListingType is the unit type of a Listing.
type ListingType string

const (
	ListingTypeSingle        ListingType = "Single"
	ListingTypeBedsitter     ListingType = "Bedsitter"
	ListingTypeSelfContained ListingType = "SelfContained"
)

// ParseListingType maps a label to its ListingType value.
func ParseListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case ListingTypeSingle, ListingTypeBedsitter, ListingTypeSelfContained:
		return ListingType(s), nil
	}
	return "", fmt.Errorf("unknown listing type label: %q", s)
}

func (t *ListingType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseListingType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Listing is an embedded value object within a Collection. It has no identity
// of its own and is persisted inside the collection row, not as a related table.
type Listing struct {
	TypeOfListing    ListingType `json:"typeOfListing"`
	Price            int         `json:"price"`
	NumberOfBedrooms int         `json:"numberOfBedrooms"` // 0 for Single and Bedsitter
	AvailableUnits   int         `json:"availableUnits"`
	Images           []string    `json:"images"`
	AdditionalFees   []string    `json:"additionalFees"`
}

// Collection is a property listing group (corresponds to the collections table).
// Duplicates are permitted in amenities/listings; order is preserved.
type Collection struct {
	ID                 int         `json:"id"`
	Title              string      `json:"title"`
	DisplayImageURL    string      `json:"displayImageUrl"`
	Description        *string     `json:"description"`
	Location           string      `json:"location"`
	ContactInformation string      `json:"contactInformation"`
	Amenities          []Amenity   `json:"amenities"`
	Listings           []Listing   `json:"listings"`
	Rules              []string    `json:"rules"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// CreateCollection is the create request schema. Pointer/nil-slice fields
// distinguish absent keys from zero values; every field except description is
// required. The server assigns id and createdAt.
type CreateCollection struct {
	Title              *string   `json:"title"`
	DisplayImageURL    *string   `json:"displayImageUrl"`
	Description        *string   `json:"description"`
	Location           *string   `json:"location"`
	ContactInformation *string   `json:"contactInformation"`
	Amenities          []Amenity `json:"amenities"`
	Listings           []Listing `json:"listings"`
	Rules              []string  `json:"rules"`
}

// Validate reports the first missing required field.
func (c *CreateCollection) Validate() error {
	switch {
	case c.Title == nil:
		return fmt.Errorf("title is required")
	case c.DisplayImageURL == nil:
		return fmt.Errorf("displayImageUrl is required")
	case c.Location == nil:
		return fmt.Errorf("location is required")
	case c.ContactInformation == nil:
		return fmt.Errorf("contactInformation is required")
	case c.Amenities == nil:
		return fmt.Errorf("amenities is required")
	case c.Listings == nil:
		return fmt.Errorf("listings is required")
	case c.Rules == nil:
		return fmt.Errorf("rules is required")
	}
	return nil
}

// UpdateCollection is the partial update schema: absent fields keep the stored
// values (merge-on-update). displayImageUrl is the one required field.
type UpdateCollection struct {
	Title              *string   `json:"title"`
	DisplayImageURL    *string   `json:"displayImageUrl"`
	Description        *string   `json:"description"`
	Location           *string   `json:"location"`
	ContactInformation *string   `json:"contactInformation"`
	Amenities          []Amenity `json:"amenities"`
	Listings           []Listing `json:"listings"`
	Rules              []string  `json:"rules"`
}

// Validate checks the required displayImageUrl field.
func (u *UpdateCollection) Validate() error {
	if u.DisplayImageURL == nil {
		return fmt.Errorf("displayImageUrl is required")
	}
	return nil
}
