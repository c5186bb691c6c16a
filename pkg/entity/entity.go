package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Trip is an itinerary owned by a single user. Days keep insertion order,
// they are not sorted by DayNumber.
type Trip struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	TripName    string    `json:"tripName"`
	Description string    `json:"description"`
	Days        []Day     `json:"days"`
	Revision    int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Day struct {
	DayNumber int        `json:"dayNumber" bson:"dayNumber"`
	Date      string     `json:"date" bson:"date"`
	Places    []Activity `json:"places" bson:"places"`
}

// Activity is a single place visited during a day. Its name is used as the
// lookup key inside the day.
type Activity struct {
	Activity string `json:"activity" bson:"activity"`
	Time     string `json:"time" bson:"time"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ActivityPatch holds the fields to overwrite. Nil fields are left as is.
type ActivityPatch struct {
	Activity *string
	Time     *string
	Location *string
	Notes    *string
}

func (p ActivityPatch) Empty() bool {
	return p.Activity == nil && p.Time == nil && p.Location == nil && p.Notes == nil
}

func (p ActivityPatch) Apply(a *Activity) {
	if p.Activity != nil {
		a.Activity = *p.Activity
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

// TripFields is a partial update of trip's top-level fields.
type TripFields struct {
	TripName    *string
	Description *string
}

// FindDay returns index of the first day with given number or -1.
func (t *Trip) FindDay(dayNumber int) int {
	for i := range t.Days {
		if t.Days[i].DayNumber == dayNumber {
			return i
		}
	}
	return -1
}

// FindActivity returns index of the first activity with given name or -1.
func (d *Day) FindActivity(name string) int {
	for i := range d.Places {
		if d.Places[i].Activity == name {
			return i
		}
	}
	return -1
}

// Clone makes a deep copy so callers can't alias stored slices.
func (t *Trip) Clone() *Trip {
	c := *t
	c.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		c.Days[i] = d
		c.Days[i].Places = append([]Activity{}, d.Places...)
	}
	return &c
}
