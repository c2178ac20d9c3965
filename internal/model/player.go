package model

import (
	"fmt"
	"time"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DOBLayout is the wire format for dates of birth
const DOBLayout = "2006-01-02"

// Player represents a registered auction participant.
// Age is a snapshot computed from DOB at write time; it is not recomputed
// automatically and can drift until the next update.
type Player struct {
	ID         PlayerID  `json:"id"`
	Name       string    `json:"name"`
	PhotoURL   string    `json:"photoUrl"`
	TshirtSize int       `json:"tshirtSize"`
	DOB        string    `json:"dob"`
	Age        int       `json:"age"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PlayerUpdate is a partial update to a player record.
// Nil fields are left unchanged.
type PlayerUpdate struct {
	Name       *string
	PhotoURL   *string
	TshirtSize *int
	DOB        *string
	Age        *int
}

// IsEmpty reports whether the update would change nothing
func (u PlayerUpdate) IsEmpty() bool {
	return u.Name == nil && u.PhotoURL == nil && u.TshirtSize == nil && u.DOB == nil && u.Age == nil
}

// Apply merges the update into the player in place
func (u PlayerUpdate) Apply(p *Player) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.PhotoURL != nil {
		p.PhotoURL = *u.PhotoURL
	}
	if u.TshirtSize != nil {
		p.TshirtSize = *u.TshirtSize
	}
	if u.DOB != nil {
		p.DOB = *u.DOB
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
}

// ParseDOB parses a date of birth in YYYY-MM-DD form
func ParseDOB(dob string) (time.Time, error) {
	t, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}
	return t, nil
}

// AgeOn returns the completed years between birth and now, adjusting for
// whether the birthday has already passed this year
func AgeOn(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
