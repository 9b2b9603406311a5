package model

import "time"

// Team is a lesson-providing team owned by a single owner user. Teams are
// reference data from the payment core's perspective: prepare validates
// that the requested team exists, and owner-facing history queries are
// gated on team ownership.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – user who owns (manages) the team.
//  Name      – team display name, used in the gateway item description.
//  CreatedAt – creation timestamp.
type Team struct {
	ID        uint64    // teams.id
	OwnerID   uint64    // teams.owner_id
	Name      string    // teams.name
	CreatedAt time.Time // teams.created_at
}

// Instructor is an optional designated instructor for a lesson. Only its
// existence matters to the payment flow; profile data lives elsewhere.
type Instructor struct {
	ID     uint64 // instructors.id
	TeamID uint64 // instructors.team_id
	UserID uint64 // instructors.user_id
}
