package model

import "time"

// User is the authenticated principal referenced by lessons, payments and
// settlements. Identity resolution happens upstream; this service only
// reads user rows to label reservations and to scope queries.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name used in gateway item descriptions.
//  Role      – OWNER or CUSTOMER, mirrored in the JWT role claim.
//  CreatedAt – creation timestamp.
type User struct {
	ID        uint64    // users.id
	Name      string    // users.name
	Role      string    // users.role
	CreatedAt time.Time // users.created_at
}
