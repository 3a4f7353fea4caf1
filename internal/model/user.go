package model

// User is a festival attendee.  Users are created with just a display
// name and identified by an integer id assigned by storage.  A user
// owns zero or more Selections; deleting a user removes all of its
// selections as well.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name, required and non-empty.
type User struct {
	ID   uint64 `json:"id"`   // users.id
	Name string `json:"name"` // users.name
}
