package model

// Selection marks that one user plans to attend one set.  It is a pure
// join record: at most one selection may exist per (user, set) pair.
// Selections are deleted explicitly per pair or transitively when the
// owning user or set is removed.
//
// Fields:
//  ID     – primary key identifier.
//  UserID – attending user, required.
//  SetID  – selected set, required.
type Selection struct {
	ID     uint64 `json:"id"`      // user_selections.id
	UserID uint64 `json:"user_id"` // user_selections.user_id
	SetID  uint64 `json:"set_id"`  // user_selections.set_id
}
