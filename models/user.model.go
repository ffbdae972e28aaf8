package models

// User represents the authenticated shopper. At most one identity is
// set at a time; login and registration replace it wholesale.
type User struct {
	ID     int64  `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Phone  string `bson:"phone" json:"phone"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// ProfileUpdate carries the fields of a profile edit. Nil fields are
// left unchanged by the merge.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
