package models

// User represents one document of the "users" collection. Users are
// provisioned out-of-band (token included); this service only reads them.
type User struct {
	ID    string `bson:"_id,omitempty" json:"_id,omitempty"`
	User  string `bson:"user" json:"user"`
	Email string `bson:"email" json:"email"`
	Token string `bson:"token,omitempty" json:"token,omitempty"`
}
