package sessions

import (
	"time"

	"github.com/vanesatov/HotelesApi/internal/models"
)

// Session is one logged-in web session. The full user record is attached at
// login and removed at logout; nothing else reads or mutates it. The ID is
// the value carried by the session cookie.
type Session struct {
	ID        string      `bson:"_id,omitempty" json:"id"`
	User      models.User `bson:"user" json:"user"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time   `bson:"expiresAt" json:"expiresAt"`
}
