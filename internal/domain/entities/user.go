package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents a user in the system
type User struct {
	ID      uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email   string      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name    string      `json:"name" gorm:"type:varchar(255);not null"`
	Persona UserPersona `json:"persona" gorm:"type:varchar(50);default:'employee';not null"`

	// Auth fields
	AuthProvider      string  `json:"auth_provider" gorm:"type:varchar(50);default:'email';not null"`
	OAuthID           *string `json:"oauth_id,omitempty" gorm:"column:oauth_id;type:varchar(255);index:idx_oauth"`
	OAuthRefreshToken *string `json:"-" gorm:"column:oauth_refresh_token;type:text"` // Never expose in JSON
	PasswordHash      *string `json:"-" gorm:"column:password_hash;type:text"`       // Never expose in JSON

	// Per-user product settings (board credential, generation key, workspace id, ...)
	// stored as JSONB in PostgreSQL
	Settings datatypes.JSON `json:"settings" gorm:"type:jsonb;default:'{}'"`

	// Status
	IsActive    bool       `json:"is_active" gorm:"default:true;not null"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" gorm:"type:timestamp"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserPersona gates feature visibility per user
type UserPersona string

const (
	PersonaEmployee UserPersona = "employee"
	PersonaAdmin    UserPersona = "admin"
)

// IsValid checks if the persona is valid
func (p UserPersona) IsValid() bool {
	switch p {
	case PersonaEmployee, PersonaAdmin:
		return true
	}
	return false
}

// NewUser creates a new user with default values
func NewUser(email, name string, persona UserPersona) *User {
	now := time.Now()
	settings, _ := json.Marshal(DefaultSettings())

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Persona:      persona,
		AuthProvider: "email",
		IsActive:     true,
		Settings:     settings,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewOAuthUser creates a new user from an OAuth provider.
// Federated signups default to the employee persona.
func NewOAuthUser(email, name, provider, oauthID string) *User {
	user := NewUser(email, name, PersonaEmployee)
	user.AuthProvider = provider
	user.OAuthID = &oauthID
	return user
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// IsAdmin checks if the user has the admin persona
func (u *User) IsAdmin() bool {
	return u.Persona == PersonaAdmin
}

// GetSettings decodes the settings JSONB column. Malformed or missing
// settings decode to the zero value rather than failing.
func (u *User) GetSettings() Settings {
	var s Settings
	if len(u.Settings) > 0 {
		_ = json.Unmarshal(u.Settings, &s)
	}
	return s
}

// SetSettings encodes settings back to the JSONB column
func (u *User) SetSettings(s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	u.Settings = data
	u.UpdatedAt = time.Now()
	return nil
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Persona.IsValid() {
		return ErrInvalidPersona
	}
	return nil
}

// PublicUser returns a user with sensitive fields removed
type PublicUser struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Persona   UserPersona `json:"persona"`
	CreatedAt time.Time   `json:"created_at"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Persona:   u.Persona,
		CreatedAt: u.CreatedAt,
	}
}
