package models

// User represents a dashboard account as stored in the usuarios table.
type User struct {
	Username       string `mapstructure:"nombre_usuario" db:"nombre_usuario"`
	HashedPassword string `mapstructure:"clave" db:"clave"`
}

// NewUser creates a new User instance with the given username and password hash.
// Note: No validation is performed here.
func NewUser(username string, hashedPassword string) *User {
	return &User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
}
