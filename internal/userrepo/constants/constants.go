package constants

const (
	// UsersTable holds the dashboard accounts.
	UsersTable = "usuarios"

	UsernameColumn = "nombre_usuario"
	PasswordColumn = "clave"
)
