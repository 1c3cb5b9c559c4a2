package dto

type CredentialsForm struct {
	Username string
	Password string
}
