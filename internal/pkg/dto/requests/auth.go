package requests

type Login struct {
	Email    string `json:"email" validate:"required,booking_email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register fields are checked in declaration order; the first failure is reported.
type Register struct {
	Email    string `json:"email" validate:"required,booking_email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,trimmed_min=2"`
}

type SetToken struct {
	Token string `json:"token"`
}
