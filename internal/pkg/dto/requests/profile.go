package requests

import "medibook-client/internal/app/models"

type UpdateProfile struct {
	Name    string         `json:"name" validate:"required,trimmed_min=2"`
	Phone   string         `json:"phone"`
	Address models.Address `json:"address"`
	DOB     string         `json:"dob" validate:"omitempty,max=32"`
	Gender  string         `json:"gender"`
	Image   *ImageUpload   `json:"-"`
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}
