package models

type Profile struct {
	ID      string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Image   string  `json:"image,omitempty" bson:"image,omitempty"`
	Phone   string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Address Address `json:"address" bson:"address"`
	Gender  string  `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB     string  `json:"dob,omitempty" bson:"dob,omitempty"`
}
