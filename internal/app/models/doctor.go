package models

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2" bson:"line2"`
}

type Doctor struct {
	ID          string              `json:"_id" bson:"_id"`
	Name        string              `json:"name" bson:"name"`
	Email       string              `json:"email,omitempty" bson:"email,omitempty"`
	Image       string              `json:"image,omitempty" bson:"image,omitempty"`
	Speciality  string              `json:"speciality" bson:"speciality"`
	Degree      string              `json:"degree,omitempty" bson:"degree,omitempty"`
	Experience  string              `json:"experience,omitempty" bson:"experience,omitempty"`
	About       string              `json:"about,omitempty" bson:"about,omitempty"`
	Available   bool                `json:"available" bson:"available"`
	Fees        float64             `json:"fees" bson:"fees"`
	Address     Address             `json:"address" bson:"address"`
	SlotsBooked map[string][]string `json:"slots_booked,omitempty" bson:"slots_booked,omitempty"`
}

// IsBooked reports whether label is already reserved on dateKey.
// A nil or empty booked map means nothing is reserved.
func (d Doctor) IsBooked(dateKey, label string) bool {
	for _, booked := range d.SlotsBooked[dateKey] {
		if booked == label {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no map or slice with d.
func (d Doctor) Clone() Doctor {
	clone := d
	if d.SlotsBooked != nil {
		clone.SlotsBooked = make(map[string][]string, len(d.SlotsBooked))
		for dateKey, labels := range d.SlotsBooked {
			clone.SlotsBooked[dateKey] = append([]string(nil), labels...)
		}
	}
	return clone
}
