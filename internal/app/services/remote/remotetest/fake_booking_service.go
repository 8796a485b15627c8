// Package remotetest provides an in-memory booking service for tests.
package remotetest

import (
	"context"
	"fmt"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"sync"
)

const (
	CallListDoctors       = "ListDoctors"
	CallGetProfile        = "GetProfile"
	CallRegister          = "Register"
	CallLogin             = "Login"
	CallBookAppointment   = "BookAppointment"
	CallCancelAppointment = "CancelAppointment"
	CallListAppointments  = "ListAppointments"
	CallUpdateProfile     = "UpdateProfile"
)

// BookingService behaves like the remote booking service: bookings are
// recorded in the doctor's slots_booked and cancellations free the slot.
type BookingService struct {
	mu           sync.Mutex
	doctors      []models.Doctor
	profiles     map[string]*models.Profile
	appointments []models.Appointment
	calls        map[string]int
	errs         map[string]error
	nextID       int

	// IssuedToken is returned by Login and Register.
	IssuedToken string
	// OnCall runs at the start of every call, outside the lock.
	OnCall func(name string)
}

func NewBookingService(doctors ...models.Doctor) *BookingService {
	return &BookingService{
		doctors:     doctors,
		profiles:    map[string]*models.Profile{},
		calls:       map[string]int{},
		errs:        map[string]error{},
		IssuedToken: "tok-issued",
	}
}

func (f *BookingService) SetProfile(token string, profile *models.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[token] = profile
}

// FailWith makes every following call of name fail with err. A nil err
// clears the failure.
func (f *BookingService) FailWith(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.errs, name)
		return
	}
	f.errs[name] = err
}

func (f *BookingService) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *BookingService) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, count := range f.calls {
		total += count
	}
	return total
}

func (f *BookingService) AddAppointment(appointment models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments = append(f.appointments, appointment)
}

func (f *BookingService) Appointment(id string) (models.Appointment, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, appointment := range f.appointments {
		if appointment.ID == id {
			return appointment, true
		}
	}
	return models.Appointment{}, false
}

func (f *BookingService) begin(name string) error {
	if f.OnCall != nil {
		f.OnCall(name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *BookingService) ListDoctors(context.Context) ([]models.Doctor, error) {
	if err := f.begin(CallListDoctors); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	doctors := make([]models.Doctor, 0, len(f.doctors))
	for _, doctor := range f.doctors {
		doctors = append(doctors, doctor.Clone())
	}
	return doctors, nil
}

func (f *BookingService) GetProfile(_ context.Context, token string) (*models.Profile, error) {
	if err := f.begin(CallGetProfile); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[token]
	if !ok {
		return nil, exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, constvars.RemoteResourceProfile)
	}
	copied := *profile
	return &copied, nil
}

func (f *BookingService) Register(_ context.Context, request *requests.Register) (string, error) {
	if err := f.begin(CallRegister); err != nil {
		return "", err
	}
	f.SetProfile(f.IssuedToken, &models.Profile{Name: request.Name, Email: request.Email})
	return f.IssuedToken, nil
}

func (f *BookingService) Login(_ context.Context, request *requests.Login) (string, error) {
	if err := f.begin(CallLogin); err != nil {
		return "", err
	}
	f.mu.Lock()
	if _, ok := f.profiles[f.IssuedToken]; !ok {
		f.profiles[f.IssuedToken] = &models.Profile{Email: request.Email}
	}
	f.mu.Unlock()
	return f.IssuedToken, nil
}

func (f *BookingService) BookAppointment(_ context.Context, token string, request *requests.BookAppointment) (string, error) {
	if err := f.begin(CallBookAppointment); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.profiles[token]; !ok {
		return "", exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, constvars.RemoteResourceAppointments)
	}
	for i := range f.doctors {
		if f.doctors[i].ID != request.DocID {
			continue
		}
		if f.doctors[i].IsBooked(request.SlotDate, request.SlotTime) {
			return "", exceptions.ErrRemoteDomain("Slot not available", constvars.RemoteResourceAppointments)
		}
		if f.doctors[i].SlotsBooked == nil {
			f.doctors[i].SlotsBooked = map[string][]string{}
		}
		f.doctors[i].SlotsBooked[request.SlotDate] = append(f.doctors[i].SlotsBooked[request.SlotDate], request.SlotTime)

		f.nextID++
		doctor := f.doctors[i].Clone()
		f.appointments = append(f.appointments, models.Appointment{
			ID:       fmt.Sprintf("apt-%d", f.nextID),
			DocID:    request.DocID,
			SlotDate: request.SlotDate,
			SlotTime: request.SlotTime,
			DocData:  &doctor,
			Amount:   doctor.Fees,
		})
		return "Appointment Booked", nil
	}
	return "", exceptions.ErrRemoteDomain("Doctor not available", constvars.RemoteResourceAppointments)
}

func (f *BookingService) CancelAppointment(_ context.Context, token string, request *requests.CancelAppointment) (string, error) {
	if err := f.begin(CallCancelAppointment); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		appointment := &f.appointments[i]
		if appointment.ID != request.AppointmentID {
			continue
		}
		appointment.Cancelled = true
		for j := range f.doctors {
			if f.doctors[j].ID == appointment.DocID && f.doctors[j].SlotsBooked != nil {
				f.doctors[j].SlotsBooked[appointment.SlotDate] = remove(f.doctors[j].SlotsBooked[appointment.SlotDate], appointment.SlotTime)
			}
		}
		return "Appointment Cancelled", nil
	}
	return "", exceptions.ErrRemoteDomain("Unauthorized action", constvars.RemoteResourceAppointments)
}

func (f *BookingService) ListAppointments(_ context.Context, token string) ([]models.Appointment, error) {
	if err := f.begin(CallListAppointments); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[token]; !ok {
		return nil, exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, constvars.RemoteResourceAppointments)
	}
	return append([]models.Appointment(nil), f.appointments...), nil
}

func (f *BookingService) UpdateProfile(_ context.Context, token string, request *requests.UpdateProfile) (string, *models.Profile, error) {
	if err := f.begin(CallUpdateProfile); err != nil {
		return "", nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[token]
	if !ok {
		return "", nil, exceptions.ErrRemoteUnauthorized(constvars.ErrClientUnauthorized, constvars.RemoteResourceProfile)
	}
	profile.Name = request.Name
	profile.Phone = request.Phone
	profile.Address = request.Address
	profile.DOB = request.DOB
	profile.Gender = request.Gender
	if request.Image != nil {
		profile.Image = "uploads/" + request.Image.FileName
	}
	return "Profile Updated", nil, nil
}

func remove(labels []string, label string) []string {
	kept := labels[:0:0]
	for _, l := range labels {
		if l != label {
			kept = append(kept, l)
		}
	}
	return kept
}
