package admin

import (
	"context"
	"errors"
	"io"
	"sync"

	"turfadmin/database/repository"
	"turfadmin/models"
	"turfadmin/services/storage"
	"turfadmin/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("server selection timeout")

// fakeAppointments keeps appointments in insertion order.
type fakeAppointments struct {
	mu     sync.Mutex
	items  []models.Appointment
	writes int
	err    error

	// beforeWrite runs ahead of every update, outside the lock.
	beforeWrite func()
}

func (f *fakeAppointments) insert(status models.AppointmentStatus, slotDate string) models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := models.Appointment{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID().Hex(),
		DocID:    primitive.NewObjectID().Hex(),
		SlotDate: slotDate,
		Status:   status,
	}
	f.items = append(f.items, a)
	return a
}

func (f *fakeAppointments) find(id string) int {
	for i, a := range f.items {
		if a.ID.Hex() == id {
			return i
		}
	}
	return -1
}

func (f *fakeAppointments) get(id string) models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[f.find(id)]
}

func (f *fakeAppointments) GetAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Appointment{}, f.items...), nil
}

func (f *fakeAppointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	a := f.items[i]
	return &a, nil
}

func (f *fakeAppointments) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	return f.UpdateFieldsWhere(ctx, id, nil, fields)
}

func (f *fakeAppointments) UpdateFieldsWhere(ctx context.Context, id string, match bson.M, fields bson.M) error {
	if f.beforeWrite != nil {
		f.beforeWrite()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	i := f.find(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	if want, ok := match["status"]; ok && f.items[i].Status != want.(models.AppointmentStatus) {
		return repository.ErrNotFound
	}
	f.writes++
	for k, v := range fields {
		switch k {
		case "status":
			f.items[i].Status = v.(models.AppointmentStatus)
		case "cancelled":
			f.items[i].Cancelled = v.(bool)
		}
	}
	return nil
}

// setStatus changes an appointment behind the service's back.
func (f *fakeAppointments) setStatus(id string, status models.AppointmentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[f.find(id)].Status = status
}

func (f *fakeAppointments) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	i := f.find(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeAppointments) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), f.err
}

// fakeDoctors stores doctors with their raw password for inspection.
type fakeDoctors struct {
	mu         sync.Mutex
	items      []models.Doctor
	lastUpdate bson.M
	createErr  error
}

func (f *fakeDoctors) find(id string) int {
	for i, d := range f.items {
		if d.ID.Hex() == id {
			return i
		}
	}
	return -1
}

func (f *fakeDoctors) safe(d models.Doctor) *models.Doctor {
	d.Password = ""
	return &d
}

func (f *fakeDoctors) GetAllSafe(ctx context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Doctor{}
	for _, d := range f.items {
		out = append(out, *f.safe(d))
	}
	return out, nil
}

func (f *fakeDoctors) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return f.safe(f.items[i]), nil
}

func (f *fakeDoctors) Create(ctx context.Context, doctor *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	doctor.ID = primitive.NewObjectID()
	f.items = append(f.items, *doctor)
	return nil
}

func (f *fakeDoctors) UpdateWithDocument(ctx context.Context, id string, fields bson.M) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	f.lastUpdate = fields
	for k, v := range fields {
		switch k {
		case "name":
			f.items[i].Name = v.(string)
		case "password":
			f.items[i].Password = v.(string)
		case "available":
			f.items[i].Available = v.(bool)
		case "fees":
			f.items[i].Fees = v.(float64)
		}
	}
	return f.safe(f.items[i]), nil
}

func (f *fakeDoctors) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeDoctors) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

type fakeUsers struct {
	mu         sync.Mutex
	items      []models.User
	lastUpdate bson.M
}

func (f *fakeUsers) find(id string) int {
	for i, u := range f.items {
		if u.ID.Hex() == id {
			return i
		}
	}
	return -1
}

func (f *fakeUsers) GetAllSafe(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.User{}
	for _, u := range f.items {
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	u := f.items[i]
	u.Password = ""
	return &u, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, *user)
	return nil
}

func (f *fakeUsers) UpdateWithDocument(ctx context.Context, id string, fields bson.M) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	f.lastUpdate = fields
	for k, v := range fields {
		switch k {
		case "name":
			f.items[i].Name = v.(string)
		case "phone":
			f.items[i].Phone = v.(string)
		case "password":
			f.items[i].Password = v.(string)
		}
	}
	u := f.items[i]
	u.Password = ""
	return &u, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeUsers) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) UploadImage(ctx context.Context, file io.Reader, filename string) (*storage.UploadResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.ReadAll(file); err != nil {
		return nil, err
	}
	return &storage.UploadResult{
		PublicID:  "doctors/" + filename,
		SecureURL: "https://res.cloudinary.com/demo/image/upload/doctors/" + filename,
	}, nil
}

type fakeLedger struct {
	orphans []string
}

func (f *fakeLedger) RecordOrphan(ctx context.Context, publicID, reason string) error {
	f.orphans = append(f.orphans, publicID)
	return nil
}

type fixture struct {
	svc          *DefaultAdminService
	appointments *fakeAppointments
	doctors      *fakeDoctors
	users        *fakeUsers
	uploader     *fakeUploader
	ledger       *fakeLedger
}

func newFixture() *fixture {
	f := &fixture{
		appointments: &fakeAppointments{},
		doctors:      &fakeDoctors{},
		users:        &fakeUsers{},
		uploader:     &fakeUploader{},
		ledger:       &fakeLedger{},
	}
	f.svc = &DefaultAdminService{
		Credentials:  Credentials{Email: "admin@turf.io", Password: "Str0ngPass!"},
		Tokens:       utils.NewTokenSigner("test-secret"),
		Appointments: f.appointments,
		Doctors:      f.doctors,
		Users:        f.users,
		Uploader:     f.uploader,
		Orphans:      f.ledger,
		Logger:       zap.NewNop(),
	}
	return f
}
