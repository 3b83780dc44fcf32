package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPendingDoctor AppointmentStatus = "pending_doctor"
	StatusPendingAdmin  AppointmentStatus = "pending_admin"
	StatusConfirmed     AppointmentStatus = "confirmed"
	StatusCancelled     AppointmentStatus = "cancelled"
	StatusCompleted     AppointmentStatus = "completed"
)

// AppointmentStatuses lists every valid status.
var AppointmentStatuses = []AppointmentStatus{
	StatusPendingDoctor,
	StatusPendingAdmin,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// Valid reports whether s is one of the enumerated statuses.
func (s AppointmentStatus) Valid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// adminConfirmTransitions is the transition table for admin confirmation.
// Arbitrary status changes do not consult it.
var adminConfirmTransitions = map[AppointmentStatus]AppointmentStatus{
	StatusPendingAdmin: StatusConfirmed,
}

// AdminConfirmTarget returns the status an admin confirmation moves s to, and
// false when confirmation is not allowed from s.
func AdminConfirmTarget(s AppointmentStatus) (AppointmentStatus, bool) {
	next, ok := adminConfirmTransitions[s]
	return next, ok
}

// Appointment is a booking between a user and a doctor. Appointments are
// created by the booking flow; admins only mutate or delete them.
type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"userId" json:"userId"`
	DocID       string             `bson:"docId" json:"docId"`
	SlotDate    string             `bson:"slotDate" json:"slotDate"`
	SlotTime    string             `bson:"slotTime" json:"slotTime"`
	UserData    map[string]any     `bson:"userData,omitempty" json:"userData,omitempty"`
	DocData     map[string]any     `bson:"docData,omitempty" json:"docData,omitempty"`
	Amount      float64            `bson:"amount" json:"amount"`
	Date        int64              `bson:"date" json:"date"`
	Cancelled   bool               `bson:"cancelled" json:"cancelled"`
	Payment     bool               `bson:"payment" json:"payment"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	Status      AppointmentStatus  `bson:"status" json:"status"`
}
