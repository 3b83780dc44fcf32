package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is the bookable resource, called a turf in the admin panel.
type Doctor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	Image       string             `bson:"image" json:"image"`
	Speciality  string             `bson:"speciality" json:"speciality"`
	Degree      string             `bson:"degree" json:"degree"`
	Experience  string             `bson:"experience" json:"experience"`
	About       string             `bson:"about" json:"about"`
	Available   bool               `bson:"available" json:"available"`
	Fees        float64            `bson:"fees" json:"fees"`
	Address     map[string]any     `bson:"address" json:"address"`
	Date        int64              `bson:"date" json:"date"`
	SlotsBooked map[string]any     `bson:"slots_booked" json:"slots_booked"`
}

// DoctorRegistration is the admin form for provisioning a doctor. Address is
// the serialized JSON text sent by the panel.
type DoctorRegistration struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	Password   string `form:"password"`
	Speciality string `form:"speciality"`
	Degree     string `form:"degree"`
	Experience string `form:"experience"`
	About      string `form:"about"`
	Fees       string `form:"fees"`
	Address    string `form:"address"`
}
