package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Default profile values applied to users created without them.
const (
	DefaultUserImage  = "https://res.cloudinary.com/placeholder/image/upload/profile.png"
	DefaultUserGender = "Not Selected"
	DefaultUserDOB    = "Not Selected"
	DefaultUserPhone  = "000000000"
)

// User is a platform customer.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
	Image    string             `bson:"image" json:"image"`
	Phone    string             `bson:"phone" json:"phone"`
	Address  map[string]any     `bson:"address" json:"address"`
	Gender   string             `bson:"gender" json:"gender"`
	DOB      string             `bson:"dob" json:"dob"`
}
