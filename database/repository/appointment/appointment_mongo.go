package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"turfadmin/database/repository"
	"turfadmin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "appointments"

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by db.
func NewMongoAppointmentRepo(db *mongo.Database) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: db.Collection(collectionName)}
}

// GetAll retrieves all appointments. No sort is applied, so the result
// follows the collection's natural order.
func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// GetByID retrieves an appointment by its ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateFields patches an appointment with a $set of fields.
func (r *MongoAppointmentRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	return r.UpdateFieldsWhere(ctx, id, nil, fields)
}

// UpdateFieldsWhere patches an appointment only while it still matches
// match. An appointment that is missing or no longer matches is reported as
// ErrNotFound.
func (r *MongoAppointmentRepo) UpdateFieldsWhere(ctx context.Context, id string, match bson.M, fields bson.M) error {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid}
	for k, v := range match {
		filter[k] = v
	}

	ctx, cancel := repository.WithTimeout(ctx, repository.WriteTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an appointment document by its ID.
func (r *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	oid, err := repository.ObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := repository.WithTimeout(ctx, repository.WriteTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete appointment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the number of appointment documents.
func (r *MongoAppointmentRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ReadTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}
