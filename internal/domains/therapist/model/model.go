package model

import "spa/shared/model"

const (
	TableName  = "therapists"
	EntityName = "therapist"

	FieldID         = "id"
	FieldName       = "name"
	FieldLocationID = "location_id"
	FieldActive     = "active"
)

const (
	QualificationTableName  = "therapist_qualifications"
	QualificationEntityName = "therapist_qualification"

	FieldQualificationTherapistID = "therapist_id"
	FieldQualificationServiceID   = "service_id"
)

type Therapist struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	LocationID *string `db:"location_id"`
	Active     bool    `db:"active"`
	model.Metadata
}

// Qualification records that a therapist may perform a service.
type Qualification struct {
	TherapistID string `db:"therapist_id"`
	ServiceID   string `db:"service_id"`
}
