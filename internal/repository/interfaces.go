package repository

import (
	"context"

	"github.com/vidaplus/sghss-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserRepository handles the root identity rows
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		EmailExists(ctx context.Context, email string) (bool, error)
	}

	// PatientRepository handles patient profiles. CreateWithUser writes the
	// backing user and the profile row in one transaction.
	PatientRepository interface {
		CreateWithUser(ctx context.Context, user *model.User, patient *model.Patient) error
		Get(ctx context.Context, id int64) (*model.Patient, error)
		GetView(ctx context.Context, id int64) (*model.PatientView, error)
		ListViews(ctx context.Context) ([]*model.PatientView, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id int64) error
		CPFExists(ctx context.Context, cpf string) (bool, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	ProfessionalRepository interface {
		CreateWithUser(ctx context.Context, user *model.User, professional *model.Professional) error
		Get(ctx context.Context, id int64) (*model.Professional, error)
		GetView(ctx context.Context, id int64) (*model.ProfessionalView, error)
		ListViews(ctx context.Context) ([]*model.ProfessionalView, error)
		Update(ctx context.Context, professional *model.Professional) error
		Delete(ctx context.Context, id int64) error
		CPFExists(ctx context.Context, cpf string) (bool, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	UnitRepository interface {
		Create(ctx context.Context, unit *model.Unit) error
		Get(ctx context.Context, id int64) (*model.Unit, error)
		List(ctx context.Context) ([]*model.Unit, error)
		Update(ctx context.Context, unit *model.Unit) error
		Delete(ctx context.Context, id int64) error
		Exists(ctx context.Context, id int64) (bool, error)
		HasProfessionals(ctx context.Context, id int64) (bool, error)
	}

	ConsultationRepository interface {
		Create(ctx context.Context, consultation *model.Consultation) error
		Get(ctx context.Context, id int64) (*model.Consultation, error)
		List(ctx context.Context) ([]*model.Consultation, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.Consultation, error)
		ListByProfessional(ctx context.Context, professionalID int64) ([]*model.Consultation, error)
		Update(ctx context.Context, consultation *model.Consultation) error
		UpdateStatus(ctx context.Context, id int64, status string) error
		Exists(ctx context.Context, id int64) (bool, error)
	}

	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		Get(ctx context.Context, id int64) (*model.MedicalRecord, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error)
	}

	// AuditRepository appends system log rows. There is no update or delete:
	// the log is write-once.
	AuditRepository interface {
		Create(ctx context.Context, log *model.SystemLog) error
		List(ctx context.Context, limit int) ([]*model.SystemLog, error)
	}
)
