package models

import (
	"time"
)

type User struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username       string `gorm:"uniqueIndex;not null"      json:"username"`
	Email          string `gorm:"uniqueIndex;not null"      json:"email"`
	Firstname      string `gorm:"not null"                  json:"firstname"`
	Lastname       string `gorm:"not null"                  json:"lastname"`
	HashedPassword string `gorm:"not null"                  json:"-"`
	IsActive       bool   `gorm:"not null;default:true"     json:"is_active"`
	Role           string `gorm:"not null;default:user"     json:"role"`
	PhoneNumber    string `gorm:"column:phone_number"       json:"phoneNumber"`
}

type Todo struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null"                 json:"title"`
	Description string `gorm:"not null"                 json:"description"`
	Priority    int    `gorm:"not null"                 json:"priority"`
	Complete    bool   `gorm:"not null;default:false"   json:"complete"`
	OwnerID     int64  `gorm:"index;not null"           json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

type Department struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null"     json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type Doctor struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         *int64  `gorm:"index"                    json:"user_id"`
	FirstName      string  `gorm:"index;not null"           json:"first_name"`
	LastName       string  `gorm:"index;not null"           json:"last_name"`
	Email          string  `gorm:"uniqueIndex;not null"     json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	DepartmentID   *int64  `gorm:"index"                    json:"department_id"`
	IsActive       bool    `gorm:"not null"                 json:"is_active"`

	User       *User       `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Department *Department `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Worker struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *int64  `gorm:"index"                    json:"user_id"`
	FirstName    string  `gorm:"index;not null"           json:"first_name"`
	LastName     string  `gorm:"index;not null"           json:"last_name"`
	Email        string  `gorm:"uniqueIndex;not null"     json:"email"`
	Phone        *string `json:"phone"`
	Role         string  `gorm:"not null"                 json:"role"`
	DepartmentID *int64  `gorm:"index"                    json:"department_id"`
	IsActive     bool    `gorm:"not null"                 json:"is_active"`

	User       *User       `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Department *Department `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Patient struct {
	ID                    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                *int64  `gorm:"index"                    json:"user_id"`
	FirstName             string  `gorm:"index;not null"           json:"first_name"`
	LastName              string  `gorm:"index;not null"           json:"last_name"`
	DOB                   Date    `gorm:"column:dob;not null"      json:"dob"`
	Gender                *string `json:"gender"`
	Phone                 *string `json:"phone"`
	Email                 *string `gorm:"uniqueIndex"              json:"email"`
	Address               *string `json:"address"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`

	User *User `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Appointment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"   json:"id"`
	PatientID   int64     `gorm:"index;not null"             json:"patient_id"`
	DoctorID    int64     `gorm:"index;not null"             json:"doctor_id"`
	ScheduledAt time.Time `gorm:"not null"                   json:"scheduled_at"`
	Reason      *string   `json:"reason"`
	Status      string    `gorm:"not null;default:scheduled" json:"status"`

	Patient *Patient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Doctor  *Doctor  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type Admission struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID         int64      `gorm:"index;not null"           json:"patient_id"`
	AttendingDoctorID int64      `gorm:"index;not null"           json:"attending_doctor_id"`
	AdmittedAt        time.Time  `gorm:"not null"                 json:"admitted_at"`
	DischargedAt      *time.Time `json:"discharged_at"`
	RoomNumber        *string    `json:"room_number"`
	Diagnosis         *string    `json:"diagnosis"`

	Patient         *Patient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	AttendingDoctor *Doctor  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type Medication struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null"     json:"name"`
	Description *string `json:"description"`
}

type Prescription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64     `gorm:"index;not null"           json:"patient_id"`
	DoctorID  int64     `gorm:"index;not null"           json:"doctor_id"`
	IssuedAt  time.Time `gorm:"not null"                 json:"issued_at"`
	Notes     *string   `json:"notes"`

	Patient *Patient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Doctor  *Doctor  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type PrescriptionItem struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID int64  `gorm:"index;not null"           json:"prescription_id"`
	MedicationID   int64  `gorm:"index;not null"           json:"medication_id"`
	Dosage         string `gorm:"not null"                 json:"dosage"`
	Frequency      string `gorm:"not null"                 json:"frequency"`
	DurationDays   int    `gorm:"not null"                 json:"duration_days"`

	Prescription *Prescription `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Medication   *Medication   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type LabTest struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID         int64     `gorm:"index;not null"           json:"patient_id"`
	OrderedByDoctorID int64     `gorm:"index;not null"           json:"ordered_by_doctor_id"`
	TestName          string    `gorm:"index;not null"           json:"test_name"`
	OrderedAt         time.Time `gorm:"not null"                 json:"ordered_at"`
	Result            *string   `json:"result"`
	Status            string    `gorm:"not null;default:ordered" json:"status"`

	Patient         *Patient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	OrderedByDoctor *Doctor  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type Invoice struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"  json:"id"`
	PatientID   int64     `gorm:"index;not null"            json:"patient_id"`
	IssuedAt    time.Time `gorm:"not null"                  json:"issued_at"`
	TotalAmount float64   `gorm:"not null"                  json:"total_amount"`
	Status      string    `gorm:"not null;default:unpaid"   json:"status"`

	Patient *Patient `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

type InvoiceItem struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID   int64   `gorm:"index;not null"           json:"invoice_id"`
	Description string  `gorm:"not null"                 json:"description"`
	Amount      float64 `gorm:"not null"                 json:"amount"`

	Invoice *Invoice `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Relation fields above only carry foreign-key constraints for AutoMigrate.
// They are never loaded or serialized.

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Todo{},
		&Department{},
		&Doctor{},
		&Worker{},
		&Patient{},
		&Appointment{},
		&Admission{},
		&Medication{},
		&Prescription{},
		&PrescriptionItem{},
		&LabTest{},
		&Invoice{},
		&InvoiceItem{},
	}
}
