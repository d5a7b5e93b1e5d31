package transport

import (
	"time"

	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/validate"
)

// Update requests treat an absent or null field as "leave unchanged".

type DepartmentCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

func (r DepartmentCreate) Validate() error {
	var v validate.Validator
	return v.Length("name", r.Name, 2, 100).Err()
}

func (r DepartmentCreate) Model() *models.Department {
	return &models.Department{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
	}
}

type DepartmentUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

func (r DepartmentUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("name", r.Name, 2, 100).Err()
}

func (r DepartmentUpdate) Apply(m *models.Department) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Location != nil {
		m.Location = r.Location
	}
}

type DoctorCreate struct {
	UserID         *int64  `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	DepartmentID   *int64  `json:"department_id"`
	IsActive       *bool   `json:"is_active"`
}

func (r DoctorCreate) Validate() error {
	var v validate.Validator
	return v.Length("first_name", r.FirstName, 1, 100).
		Length("last_name", r.LastName, 1, 100).
		Length("email", r.Email, 3, 100).
		Err()
}

func (r DoctorCreate) Model() *models.Doctor {
	return &models.Doctor{
		UserID:         r.UserID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Specialization: r.Specialization,
		DepartmentID:   r.DepartmentID,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}
}

type DoctorUpdate struct {
	UserID         *int64  `json:"user_id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	DepartmentID   *int64  `json:"department_id"`
	IsActive       *bool   `json:"is_active"`
}

func (r DoctorUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("first_name", r.FirstName, 1, 100).
		OptionalLength("last_name", r.LastName, 1, 100).
		OptionalLength("email", r.Email, 3, 100).
		Err()
}

func (r DoctorUpdate) Apply(m *models.Doctor) {
	if r.UserID != nil {
		m.UserID = r.UserID
	}
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Specialization != nil {
		m.Specialization = r.Specialization
	}
	if r.DepartmentID != nil {
		m.DepartmentID = r.DepartmentID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type WorkerCreate struct {
	UserID       *int64  `json:"user_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	DepartmentID *int64  `json:"department_id"`
	IsActive     *bool   `json:"is_active"`
}

func (r WorkerCreate) Validate() error {
	var v validate.Validator
	return v.Length("first_name", r.FirstName, 1, 100).
		Length("last_name", r.LastName, 1, 100).
		Length("email", r.Email, 3, 100).
		Length("role", r.Role, 2, 100).
		Err()
}

func (r WorkerCreate) Model() *models.Worker {
	return &models.Worker{
		UserID:       r.UserID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Role:         r.Role,
		DepartmentID: r.DepartmentID,
		IsActive:     r.IsActive == nil || *r.IsActive,
	}
}

type WorkerUpdate struct {
	UserID       *int64  `json:"user_id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	DepartmentID *int64  `json:"department_id"`
	IsActive     *bool   `json:"is_active"`
}

func (r WorkerUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("first_name", r.FirstName, 1, 100).
		OptionalLength("last_name", r.LastName, 1, 100).
		OptionalLength("email", r.Email, 3, 100).
		OptionalLength("role", r.Role, 2, 100).
		Err()
}

func (r WorkerUpdate) Apply(m *models.Worker) {
	if r.UserID != nil {
		m.UserID = r.UserID
	}
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.DepartmentID != nil {
		m.DepartmentID = r.DepartmentID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type PatientCreate struct {
	UserID                *int64       `json:"user_id"`
	FirstName             string       `json:"first_name"`
	LastName              string       `json:"last_name"`
	DOB                   *models.Date `json:"dob"`
	Gender                *string      `json:"gender"`
	Phone                 *string      `json:"phone"`
	Email                 *string      `json:"email"`
	Address               *string      `json:"address"`
	EmergencyContactName  *string      `json:"emergency_contact_name"`
	EmergencyContactPhone *string      `json:"emergency_contact_phone"`
}

func (r PatientCreate) Validate() error {
	var v validate.Validator
	return v.Length("first_name", r.FirstName, 1, 100).
		Length("last_name", r.LastName, 1, 100).
		Required("dob", r.DOB == nil || r.DOB.IsZero()).
		Err()
}

func (r PatientCreate) Model() *models.Patient {
	return &models.Patient{
		UserID:                r.UserID,
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		DOB:                   deref(r.DOB),
		Gender:                r.Gender,
		Phone:                 r.Phone,
		Email:                 r.Email,
		Address:               r.Address,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
	}
}

type PatientUpdate struct {
	UserID                *int64       `json:"user_id"`
	FirstName             *string      `json:"first_name"`
	LastName              *string      `json:"last_name"`
	DOB                   *models.Date `json:"dob"`
	Gender                *string      `json:"gender"`
	Phone                 *string      `json:"phone"`
	Email                 *string      `json:"email"`
	Address               *string      `json:"address"`
	EmergencyContactName  *string      `json:"emergency_contact_name"`
	EmergencyContactPhone *string      `json:"emergency_contact_phone"`
}

func (r PatientUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("first_name", r.FirstName, 1, 100).
		OptionalLength("last_name", r.LastName, 1, 100).
		Err()
}

func (r PatientUpdate) Apply(m *models.Patient) {
	if r.UserID != nil {
		m.UserID = r.UserID
	}
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.DOB != nil && !r.DOB.IsZero() {
		m.DOB = *r.DOB
	}
	if r.Gender != nil {
		m.Gender = r.Gender
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.EmergencyContactName != nil {
		m.EmergencyContactName = r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		m.EmergencyContactPhone = r.EmergencyContactPhone
	}
}

type AppointmentCreate struct {
	PatientID   *int64     `json:"patient_id"`
	DoctorID    *int64     `json:"doctor_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Reason      *string    `json:"reason"`
	Status      *string    `json:"status"`
}

func (r AppointmentCreate) Validate() error {
	var v validate.Validator
	return v.Required("patient_id", r.PatientID == nil).
		Required("doctor_id", r.DoctorID == nil).
		Required("scheduled_at", r.ScheduledAt == nil).
		OptionalLength("status", r.Status, 0, 50).
		Err()
}

func (r AppointmentCreate) Model() *models.Appointment {
	return &models.Appointment{
		PatientID:   deref(r.PatientID),
		DoctorID:    deref(r.DoctorID),
		ScheduledAt: deref(r.ScheduledAt),
		Reason:      r.Reason,
		Status:      orDefault(r.Status, "scheduled"),
	}
}

type AppointmentUpdate struct {
	PatientID   *int64     `json:"patient_id"`
	DoctorID    *int64     `json:"doctor_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Reason      *string    `json:"reason"`
	Status      *string    `json:"status"`
}

func (r AppointmentUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("status", r.Status, 0, 50).Err()
}

func (r AppointmentUpdate) Apply(m *models.Appointment) {
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.DoctorID != nil {
		m.DoctorID = *r.DoctorID
	}
	if r.ScheduledAt != nil {
		m.ScheduledAt = *r.ScheduledAt
	}
	if r.Reason != nil {
		m.Reason = r.Reason
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

type AdmissionCreate struct {
	PatientID         *int64     `json:"patient_id"`
	AttendingDoctorID *int64     `json:"attending_doctor_id"`
	AdmittedAt        *time.Time `json:"admitted_at"`
	DischargedAt      *time.Time `json:"discharged_at"`
	RoomNumber        *string    `json:"room_number"`
	Diagnosis         *string    `json:"diagnosis"`
}

func (r AdmissionCreate) Validate() error {
	var v validate.Validator
	return v.Required("patient_id", r.PatientID == nil).
		Required("attending_doctor_id", r.AttendingDoctorID == nil).
		Required("admitted_at", r.AdmittedAt == nil).
		Custom("discharged_at", r.AdmittedAt != nil && r.DischargedAt != nil && r.DischargedAt.Before(*r.AdmittedAt),
			"must not be before admitted_at").
		Err()
}

func (r AdmissionCreate) Model() *models.Admission {
	return &models.Admission{
		PatientID:         deref(r.PatientID),
		AttendingDoctorID: deref(r.AttendingDoctorID),
		AdmittedAt:        deref(r.AdmittedAt),
		DischargedAt:      r.DischargedAt,
		RoomNumber:        r.RoomNumber,
		Diagnosis:         r.Diagnosis,
	}
}

type AdmissionUpdate struct {
	PatientID         *int64     `json:"patient_id"`
	AttendingDoctorID *int64     `json:"attending_doctor_id"`
	AdmittedAt        *time.Time `json:"admitted_at"`
	DischargedAt      *time.Time `json:"discharged_at"`
	RoomNumber        *string    `json:"room_number"`
	Diagnosis         *string    `json:"diagnosis"`
}

func (r AdmissionUpdate) Validate() error {
	return nil
}

func (r AdmissionUpdate) Apply(m *models.Admission) {
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.AttendingDoctorID != nil {
		m.AttendingDoctorID = *r.AttendingDoctorID
	}
	if r.AdmittedAt != nil {
		m.AdmittedAt = *r.AdmittedAt
	}
	if r.DischargedAt != nil {
		m.DischargedAt = r.DischargedAt
	}
	if r.RoomNumber != nil {
		m.RoomNumber = r.RoomNumber
	}
	if r.Diagnosis != nil {
		m.Diagnosis = r.Diagnosis
	}
}

type MedicationCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r MedicationCreate) Validate() error {
	var v validate.Validator
	return v.Length("name", r.Name, 1, 120).Err()
}

func (r MedicationCreate) Model() *models.Medication {
	return &models.Medication{
		Name:        r.Name,
		Description: r.Description,
	}
}

type MedicationUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r MedicationUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("name", r.Name, 1, 120).Err()
}

func (r MedicationUpdate) Apply(m *models.Medication) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Description != nil {
		m.Description = r.Description
	}
}

type PrescriptionCreate struct {
	PatientID *int64     `json:"patient_id"`
	DoctorID  *int64     `json:"doctor_id"`
	IssuedAt  *time.Time `json:"issued_at"`
	Notes     *string    `json:"notes"`
}

func (r PrescriptionCreate) Validate() error {
	var v validate.Validator
	return v.Required("patient_id", r.PatientID == nil).
		Required("doctor_id", r.DoctorID == nil).
		Required("issued_at", r.IssuedAt == nil).
		Err()
}

func (r PrescriptionCreate) Model() *models.Prescription {
	return &models.Prescription{
		PatientID: deref(r.PatientID),
		DoctorID:  deref(r.DoctorID),
		IssuedAt:  deref(r.IssuedAt),
		Notes:     r.Notes,
	}
}

type PrescriptionUpdate struct {
	PatientID *int64     `json:"patient_id"`
	DoctorID  *int64     `json:"doctor_id"`
	IssuedAt  *time.Time `json:"issued_at"`
	Notes     *string    `json:"notes"`
}

func (r PrescriptionUpdate) Validate() error {
	return nil
}

func (r PrescriptionUpdate) Apply(m *models.Prescription) {
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.DoctorID != nil {
		m.DoctorID = *r.DoctorID
	}
	if r.IssuedAt != nil {
		m.IssuedAt = *r.IssuedAt
	}
	if r.Notes != nil {
		m.Notes = r.Notes
	}
}

type PrescriptionItemCreate struct {
	PrescriptionID *int64  `json:"prescription_id"`
	MedicationID   *int64  `json:"medication_id"`
	Dosage         *string `json:"dosage"`
	Frequency      *string `json:"frequency"`
	DurationDays   *int    `json:"duration_days"`
}

func (r PrescriptionItemCreate) Validate() error {
	var v validate.Validator
	v.Required("prescription_id", r.PrescriptionID == nil).
		Required("medication_id", r.MedicationID == nil).
		Required("dosage", r.Dosage == nil).
		Required("frequency", r.Frequency == nil).
		Required("duration_days", r.DurationDays == nil)
	if r.DurationDays != nil {
		v.Positive("duration_days", *r.DurationDays)
	}
	return v.Err()
}

func (r PrescriptionItemCreate) Model() *models.PrescriptionItem {
	return &models.PrescriptionItem{
		PrescriptionID: deref(r.PrescriptionID),
		MedicationID:   deref(r.MedicationID),
		Dosage:         deref(r.Dosage),
		Frequency:      deref(r.Frequency),
		DurationDays:   deref(r.DurationDays),
	}
}

type PrescriptionItemUpdate struct {
	PrescriptionID *int64  `json:"prescription_id"`
	MedicationID   *int64  `json:"medication_id"`
	Dosage         *string `json:"dosage"`
	Frequency      *string `json:"frequency"`
	DurationDays   *int    `json:"duration_days"`
}

func (r PrescriptionItemUpdate) Validate() error {
	var v validate.Validator
	if r.DurationDays != nil {
		v.Positive("duration_days", *r.DurationDays)
	}
	return v.Err()
}

func (r PrescriptionItemUpdate) Apply(m *models.PrescriptionItem) {
	if r.PrescriptionID != nil {
		m.PrescriptionID = *r.PrescriptionID
	}
	if r.MedicationID != nil {
		m.MedicationID = *r.MedicationID
	}
	if r.Dosage != nil {
		m.Dosage = *r.Dosage
	}
	if r.Frequency != nil {
		m.Frequency = *r.Frequency
	}
	if r.DurationDays != nil {
		m.DurationDays = *r.DurationDays
	}
}

type LabTestCreate struct {
	PatientID         *int64     `json:"patient_id"`
	OrderedByDoctorID *int64     `json:"ordered_by_doctor_id"`
	TestName          string     `json:"test_name"`
	OrderedAt         *time.Time `json:"ordered_at"`
	Result            *string    `json:"result"`
	Status            *string    `json:"status"`
}

func (r LabTestCreate) Validate() error {
	var v validate.Validator
	return v.Required("patient_id", r.PatientID == nil).
		Required("ordered_by_doctor_id", r.OrderedByDoctorID == nil).
		Length("test_name", r.TestName, 1, 200).
		Required("ordered_at", r.OrderedAt == nil).
		OptionalLength("status", r.Status, 0, 50).
		Err()
}

func (r LabTestCreate) Model() *models.LabTest {
	return &models.LabTest{
		PatientID:         deref(r.PatientID),
		OrderedByDoctorID: deref(r.OrderedByDoctorID),
		TestName:          r.TestName,
		OrderedAt:         deref(r.OrderedAt),
		Result:            r.Result,
		Status:            orDefault(r.Status, "ordered"),
	}
}

type LabTestUpdate struct {
	PatientID         *int64     `json:"patient_id"`
	OrderedByDoctorID *int64     `json:"ordered_by_doctor_id"`
	TestName          *string    `json:"test_name"`
	OrderedAt         *time.Time `json:"ordered_at"`
	Result            *string    `json:"result"`
	Status            *string    `json:"status"`
}

func (r LabTestUpdate) Validate() error {
	var v validate.Validator
	return v.OptionalLength("test_name", r.TestName, 1, 200).
		OptionalLength("status", r.Status, 0, 50).
		Err()
}

func (r LabTestUpdate) Apply(m *models.LabTest) {
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.OrderedByDoctorID != nil {
		m.OrderedByDoctorID = *r.OrderedByDoctorID
	}
	if r.TestName != nil {
		m.TestName = *r.TestName
	}
	if r.OrderedAt != nil {
		m.OrderedAt = *r.OrderedAt
	}
	if r.Result != nil {
		m.Result = r.Result
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

type InvoiceCreate struct {
	PatientID   *int64     `json:"patient_id"`
	IssuedAt    *time.Time `json:"issued_at"`
	TotalAmount *float64   `json:"total_amount"`
	Status      *string    `json:"status"`
}

func (r InvoiceCreate) Validate() error {
	var v validate.Validator
	v.Required("patient_id", r.PatientID == nil).
		Required("issued_at", r.IssuedAt == nil).
		Required("total_amount", r.TotalAmount == nil).
		OptionalLength("status", r.Status, 0, 50)
	if r.TotalAmount != nil {
		v.NonNegative("total_amount", *r.TotalAmount)
	}
	return v.Err()
}

func (r InvoiceCreate) Model() *models.Invoice {
	return &models.Invoice{
		PatientID:   deref(r.PatientID),
		IssuedAt:    deref(r.IssuedAt),
		TotalAmount: deref(r.TotalAmount),
		Status:      orDefault(r.Status, "unpaid"),
	}
}

type InvoiceUpdate struct {
	PatientID   *int64     `json:"patient_id"`
	IssuedAt    *time.Time `json:"issued_at"`
	TotalAmount *float64   `json:"total_amount"`
	Status      *string    `json:"status"`
}

func (r InvoiceUpdate) Validate() error {
	var v validate.Validator
	v.OptionalLength("status", r.Status, 0, 50)
	if r.TotalAmount != nil {
		v.NonNegative("total_amount", *r.TotalAmount)
	}
	return v.Err()
}

func (r InvoiceUpdate) Apply(m *models.Invoice) {
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.IssuedAt != nil {
		m.IssuedAt = *r.IssuedAt
	}
	if r.TotalAmount != nil {
		m.TotalAmount = *r.TotalAmount
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

type InvoiceItemCreate struct {
	InvoiceID   *int64   `json:"invoice_id"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
}

func (r InvoiceItemCreate) Validate() error {
	var v validate.Validator
	v.Required("invoice_id", r.InvoiceID == nil).
		Length("description", r.Description, 1, 200).
		Required("amount", r.Amount == nil)
	if r.Amount != nil {
		v.NonNegative("amount", *r.Amount)
	}
	return v.Err()
}

func (r InvoiceItemCreate) Model() *models.InvoiceItem {
	return &models.InvoiceItem{
		InvoiceID:   deref(r.InvoiceID),
		Description: r.Description,
		Amount:      deref(r.Amount),
	}
}

type InvoiceItemUpdate struct {
	InvoiceID   *int64   `json:"invoice_id"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

func (r InvoiceItemUpdate) Validate() error {
	var v validate.Validator
	v.OptionalLength("description", r.Description, 1, 200)
	if r.Amount != nil {
		v.NonNegative("amount", *r.Amount)
	}
	return v.Err()
}

func (r InvoiceItemUpdate) Apply(m *models.InvoiceItem) {
	if r.InvoiceID != nil {
		m.InvoiceID = *r.InvoiceID
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Amount != nil {
		m.Amount = *r.Amount
	}
}
