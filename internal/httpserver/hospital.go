package httpserver

import (
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/models"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/internal/transport"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
)

type HospitalHTTP struct {
	Departments       *ResourceHTTP[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate]
	Doctors           *ResourceHTTP[models.Doctor, transport.DoctorCreate, transport.DoctorUpdate]
	Workers           *ResourceHTTP[models.Worker, transport.WorkerCreate, transport.WorkerUpdate]
	Patients          *ResourceHTTP[models.Patient, transport.PatientCreate, transport.PatientUpdate]
	Appointments      *ResourceHTTP[models.Appointment, transport.AppointmentCreate, transport.AppointmentUpdate]
	Admissions        *ResourceHTTP[models.Admission, transport.AdmissionCreate, transport.AdmissionUpdate]
	Medications       *ResourceHTTP[models.Medication, transport.MedicationCreate, transport.MedicationUpdate]
	Prescriptions     *ResourceHTTP[models.Prescription, transport.PrescriptionCreate, transport.PrescriptionUpdate]
	PrescriptionItems *ResourceHTTP[models.PrescriptionItem, transport.PrescriptionItemCreate, transport.PrescriptionItemUpdate]
	LabTests          *ResourceHTTP[models.LabTest, transport.LabTestCreate, transport.LabTestUpdate]
	Invoices          *ResourceHTTP[models.Invoice, transport.InvoiceCreate, transport.InvoiceUpdate]
	InvoiceItems      *ResourceHTTP[models.InvoiceItem, transport.InvoiceItemCreate, transport.InvoiceItemUpdate]
}

func NewHospitalHTTP(db *gorm.DB, events mykafka.Publisher) *HospitalHTTP {
	return &HospitalHTTP{
		Departments:       newResource[models.Department, transport.DepartmentCreate, transport.DepartmentUpdate](db, events, "departments", "Department not found."),
		Doctors:           newResource[models.Doctor, transport.DoctorCreate, transport.DoctorUpdate](db, events, "doctors", "Doctor not found."),
		Workers:           newResource[models.Worker, transport.WorkerCreate, transport.WorkerUpdate](db, events, "workers", "Worker not found."),
		Patients:          newResource[models.Patient, transport.PatientCreate, transport.PatientUpdate](db, events, "patients", "Patient not found."),
		Appointments:      newResource[models.Appointment, transport.AppointmentCreate, transport.AppointmentUpdate](db, events, "appointments", "Appointment not found."),
		Admissions:        newResource[models.Admission, transport.AdmissionCreate, transport.AdmissionUpdate](db, events, "admissions", "Admission not found."),
		Medications:       newResource[models.Medication, transport.MedicationCreate, transport.MedicationUpdate](db, events, "medications", "Medication not found."),
		Prescriptions:     newResource[models.Prescription, transport.PrescriptionCreate, transport.PrescriptionUpdate](db, events, "prescriptions", "Prescription not found."),
		PrescriptionItems: newResource[models.PrescriptionItem, transport.PrescriptionItemCreate, transport.PrescriptionItemUpdate](db, events, "prescription-items", "Prescription item not found."),
		LabTests:          newResource[models.LabTest, transport.LabTestCreate, transport.LabTestUpdate](db, events, "lab-tests", "Lab test not found."),
		Invoices:          newResource[models.Invoice, transport.InvoiceCreate, transport.InvoiceUpdate](db, events, "invoices", "Invoice not found."),
		InvoiceItems:      newResource[models.InvoiceItem, transport.InvoiceItemCreate, transport.InvoiceItemUpdate](db, events, "invoice-items", "Invoice item not found."),
	}
}

func newResource[M any, C transport.CreateRequest[M], U transport.UpdateRequest[M]](db *gorm.DB, events mykafka.Publisher, path, notFound string) *ResourceHTTP[M, C, U] {
	name := strings.ReplaceAll(path, "-", "_")
	svc := service.NewResourceService[M, C, U](db)
	svc.Resource = name
	svc.Events = events
	return &ResourceHTTP[M, C, U]{
		Path:     path,
		Name:     name,
		NotFound: notFound,
		Svc:      svc,
	}
}

// Mount registers every resource on g. g must already resolve the principal.
func (h *HospitalHTTP) Mount(g *echo.Group) {
	mount(g, h.Departments, auth.Staff, auth.AdminSecretary)
	mount(g, h.Doctors, auth.Staff, auth.AdminSecretary)
	mount(g, h.Workers, auth.AdminSecretary, auth.AdminSecretary)
	mount(g, h.Patients, auth.Staff, auth.AdminSecretary)
	mount(g, h.Appointments, auth.Staff, auth.Staff)
	mount(g, h.Admissions, auth.Staff, auth.AdminDoctor)
	mount(g, h.Medications, auth.Staff, auth.AdminDoctor)
	mount(g, h.Prescriptions, auth.AdminDoctor, auth.AdminDoctor)
	mount(g, h.PrescriptionItems, auth.AdminDoctor, auth.AdminDoctor)
	mount(g, h.LabTests, auth.AdminDoctor, auth.AdminDoctor)
	mount(g, h.Invoices, auth.AdminSecretary, auth.AdminSecretary)
	mount(g, h.InvoiceItems, auth.AdminSecretary, auth.AdminSecretary)
}

func mount[M any, C transport.CreateRequest[M], U transport.UpdateRequest[M]](g *echo.Group, h *ResourceHTTP[M, C, U], reads, writes auth.RoleSet) {
	r := g.Group("/" + h.Path)
	read := mw.RequireRoles(reads)
	write := mw.RequireRoles(writes)

	r.GET("", h.List, read)
	r.GET("/:id", h.Get, read)
	r.POST("", h.Create, write)
	r.PUT("/:id", h.Update, write)
	r.DELETE("/:id", h.Delete, write)
}
