package models

func (m Department) GetID() int64       { return m.ID }
func (m Doctor) GetID() int64           { return m.ID }
func (m Worker) GetID() int64           { return m.ID }
func (m Patient) GetID() int64          { return m.ID }
func (m Appointment) GetID() int64      { return m.ID }
func (m Admission) GetID() int64        { return m.ID }
func (m Medication) GetID() int64       { return m.ID }
func (m Prescription) GetID() int64     { return m.ID }
func (m PrescriptionItem) GetID() int64 { return m.ID }
func (m LabTest) GetID() int64          { return m.ID }
func (m Invoice) GetID() int64          { return m.ID }
func (m InvoiceItem) GetID() int64      { return m.ID }
