package gateway

const (
	EndpointBookDoctor          = "/v1/book-doctor"
	EndpointPrescriptionSummary = "/v1/prescription-summary"
	EndpointAppointments        = "/v1/appointments"
	EndpointHealthRecords       = "/v1/health-records"
)

// AppointmentTypeConsultation is the fixed kind sent with every booking request.
const AppointmentTypeConsultation = "consultation"

// BookingRequest carries the doctor id as received, so numeric ids stay numbers.
type BookingRequest struct {
	UserID              string `json:"userId"`
	DoctorID            any    `json:"doctorId"`
	AppointmentDatetime string `json:"appointmentDatetime"`
	AppointmentType     string `json:"appointmentType"`
	ChiefComplaint      string `json:"chiefComplaint"`
}

// PrescriptionSummaryRequest carries the prescription id as received; nil encodes as null.
type PrescriptionSummaryRequest struct {
	UserID         string `json:"userId"`
	PrescriptionID any    `json:"prescriptionId"`
}

type AppointmentsRequest struct {
	UserID string `json:"userId"`
}

type HealthRecordsRequest struct {
	UserID     string `json:"userId"`
	RecordType string `json:"recordType,omitempty"`
}

// ChatRequest is sent to a remote chatbot backend.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}
