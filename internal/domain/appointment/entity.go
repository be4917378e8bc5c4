package appointment

import "time"

// ===============================
// Reference data
// ===============================

type Office struct {
	ID   string `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`
}

type ServiceType string

const (
	ServiceConsultation ServiceType = "Consultation"
	ServiceTherapy      ServiceType = "Therapy"
	ServiceAssessment   ServiceType = "Assessment"
	ServiceAdvisory     ServiceType = "Advisory"
)

// Catalog is the read-only lookup table of offices and service types.
type Catalog struct {
	Offices      []Office
	ServiceTypes []ServiceType
}

func DefaultCatalog() Catalog {
	return Catalog{
		Offices: []Office{
			{ID: "1", Name: "Guidance Office"},
			{ID: "2", Name: "Student Affairs"},
			{ID: "3", Name: "Registrar"},
		},
		ServiceTypes: []ServiceType{
			ServiceConsultation,
			ServiceTherapy,
			ServiceAssessment,
			ServiceAdvisory,
		},
	}
}

func (c Catalog) Office(id string) (Office, bool) {
	for _, o := range c.Offices {
		if o.ID == id {
			return o, true
		}
	}
	return Office{}, false
}

func (c Catalog) HasServiceType(s ServiceType) bool {
	for _, st := range c.ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// ===============================
// Appointment
// ===============================

const DefaultRequesterName = "Current User"

type Appointment struct {
	ID            string
	Title         string
	RequesterName string
	Office        Office
	ServiceType   ServiceType
	Status        Status
	Date          Date
	Time          string
	Description   string
	GroupMembers  string
	Attachment    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func TitleFor(s ServiceType) string {
	return string(s) + " Session"
}

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to target when the workflow allows it.
func Transition(ap *Appointment, target Status, now time.Time) error {
	if !CanTransition(ap.Status, target) {
		return &TransitionError{
			Kind: TransitionIllegal,
			ID:   ap.ID,
			From: ap.Status,
			To:   target,
		}
	}

	ap.Status = target
	ap.UpdatedAt = now
	return nil
}
