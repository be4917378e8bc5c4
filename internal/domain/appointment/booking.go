package appointment

import (
	"path"
	"strings"
	"time"
)

// BookingRequest is the raw form payload submitted by the client.
type BookingRequest struct {
	OfficeID           string `json:"office_id"`
	ServiceType        string `json:"service_type"`
	Date               string `json:"date"` // YYYY-MM-DD
	Time               string `json:"time"` // HH:MM
	ConcernDescription string `json:"concern_description"`
	GroupMembers       string `json:"group_members,omitempty"`
	Attachment         string `json:"attachment,omitempty"`
	RequesterName      string `json:"requester_name,omitempty"`
}

// ValidatedBooking can only be produced by Validator.Validate.
type ValidatedBooking struct {
	RequesterName string
	Office        Office
	ServiceType   ServiceType
	Date          Date
	Time          string
	Description   string
	GroupMembers  string
	Attachment    string
}

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsAllowedImage reports whether ref names a png, jpg or jpeg object.
func IsAllowedImage(ref string) bool {
	return allowedImageExt[strings.ToLower(path.Ext(ref))]
}

type Validator struct {
	catalog Catalog
}

func NewValidator(catalog Catalog) *Validator {
	return &Validator{catalog: catalog}
}

func (v *Validator) Catalog() Catalog {
	return v.catalog
}

// Validate is all-or-nothing: either every field checks out or the returned
// *ValidationError names each offending field.
func (v *Validator) Validate(req BookingRequest) (ValidatedBooking, error) {
	verr := &ValidationError{}

	officeID := strings.TrimSpace(req.OfficeID)
	service := strings.TrimSpace(req.ServiceType)
	dateStr := strings.TrimSpace(req.Date)
	timeStr := strings.TrimSpace(req.Time)
	desc := strings.TrimSpace(req.ConcernDescription)
	attachment := strings.TrimSpace(req.Attachment)

	var out ValidatedBooking

	if officeID == "" {
		verr.add("office_id", ReasonRequired)
	} else if office, ok := v.catalog.Office(officeID); !ok {
		verr.add("office_id", ReasonUnknownOffice)
	} else {
		out.Office = office
	}

	if service == "" {
		verr.add("service_type", ReasonRequired)
	} else if !v.catalog.HasServiceType(ServiceType(service)) {
		verr.add("service_type", ReasonUnknownService)
	} else {
		out.ServiceType = ServiceType(service)
	}

	if dateStr == "" {
		verr.add("date", ReasonRequired)
	} else if d, err := ParseDate(dateStr); err != nil {
		verr.add("date", ReasonInvalidDate)
	} else {
		out.Date = d
	}

	if timeStr == "" {
		verr.add("time", ReasonRequired)
	} else if t, err := time.Parse(TimeLayout, timeStr); err != nil {
		verr.add("time", ReasonInvalidTime)
	} else {
		out.Time = t.Format(TimeLayout)
	}

	if desc == "" {
		verr.add("concern_description", ReasonRequired)
	} else {
		out.Description = desc
	}

	if attachment != "" && !IsAllowedImage(attachment) {
		verr.add("attachment", ReasonInvalidImage)
	}

	if len(verr.Fields) > 0 {
		return ValidatedBooking{}, verr
	}

	out.GroupMembers = strings.TrimSpace(req.GroupMembers)
	out.Attachment = attachment
	out.RequesterName = strings.TrimSpace(req.RequesterName)
	if out.RequesterName == "" {
		out.RequesterName = DefaultRequesterName
	}

	return out, nil
}
