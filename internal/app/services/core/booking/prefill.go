package booking

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"net/url"
	"strings"
)

const (
	ParamDoctor     = "doctor"
	ParamDepartment = "department"
	ParamOffer      = "offer"
)

// Prefilled is the booking form state derived from a deep link.
type Prefilled struct {
	Form requests.BookingForm
	// Scroll asks the page to bring the booking section into view.
	Scroll bool
}

// Prefill reads ?doctor=&department=&offer= into the booking form. An explicit
// department always wins over the one inferred from the doctor list.
func Prefill(values url.Values, doctors []cms_dto.Doctor) Prefilled {
	var result Prefilled

	paramDoctor := strings.TrimSpace(values.Get(ParamDoctor))
	paramDepartment := strings.TrimSpace(values.Get(ParamDepartment))
	paramOffer := strings.TrimSpace(values.Get(ParamOffer))

	if paramDepartment != "" {
		result.Form.Department = paramDepartment
	}

	if paramDoctor != "" {
		if paramDepartment == "" {
			for _, doctor := range doctors {
				if doctor.Name == paramDoctor && doctor.Department != "" {
					result.Form.Department = doctor.Department
					break
				}
			}
		}
		result.Form.Doctor = DoctorValue(paramDoctor)
	}

	if paramOffer != "" {
		result.Form.Offer = paramOffer
	}

	result.Scroll = paramDoctor != "" || paramDepartment != "" || paramOffer != ""
	return result
}

func DoctorValue(name string) string {
	return constvars.BookingDoctorPrefix + name
}

// DoctorOption is one entry of the doctor select.
type DoctorOption struct {
	Value    string
	Label    string
	Selected bool
}

// DoctorOptions lists the doctors of department, or every doctor when no department is chosen.
func DoctorOptions(doctors []cms_dto.Doctor, department, selected string) []DoctorOption {
	options := make([]DoctorOption, 0, len(doctors))
	for _, doctor := range doctors {
		if department != "" && doctor.DepartmentOrDefault() != department {
			continue
		}
		value := DoctorValue(doctor.Name)
		options = append(options, DoctorOption{
			Value:    value,
			Label:    doctor.Name,
			Selected: value == selected,
		})
	}
	return options
}
