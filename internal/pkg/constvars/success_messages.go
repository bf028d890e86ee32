package constvars

// Success messages for the JSON content API
const (
	GetDoctorsSuccessfully          = "successfully fetched doctors"
	GetPlansSuccessfully            = "successfully fetched plans"
	GetOffersSuccessfully           = "successfully fetched offers"
	GetDevicesSuccessfully          = "successfully fetched devices"
	GetTestimonialsSuccessfully     = "successfully fetched testimonials"
	GetHomepageSectionsSuccessfully = "successfully fetched homepage sections"
	GetClinicInfoSuccessfully       = "successfully fetched clinic info"
	GetDeploymentsSuccessfully      = "successfully fetched deployments"
	FormSubmittedSuccessfully       = "form submitted"
)

const (
	QueryParamTab        = "tab"
	QueryParamDepartment = "department"
	QueryParamCategory   = "category"
	QueryParamFeatured   = "featured"
	QueryParamBooked     = "booked"
	QueryParamSent       = "sent"
)
