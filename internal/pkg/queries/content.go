package queries

import "clinic-site/internal/pkg/constvars"

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	FieldCreatedAt       = "_createdAt"
	FieldName            = "name"
	FieldDepartment      = "department"
	FieldSectionCategory = "sectionCategory"

	FilterActiveOffer = "active == true"
)

var (
	doctorFields      = []string{"_id", "name", "image", "license", "joinedAt", "about", "experience", "availability", "department"}
	planFields        = []string{"_id", "name", "department", "price", "period", "description", "features", "popular", "buttonText", "buttonVariant"}
	offerFields       = []string{"_id", "_createdAt", "title", "description", "department", "discount", "active", "image"}
	deviceFields      = []string{"_id", "_createdAt", "name", "category", "image", "description", "specifications"}
	testimonialFields = []string{"_id", "name", "age", "treatment", "rating", "date", "location", "image", "quote", "beforeImage", "afterImage", "featured"}
	sectionFields     = []string{"sectionTitle", "sectionSubtitle", "sectionDesc", "sectionCategory"}
	aboutFields       = []string{"sectionTitle", "sectionSubtitle", "sectionDesc"}
	clinicInfoFields  = []string{"address", "phones[]", "workingDaysAndHours", "email"}
)

var HomeDevices = NewGROQ(constvars.DocumentTypeDevice).
	OrderBy(FieldCreatedAt, OrderDesc).
	Limit(constvars.HomeDevicesLimit).
	Project(deviceFields...).
	String()

var HomeOffers = NewGROQ(constvars.DocumentTypeOffer).
	Where(FilterActiveOffer).
	OrderBy(FieldCreatedAt, OrderDesc).
	Limit(constvars.HomeOffersLimit).
	Project(offerFields...).
	String()

var Offers = NewGROQ(constvars.DocumentTypeOffer).
	Where(FilterActiveOffer).
	OrderBy(FieldCreatedAt, OrderDesc).
	Project(offerFields...).
	String()

var Doctors = NewGROQ(constvars.DocumentTypeDoctor).
	OrderBy(FieldName, OrderAsc).
	Project(doctorFields...).
	String()

var Plans = NewGROQ(constvars.DocumentTypePlan).
	OrderBy(FieldDepartment, OrderAsc).
	Project(planFields...).
	String()

var Devices = NewGROQ(constvars.DocumentTypeDevice).
	OrderBy(FieldName, OrderAsc).
	Project(deviceFields...).
	String()

var Testimonials = NewGROQ(constvars.DocumentTypeTestimonial).
	Project(testimonialFields...).
	String()

var HomepageSections = NewGROQ(constvars.DocumentTypeHomepage).
	Project(sectionFields...).
	String()

var AboutSection = NewGROQ(constvars.DocumentTypeHomepage).
	WhereEquals(FieldSectionCategory, constvars.SectionCategoryAbout).
	First().
	Project(aboutFields...).
	String()

var ClinicInfo = NewGROQ(constvars.DocumentTypeClinicInfo).
	First().
	Project(clinicInfoFields...).
	String()
