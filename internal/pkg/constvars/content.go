package constvars

// Content store document types
const (
	DocumentTypeDoctor      = "doctor"
	DocumentTypePlan        = "plan"
	DocumentTypeOffer       = "offer"
	DocumentTypeDevice      = "device"
	DocumentTypeTestimonial = "testimonial"
	DocumentTypeHomepage    = "homepage"
	DocumentTypeClinicInfo  = "clinicInfo"
)

const (
	DepartmentDental      = "dental"
	DepartmentDermatology = "dermatology"
	DepartmentLaser       = "laser"

	DeviceCategoryDental     = "dental"
	DeviceCategoryDermaLaser = "derma-laser"

	TabAll = "all"
)

var Departments = []string{DepartmentDental, DepartmentDermatology, DepartmentLaser}

var DepartmentLabels = map[string]string{
	DepartmentDental:      "عيادة الأسنان",
	DepartmentDermatology: "عيادة الجلدية",
	DepartmentLaser:       "عيادة الليزر",
}

// Homepage section categories as stored in the content store.
const (
	SectionCategoryDoctors  = "الأطباء"
	SectionCategoryReviews  = "التقيمات"
	SectionCategoryBooking  = "الحجز"
	SectionCategoryGallery  = "معرض الصور"
	SectionCategoryServices = "خدمات"
	SectionCategoryAbout    = "نبذة عنا"
	SectionCategoryContact  = "تواصل معنا"
)

// Placeholder copy for empty or failed content blocks.
const (
	EmptyDoctorsMessage      = "لا يوجد أطباء في هذا القسم حالياً"
	EmptyServicesMessage     = "لا توجد خدمات في هذا القسم حالياً"
	EmptyOffersMessage       = "لا توجد عروض حالياً"
	EmptyDevicesMessage      = "لا توجد أجهزة في هذا القسم حالياً"
	EmptyTestimonialsMessage = "لا توجد تجارب حالياً"
	ContentLoadFailedMessage = "تعذر تحميل المحتوى"
)

const (
	SanityAPIHostFormat    = "https://%s.api.sanity.io"
	SanityAPICDNHostFormat = "https://%s.apicdn.sanity.io"
	SanityQueryPathFormat  = "/v%s/data/query/%s"
	SanityImageCDNFormat   = "https://cdn.sanity.io/images/%s/%s/%s-%s.%s"
	SanityImageRefPrefix   = "image-"
)

const (
	HomeDevicesLimit      = 6
	HomeOffersLimit       = 10
	FeaturedStoriesLimit  = 6
	DeviceSpecsPreviewMax = 3
)

const (
	ContentCacheKeyPrefix = "content:query:"
	ContentChangedEvent   = "content.changed"
)
