package constvars

const (
	EmailSubjectNewMessageFormat = "New message from %s"
	EmailPlainTextFormat         = "From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

const (
	BookingMessageTitle = "Booking Details:"

	MessageFieldName       = "Name"
	MessageFieldPhone      = "Phone"
	MessageFieldEmail      = "Email"
	MessageFieldDate       = "Date"
	MessageFieldDepartment = "Department"
	MessageFieldDoctor     = "Doctor"
	MessageFieldReason     = "Reason"
	MessageFieldOffer      = "Offer (if any)"
	MessageFieldSubject    = "Subject"
	MessageFieldMessage    = "Message"

	MessageDoctorAny = "Any"
	MessageOfferNone = "None"
)

const (
	BookingReasonRoutineCheckup  = "routine-checkup"
	BookingReasonNewPatient      = "new-patient"
	BookingReasonSpecificConcern = "specific-concern"
)

var BookingReasonLabels = map[string]string{
	BookingReasonRoutineCheckup:  "فحص دوري",
	BookingReasonNewPatient:      "زيارة أولى",
	BookingReasonSpecificConcern: "حالة طبية خاصة",
}

// Notification copy shown after a form submission.
const (
	BookingSuccessMessage      = "تم حجز الموعد بنجاح!"
	BookingFailureFallback     = "حدث خطأ أثناء إرسال البيانات"
	BookingGenericFailure      = "فشل في إرسال النموذج. حاول مرة أخرى."
	ContactSuccessMessage      = "تم إرسال الرسالة بنجاح!"
	ContactFailureFallback     = "فشل في إرسال الرسالة"
	ContactGenericFailure      = "حدث خطأ أثناء إرسال الرسالة."
	BookingDoctorPrefix        = "dr-"
	BookingSectionAnchor       = "booking"
	BookingSuccessRedirectPath = "/?booked=1#booking"
	ContactSuccessRedirectPath = "/contact?sent=1"
)

// Field-level validation copy for the public forms, keyed by "<field>.<tag>".
var FormValidationMessages = map[string]string{
	"name.required":       "الاسم مطلوب",
	"name.min":            "الاسم مطلوب",
	"phone.required":      "رقم الهاتف غير صالح",
	"phone.min":           "رقم الهاتف غير صالح",
	"email.required":      "البريد الإلكتروني غير صالح",
	"email.email":         "البريد الإلكتروني غير صالح",
	"date.required":       "يرجى اختيار التاريخ",
	"department.required": "يرجى اختيار العيادة",
	"department.oneof":    "يرجى اختيار العيادة",
	"reason.required":     "يرجى اختيار سبب الزيارة",
	"reason.oneof":        "يرجى اختيار سبب الزيارة",
	"firstname.required":  "الاسم الأول مطلوب",
	"firstname.min":       "الاسم الأول مطلوب",
	"lastname.required":   "الاسم الأخير مطلوب",
	"lastname.min":        "الاسم الأخير مطلوب",
	"subject.required":    "يرجى تحديد الموضوع",
	"subject.min":         "يرجى تحديد الموضوع",
	"message.required":    "يرجى كتابة رسالة مفصلة",
	"message.min":         "يرجى كتابة رسالة مفصلة",
}
