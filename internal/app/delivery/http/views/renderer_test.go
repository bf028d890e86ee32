package views

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/dto/responses"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererParsesEveryPage(t *testing.T) {
	renderer, err := NewRenderer(FuncMap("f46widyg", "production"))
	require.NoError(t, err)

	for _, name := range []string{PageHome, PageDoctors, PageServices, PageOffers, PageDevices, PagePatients, PageContact} {
		assert.Contains(t, renderer.pages, name)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	renderer, err := NewRenderer(FuncMap("f46widyg", "production"))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = renderer.Render(rr, 200, "missing", &Page{})

	assert.Error(t, err)
	assert.Equal(t, 0, rr.Body.Len(), "nothing is written for a failed render")
}

func TestRenderFooterClinicInfo(t *testing.T) {
	renderer, err := NewRenderer(FuncMap("f46widyg", "production"))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = renderer.Render(rr, 200, PagePatients, &Page{
		Title: "تجارب المرضى",
		Path:  "/patients",
		Layout: responses.Layout{
			ClinicInfo: &cms_dto.ClinicInfo{
				Address: "Riyadh",
				Phones:  []cms_dto.Phone{{PhoneNumber: "+966 50-000-0000"}},
			},
		},
		Data: struct {
			Items  []cms_dto.Testimonial
			Failed bool
			Empty  string
		}{Empty: "لا توجد تجارب حالياً"},
	})
	require.NoError(t, err)

	body := rr.Body.String()
	// html/template writes the plus sign of a URL attribute as an entity.
	assert.Contains(t, body, `href="tel:&#43;966500000000"`)
	assert.Contains(t, body, `href="https://wa.me/966500000000"`)
	assert.Contains(t, body, "لا توجد تجارب حالياً")
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestSectionByCategory(t *testing.T) {
	sections := []cms_dto.HomepageSection{
		{SectionTitle: "Our doctors", SectionCategory: "الأطباء"},
		{SectionTitle: "About", SectionCategory: "نبذة عنا"},
	}

	section := SectionByCategory(sections, "doctors")
	require.NotNil(t, section)
	assert.Equal(t, "Our doctors", section.SectionTitle)

	section = SectionByCategory(sections, "نبذة عنا")
	require.NotNil(t, section)
	assert.Equal(t, "About", section.SectionTitle)

	assert.Nil(t, SectionByCategory(sections, "gallery"))
}

func TestDepartmentLabel(t *testing.T) {
	assert.Equal(t, "عيادة الليزر", DepartmentLabel("laser"))
	assert.Equal(t, "unknown", DepartmentLabel("unknown"))
}
