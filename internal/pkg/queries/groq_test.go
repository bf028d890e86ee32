package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGROQString(t *testing.T) {
	tests := []struct {
		name     string
		query    *GROQ
		expected string
	}{
		{
			name:     "type only",
			query:    NewGROQ("doctor"),
			expected: `*[_type == "doctor"]`,
		},
		{
			name:     "projection without order",
			query:    NewGROQ("doctor").Project("_id", "name"),
			expected: `*[_type == "doctor"]{_id, name}`,
		},
		{
			name:     "filter order and range",
			query:    NewGROQ("offer").Where("active == true").OrderBy("_createdAt", OrderDesc).Limit(10),
			expected: `*[_type == "offer" && active == true] | order(_createdAt desc) [0..9]`,
		},
		{
			name:     "order with projection",
			query:    NewGROQ("plan").OrderBy("department", OrderAsc).Project("name"),
			expected: `*[_type == "plan"] | order(department asc) {name}`,
		},
		{
			name:     "single document",
			query:    NewGROQ("clinicInfo").First().Project("address"),
			expected: `*[_type == "clinicInfo"][0]{address}`,
		},
		{
			name:     "zero limit is ignored",
			query:    NewGROQ("device").Limit(0),
			expected: `*[_type == "device"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.String())
		})
	}
}

func TestCanonicalQueries(t *testing.T) {
	assert.Equal(t,
		`*[_type == "device"] | order(_createdAt desc) [0..5] {_id, _createdAt, name, category, image, description, specifications}`,
		HomeDevices,
	)
	assert.Equal(t,
		`*[_type == "offer" && active == true] | order(_createdAt desc) [0..9] {_id, _createdAt, title, description, department, discount, active, image}`,
		HomeOffers,
	)
	assert.Equal(t,
		`*[_type == "homepage" && sectionCategory == "نبذة عنا"][0]{sectionTitle, sectionSubtitle, sectionDesc}`,
		AboutSection,
	)
	assert.Equal(t,
		`*[_type == "clinicInfo"][0]{address, phones[], workingDaysAndHours, email}`,
		ClinicInfo,
	)
	assert.Contains(t, Doctors, "| order(name asc)")
	assert.Contains(t, Plans, "| order(department asc)")
	assert.Contains(t, Devices, "| order(name asc)")
	assert.Contains(t, Offers, `&& active == true] | order(_createdAt desc) {`)
}
