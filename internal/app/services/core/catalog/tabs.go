package catalog

import (
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/responses"
)

const (
	labelAll         = "الكل"
	labelDental      = "الأسنان"
	labelDermatology = "الجلدية"
	labelLaser       = "الليزر"
	labelDentalGear  = "الأجهزة السنية"
	labelDermaLaser  = "الجلدية والليزر"
)

type tab struct {
	key   string
	label string
}

// TabSet is the ordered list of filters a list view offers.
type TabSet struct {
	Default string
	tabs    []tab
}

var (
	ServiceTabs = TabSet{
		Default: constvars.DepartmentDental,
		tabs: []tab{
			{constvars.DepartmentDental, labelDental},
			{constvars.DepartmentDermatology, labelDermatology},
			{constvars.DepartmentLaser, labelLaser},
		},
	}
	DepartmentTabs = TabSet{
		Default: constvars.TabAll,
		tabs: []tab{
			{constvars.TabAll, labelAll},
			{constvars.DepartmentDental, labelDental},
			{constvars.DepartmentDermatology, labelDermatology},
			{constvars.DepartmentLaser, labelLaser},
		},
	}
	DeviceTabs = TabSet{
		Default: constvars.TabAll,
		tabs: []tab{
			{constvars.TabAll, labelAll},
			{constvars.DeviceCategoryDental, labelDentalGear},
			{constvars.DeviceCategoryDermaLaser, labelDermaLaser},
		},
	}
)

// Resolve returns selected when it names one of the tabs and the default tab otherwise.
func (s TabSet) Resolve(selected string) string {
	for _, t := range s.tabs {
		if t.key == selected {
			return selected
		}
	}
	return s.Default
}

// Tabs lists the tabs with the resolved selection marked.
func (s TabSet) Tabs(selected string) []responses.Tab {
	active := s.Resolve(selected)
	result := make([]responses.Tab, 0, len(s.tabs))
	for _, t := range s.tabs {
		result = append(result, responses.Tab{
			Key:      t.key,
			Label:    t.label,
			Selected: t.key == active,
		})
	}
	return result
}
