package cms_dto

type Testimonial struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Age         int     `json:"age,omitempty"`
	Treatment   string  `json:"treatment,omitempty"`
	Rating      float64 `json:"rating"`
	Date        string  `json:"date,omitempty"`
	Location    string  `json:"location,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	Quote       string  `json:"quote"`
	BeforeImage *Image  `json:"beforeImage,omitempty"`
	AfterImage  *Image  `json:"afterImage,omitempty"`
	Featured    bool    `json:"featured"`
}

// ClampRating keeps the rating within the 1..5 star range.
func (t *Testimonial) ClampRating() {
	switch {
	case t.Rating < 1:
		t.Rating = 1
	case t.Rating > 5:
		t.Rating = 5
	}
}
