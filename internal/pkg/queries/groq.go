package queries

import (
	"fmt"
	"strings"
)

// GROQ builds a content store query of the form
// *[_type == "<type>" && <filters>] | order(<order>) [<slice>] {<projection>}.
type GROQ struct {
	documentType string
	filters      []string
	orderings    []string
	slice        string
	projection   []string
}

func NewGROQ(documentType string) *GROQ {
	return &GROQ{documentType: documentType}
}

func (q *GROQ) Where(filter string) *GROQ {
	q.filters = append(q.filters, filter)
	return q
}

// WhereEquals adds a string equality filter, quoting the value.
func (q *GROQ) WhereEquals(field, value string) *GROQ {
	return q.Where(fmt.Sprintf("%s == %q", field, value))
}

func (q *GROQ) OrderBy(field, direction string) *GROQ {
	q.orderings = append(q.orderings, field+" "+direction)
	return q
}

// Range keeps documents start..end, both inclusive.
func (q *GROQ) Range(start, end int) *GROQ {
	q.slice = fmt.Sprintf("[%d..%d]", start, end)
	return q
}

// Limit keeps the first n documents.
func (q *GROQ) Limit(n int) *GROQ {
	if n <= 0 {
		q.slice = ""
		return q
	}
	return q.Range(0, n-1)
}

// First makes the query return a single document instead of a list.
func (q *GROQ) First() *GROQ {
	q.slice = "[0]"
	return q
}

func (q *GROQ) Project(fields ...string) *GROQ {
	q.projection = append(q.projection, fields...)
	return q
}

func (q *GROQ) String() string {
	var b strings.Builder

	b.WriteString(`*[_type == "`)
	b.WriteString(q.documentType)
	b.WriteString(`"`)
	for _, filter := range q.filters {
		b.WriteString(" && ")
		b.WriteString(filter)
	}
	b.WriteString("]")

	if len(q.orderings) > 0 {
		b.WriteString(" | order(")
		b.WriteString(strings.Join(q.orderings, ", "))
		b.WriteString(")")
	}

	if q.slice != "" {
		if len(q.orderings) > 0 {
			b.WriteString(" ")
		}
		b.WriteString(q.slice)
	}

	if len(q.projection) > 0 {
		if len(q.orderings) > 0 {
			b.WriteString(" ")
		}
		b.WriteString("{")
		b.WriteString(strings.Join(q.projection, ", "))
		b.WriteString("}")
	}

	return b.String()
}
