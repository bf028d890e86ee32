package mailer

import "strings"

type Field struct {
	Label string
	Value string
}

// Message is an ordered list of labelled fields rendered as the plain text mail body.
type Message struct {
	Title  string
	Fields []Field
}

func NewMessage(title string) *Message {
	return &Message{Title: title}
}

func (m *Message) Add(label, value string) *Message {
	m.Fields = append(m.Fields, Field{Label: label, Value: value})
	return m
}

// AddOr adds the field, using fallback when value is empty.
func (m *Message) AddOr(label, value, fallback string) *Message {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	return m.Add(label, value)
}

func (m *Message) Render() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(m.Title)
	}
	for i, field := range m.Fields {
		if i > 0 || m.Title != "" {
			b.WriteString("\n")
		}
		b.WriteString(field.Label)
		b.WriteString(": ")
		b.WriteString(field.Value)
	}
	return b.String()
}
