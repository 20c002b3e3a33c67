package types

import (
	"strings"
)

// NotAvailable is rendered in place of an absent optional field.
const NotAvailable = "N/A"

// Contact is a single address-book record. Email identifies the contact
// within a store. An empty PhoneNumber or Company means the field is absent.
type Contact struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	Company     string `json:"company,omitempty" yaml:"company,omitempty"`
}

// HasRequired reports whether both required fields are present. With strict
// set, a value made only of whitespace counts as missing.
func (c Contact) HasRequired(strict bool) bool {
	if strict {
		return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Email) != ""
	}
	return c.Name != "" && c.Email != ""
}

// Fields returns the populated field values in a fixed order: name, email,
// phone number, company. Absent optional fields are omitted.
func (c Contact) Fields() []string {
	fields := []string{c.Name, c.Email}
	if c.PhoneNumber != "" {
		fields = append(fields, c.PhoneNumber)
	}
	if c.Company != "" {
		fields = append(fields, c.Company)
	}
	return fields
}

// Matches reports whether query is a case-insensitive substring of any
// populated field. The empty query matches every contact.
func (c Contact) Matches(query string) bool {
	q := strings.ToLower(query)
	for _, f := range c.Fields() {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Render formats the contact as four labelled lines.
func (c Contact) Render() string {
	return "Name: " + c.Name +
		"\nEmail: " + c.Email +
		"\nPhone number: " + orNotAvailable(c.PhoneNumber) +
		"\nCompany: " + orNotAvailable(c.Company)
}

// RenderContacts renders each contact and separates them with a blank line.
func RenderContacts(contacts []Contact) string {
	parts := make([]string, len(contacts))
	for i, c := range contacts {
		parts[i] = c.Render()
	}
	return strings.Join(parts, "\n\n")
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
