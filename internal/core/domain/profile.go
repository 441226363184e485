package domain

import "strings"

// Profile is a saved customer contact record. Email is the natural
// key, compared case-insensitively.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// ProfileForm carries the contact fields of a "save profile" action.
type ProfileForm struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProfileBook holds at most one profile per normalized email.
type ProfileBook struct {
	profiles []Profile
}

func NewProfileBook(profiles []Profile) *ProfileBook {
	return &ProfileBook{profiles: profiles}
}

// IndexByEmail finds the profile whose email matches after
// normalization, -1 when absent.
func (b *ProfileBook) IndexByEmail(email string) int {
	key := NormalizeEmail(email)
	for i, p := range b.profiles {
		if NormalizeEmail(p.Email) == key {
			return i
		}
	}
	return -1
}

func (b *ProfileBook) Append(p Profile) {
	b.profiles = append(b.profiles, p)
}

func (b *ProfileBook) ReplaceAt(i int, p Profile) {
	b.profiles[i] = p
}

func (b *ProfileBook) At(i int) Profile {
	return b.profiles[i]
}

func (b *ProfileBook) Len() int {
	return len(b.profiles)
}

func (b *ProfileBook) Profiles() []Profile {
	out := make([]Profile, len(b.profiles))
	copy(out, b.profiles)
	return out
}
