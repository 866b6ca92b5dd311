package types

import (
	"bytes"
	"encoding/json"
)

// itemJSON is the wire form of Item. Pointer fields let an empty value be told apart
// from an absent one.
type itemJSON struct {
	ID           string  `json:"id"`
	Company      *string `json:"company,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Role         *string `json:"role,omitempty"`
	Location     *string `json:"location,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Current      *bool   `json:"current,omitempty"`
	Institution  *string `json:"institution,omitempty"`
	Degree       *string `json:"degree,omitempty"`
	Field        *string `json:"field,omitempty"`
	Name         *string `json:"name,omitempty"`
	Title        *string `json:"title,omitempty"`
	Issuer       *string `json:"issuer,omitempty"`
	Date         *string `json:"date,omitempty"`
	Description  *string `json:"description,omitempty"`
	Label        *string `json:"label,omitempty"`
	URL          *string `json:"url,omitempty"`
	Link         *string `json:"link,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`

	Bullets *[]string      `json:"bullets,omitempty"`
	Skills  *[]string      `json:"skills,omitempty"`
	Fields  *[]CustomField `json:"fields,omitempty"`
}

type itemString struct {
	key  string
	item func(*Item) *string
	wire func(*itemJSON) **string
}

// itemStrings lists the optional string fields in their JSON order.
var itemStrings = []itemString{
	{"company", func(it *Item) *string { return &it.Company }, func(w *itemJSON) **string { return &w.Company }},
	{"organization", func(it *Item) *string { return &it.Organization }, func(w *itemJSON) **string { return &w.Organization }},
	{"role", func(it *Item) *string { return &it.Role }, func(w *itemJSON) **string { return &w.Role }},
	{"location", func(it *Item) *string { return &it.Location }, func(w *itemJSON) **string { return &w.Location }},
	{"startDate", func(it *Item) *string { return &it.StartDate }, func(w *itemJSON) **string { return &w.StartDate }},
	{"endDate", func(it *Item) *string { return &it.EndDate }, func(w *itemJSON) **string { return &w.EndDate }},
	{"institution", func(it *Item) *string { return &it.Institution }, func(w *itemJSON) **string { return &w.Institution }},
	{"degree", func(it *Item) *string { return &it.Degree }, func(w *itemJSON) **string { return &w.Degree }},
	{"field", func(it *Item) *string { return &it.Field }, func(w *itemJSON) **string { return &w.Field }},
	{"name", func(it *Item) *string { return &it.Name }, func(w *itemJSON) **string { return &w.Name }},
	{"title", func(it *Item) *string { return &it.Title }, func(w *itemJSON) **string { return &w.Title }},
	{"issuer", func(it *Item) *string { return &it.Issuer }, func(w *itemJSON) **string { return &w.Issuer }},
	{"date", func(it *Item) *string { return &it.Date }, func(w *itemJSON) **string { return &w.Date }},
	{"description", func(it *Item) *string { return &it.Description }, func(w *itemJSON) **string { return &w.Description }},
	{"label", func(it *Item) *string { return &it.Label }, func(w *itemJSON) **string { return &w.Label }},
	{"url", func(it *Item) *string { return &it.URL }, func(w *itemJSON) **string { return &w.URL }},
	{"link", func(it *Item) *string { return &it.Link }, func(w *itemJSON) **string { return &w.Link }},
	{"email", func(it *Item) *string { return &it.Email }, func(w *itemJSON) **string { return &w.Email }},
	{"phone", func(it *Item) *string { return &it.Phone }, func(w *itemJSON) **string { return &w.Phone }},
}

// ItemKeyCurrent is the JSON key of Item.Current.
const ItemKeyCurrent = "current"

// MarshalJSON writes non-empty fields, blank keys and every non-nil list.
func (it Item) MarshalJSON() ([]byte, error) {
	w := itemJSON{ID: it.ID}
	for _, f := range itemStrings {
		v := *f.item(&it)
		if v != "" || it.IsBlank(f.key) {
			*f.wire(&w) = &v
		}
	}
	if it.Current || it.IsBlank(ItemKeyCurrent) {
		current := it.Current
		w.Current = &current
	}
	if it.Bullets != nil {
		w.Bullets = &it.Bullets
	}
	if it.Skills != nil {
		w.Skills = &it.Skills
	}
	if it.Fields != nil {
		w.Fields = &it.Fields
	}

	// The caller's encoder decides on HTML escaping when it compacts this output.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON reads an item, marking keys that were present with an empty value.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := Item{ID: w.ID}
	for _, f := range itemStrings {
		p := *f.wire(&w)
		if p == nil {
			continue
		}
		*f.item(&out) = *p
		if *p == "" {
			out.MarkBlank(f.key)
		}
	}
	if w.Current != nil {
		out.Current = *w.Current
		if !out.Current {
			out.MarkBlank(ItemKeyCurrent)
		}
	}
	if w.Bullets != nil {
		out.Bullets = *w.Bullets
	}
	if w.Skills != nil {
		out.Skills = *w.Skills
	}
	if w.Fields != nil {
		out.Fields = *w.Fields
	}
	*it = out
	return nil
}
