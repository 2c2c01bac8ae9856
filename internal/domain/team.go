package domain

import (
	"bytes"
	"encoding/json"
)

// Team is an organizational unit, optionally nested under a parent team.
type Team struct {
	ID           string
	Name         string
	ParentTeamID *string
}

// TeamPatch lists the fields an update may change. Nil or unset fields keep
// their stored value.
type TeamPatch struct {
	Name         *string
	ParentTeamID OptionalString
}

// IsEmpty reports whether the patch changes nothing.
func (p TeamPatch) IsEmpty() bool {
	return p.Name == nil && !p.ParentTeamID.Set
}

// Apply copies the set fields of the patch onto team.
func (p TeamPatch) Apply(team *Team) {
	if p.Name != nil {
		team.Name = *p.Name
	}
	if p.ParentTeamID.Set {
		team.ParentTeamID = p.ParentTeamID.Value
	}
}

// OptionalString tracks whether a nullable JSON string was present in a payload.
// Set with a nil Value means an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// NewOptionalString returns a set OptionalString holding v.
func NewOptionalString(v *string) OptionalString {
	return OptionalString{Set: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
