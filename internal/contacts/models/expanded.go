package models

// ExpandedRecord is one entry of an expanded contact listing. Value is nil
// when the registrar could not load the contact; Error then says why.
type ExpandedRecord struct {
	Key   any    `json:"key"`
	Path  string `json:"path"`
	Value Record `json:"value"`
	Error string `json:"error,omitempty"`
}
