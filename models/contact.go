// models/contact.go
package models

// ContactRecord is one row of the per-clan phone directory, both on disk
// (tag,name,phone CSV) and in the editable table served to the operator.
// Records survive roster changes; a player who leaves the clan keeps their
// record until an operator removes it.
type ContactRecord struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
