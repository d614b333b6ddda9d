package models

import "time"

// Document is one named entry of the document library.
type Document struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Kind            string    `db:"kind" json:"kind"`
	CurrentRevision int       `db:"current_revision" json:"current_revision"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Revision is one stored, normalized rendering of a document.
type Revision struct {
	ID         int64     `db:"id" json:"id"`
	DocumentID int64     `db:"document_id" json:"document_id"`
	Name       string    `db:"name" json:"name"`
	Kind       string    `db:"kind" json:"kind"`
	Revision   int       `db:"revision" json:"revision"`
	XML        string    `db:"xml" json:"xml"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
