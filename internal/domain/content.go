package domain

import "time"

// Company is the single company-profile row shown on the about page.
type Company struct {
	ID                int64
	Name              string
	PostalCode        string
	Address           string
	Representative    string
	EstablishmentDate string
	Capital           string
	Business          string
	NumberOfEmployees string
	UpdatedAt         time.Time
}

// Term is the single terms-of-service row.
type Term struct {
	ID        int64
	Content   string
	UpdatedAt time.Time
}
