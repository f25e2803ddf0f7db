package entity

import "quotehub/internal/domain/value"

// QuoteRequest is the applicant payload forwarded verbatim to every vendor.
type QuoteRequest struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Vehicles    []Vehicle
	Coverage    CoverageRequest
}

type Vehicle struct {
	Year          int
	Make          string
	Model         string
	VIN           string
	Usage         string
	AnnualMileage int
}

type CoverageRequest struct {
	Liability     value.Liability
	Collision     int64
	Comprehensive int64
	Uninsured     bool
	Medical       int64
}
