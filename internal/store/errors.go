package store

import "errors"

var (
	// ErrRecordNotFound — lookup by identifier matched no row.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordAlreadyExists — an insert violated a uniqueness
	// constraint, such as a second contact for the same lead.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrLoginAlreadyTaken — registration with an occupied login.
	ErrLoginAlreadyTaken = errors.New("login already taken")

	// ErrLeadAlreadyConverted — conversion was requested for a lead that
	// already has a linked contact.
	ErrLeadAlreadyConverted = errors.New("lead already converted")
)
