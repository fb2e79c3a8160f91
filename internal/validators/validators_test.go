package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharemycard/cardsync/models"
)

func validCard() *models.BusinessCard {
	return &models.BusinessCard{
		SyncMeta:  models.SyncMeta{ID: "card-1", CreatedAt: 1000, UpdatedAt: 1000},
		FirstName: "Ada",
		Email:     "ada@example.com",
	}
}

func TestCardValidator(t *testing.T) {
	v := NewCardValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.BusinessCard)
		wantErr error
	}{
		{"valid", func(*models.BusinessCard) {}, nil},
		{"empty id", func(c *models.BusinessCard) { c.ID = "" }, ErrEmptyID},
		{"no name at all", func(c *models.BusinessCard) { c.FirstName = "" }, ErrEmptyName},
		{"bad email", func(c *models.BusinessCard) { c.Email = "not-an-address" }, ErrInvalidEmail},
		{"empty email is fine", func(c *models.BusinessCard) { c.Email = "" }, nil},
		{"negative timestamp", func(c *models.BusinessCard) { c.UpdatedAt = -1 }, ErrInvalidTimestamp},
		{"company name alone suffices", func(c *models.BusinessCard) {
			c.FirstName, c.LastName, c.CompanyName = "", "", "Acme"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(card)

			err := v.Validate(ctx, card)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCardValidator_FieldScoping(t *testing.T) {
	v := NewCardValidator()
	card := validCard()
	card.ID = ""

	// with the scope narrowed to email the broken id is not inspected
	assert.NoError(t, v.Validate(context.Background(), card, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), card, FieldID), ErrEmptyID)
}

func TestCardValidator_WrongType(t *testing.T) {
	v := NewCardValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "not a card"), ErrUnsupportedType)
}

func TestContactValidator(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	valid := func() *models.Contact {
		return &models.Contact{
			SyncMeta:  models.SyncMeta{ID: "c-1", CreatedAt: 1000, UpdatedAt: 1000},
			FirstName: "Grace",
			Source:    models.SourceManual,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Contact)
		wantErr error
	}{
		{"valid manual", func(*models.Contact) {}, nil},
		{"converted source", func(c *models.Contact) { c.Source = models.SourceConverted }, nil},
		{"qr scan source", func(c *models.Contact) { c.Source = models.SourceQRScan }, nil},
		{"unknown source", func(c *models.Contact) { c.Source = "carrier_pigeon" }, ErrInvalidSource},
		{"empty id", func(c *models.Contact) { c.ID = "" }, ErrEmptyID},
		{"no name", func(c *models.Contact) { c.FirstName = "" }, ErrEmptyName},
		{"bad email", func(c *models.Contact) { c.Email = "@@" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := valid()
			tt.mutate(contact)

			err := v.Validate(ctx, contact)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestScanSubmissionValidator(t *testing.T) {
	v := NewScanSubmissionValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		submission models.ScanSubmission
		wantErr    error
	}{
		{
			name:       "email as contact point",
			submission: models.ScanSubmission{FirstName: "Grace", Email: "grace@example.com"},
		},
		{
			name:       "phone as contact point",
			submission: models.ScanSubmission{LastName: "Hopper", MobilePhone: "+1-202-555-0199"},
		},
		{
			name:       "no name",
			submission: models.ScanSubmission{Email: "grace@example.com"},
			wantErr:    ErrEmptyName,
		},
		{
			name:       "no way to reach back",
			submission: models.ScanSubmission{FirstName: "Grace"},
			wantErr:    ErrNoContactPoint,
		},
		{
			name:       "malformed email",
			submission: models.ScanSubmission{FirstName: "Grace", Email: "grace@"},
			wantErr:    ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.submission)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
