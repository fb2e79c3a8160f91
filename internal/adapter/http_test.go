package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://sync.example.com/", want: "https://sync.example.com"},
		{in: "  http://host  ", want: "http://host"},
		{in: "", wantErr: true},
		{in: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_Login_StoresBearerToken(t *testing.T) {
	var gotUser models.User
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUser))

		w.Header().Set("Authorization", "Bearer token-123")
		w.WriteHeader(http.StatusOK)
	}))

	err := a.Login(context.Background(), models.User{Login: "ada", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", a.Token())
	assert.Equal(t, "ada", gotUser.Login)
}

func TestHTTPServerAdapter_Login_BadCredentials(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))

	err := a.Login(context.Background(), models.User{Login: "ada", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_UnreachableServer(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		// reserved TEST-NET-1 address, nothing listens there
		HTTPAddress:    "http://192.0.2.1:1",
		RequestTimeout: 200 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Cards().List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestEntityClient_Create(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/cards", r.URL.Path)
		require.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var card models.BusinessCard
		require.NoError(t, json.NewDecoder(r.Body).Decode(&card))
		card.ID = "srv-1"

		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(card))
	}))
	a.SetToken("token-123")

	created, err := a.Cards().Create(context.Background(), &models.BusinessCard{
		SyncMeta:  models.SyncMeta{ID: "local-1", UpdatedAt: 1000},
		FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)
	assert.Equal(t, "Ada", created.FirstName)
}

func TestEntityClient_Update_AddressesServerID(t *testing.T) {
	var path string
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"srv-1"}`))
	}))

	_, err := a.Cards().Update(context.Background(), &models.BusinessCard{
		SyncMeta: models.SyncMeta{ID: "local-1", ServerID: "srv-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/cards/srv-1", path)
}

func TestEntityClient_List_SinceQueryParam(t *testing.T) {
	var since []string
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		since = append(since, r.URL.Query().Get("since"))
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := a.Cards().List(context.Background(), 0)
	require.NoError(t, err)
	_, err = a.Cards().List(context.Background(), 1735689600000)
	require.NoError(t, err)

	require.Len(t, since, 2)
	assert.Empty(t, since[0], "a zero watermark sends no since parameter")
	assert.Equal(t, "1735689600000", since[1])
}

func TestEntityClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))

			_, err := a.Cards().Get(context.Background(), "srv-1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLeadClient_Convert(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/leads/srv-lead-1/convert", r.URL.Path)
		_, _ = w.Write([]byte(`{"contact_id":"srv-contact-1","lead_id":"srv-lead-1"}`))
	}))

	result, err := a.Leads().Convert(context.Background(), "srv-lead-1")
	require.NoError(t, err)
	assert.Equal(t, "srv-contact-1", result.ContactID)
	assert.Equal(t, "srv-lead-1", result.LeadID)
}

func TestLeadClient_Convert_Conflict(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "lead already converted", http.StatusConflict)
	}))

	_, err := a.Leads().Convert(context.Background(), "srv-lead-1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteContact_ReportsLeadRevert(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/contacts/srv-c-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"lead_reverted":true,"lead_id":"srv-lead-7"}`))
	}))

	result, err := a.DeleteContact(context.Background(), "srv-c-1")
	require.NoError(t, err)
	assert.True(t, result.LeadReverted)
	assert.Equal(t, "srv-lead-7", result.LeadID)
}
