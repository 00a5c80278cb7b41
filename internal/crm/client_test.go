package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/intake"
)

func samplePayload() intake.LeadPayload {
	return intake.LeadPayload{
		Source:             "chat",
		FirstName:          "John",
		LastName:           "Smith",
		Phone:              "4075550123",
		City:               "Orlando",
		Zip:                "32801",
		ServiceDescription: "Fix a leaky faucet",
		PreferredDate:      "02/21/26 10:00",
		LeadStatus:         "New",
		InServiceArea:      true,
	}
}

func TestNewValidatesURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	_, err = New(Config{URL: "not a url"})
	require.Error(t, err)

	c, err := New(Config{URL: "https://hooks.example.com/leads"})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestDeliverLeadPostsJSON(t *testing.T) {
	var got intake.LeadPayload
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL})
	require.NoError(t, err)

	require.NoError(t, c.DeliverLead(context.Background(), samplePayload()))
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "4075550123", got.Phone)
	assert.Equal(t, "New", got.LeadStatus)
}

func TestDeliverLeadNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL})
	require.NoError(t, err)

	err = c.DeliverLead(context.Background(), samplePayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestDeliverLeadTruncatesLongErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL})
	require.NoError(t, err)

	err = c.DeliverLead(context.Background(), samplePayload())
	require.Error(t, err)
	assert.LessOrEqual(t, len(err.Error()), maxErrorBodyLen+128)
}

func TestDeliverLeadHonorsContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.DeliverLead(ctx, samplePayload())
	require.ErrorIs(t, err, context.Canceled)
}
