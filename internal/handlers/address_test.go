package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"contactbook/internal/apperror"
	"contactbook/internal/models"
	"contactbook/internal/service"
)

func newAddressRouter(addresses *mockAddresses) http.Handler {
	users := authedUsers(&models.User{Username: "alice", Name: "Alice"})
	return newTestRouter(&service.Service{Users: users, Addresses: addresses})
}

func TestAddressHandlers_Create(t *testing.T) {
	street := "Jalan Sudirman"
	addresses := &mockAddresses{address: &models.Address{
		ID: 11, ContactID: 3, Street: &street, Country: "Indonesia", PostalCode: "12190",
	}}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodPost, "/api/contacts/3/addresses",
		`{"street":"Jalan Sudirman","country":"Indonesia","postal_code":"12190"}`, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Data struct {
			ID         int64  `json:"id"`
			Country    string `json:"country"`
			PostalCode string `json:"postal_code"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Data.ID != 11 || out.Data.Country != "Indonesia" || out.Data.PostalCode != "12190" {
		t.Fatalf("unexpected data: %s", w.Body.String())
	}
	if addresses.lastContactID != 3 || addresses.lastUsername != "alice" {
		t.Fatalf("ownership chain not forwarded: contactID=%d username=%q",
			addresses.lastContactID, addresses.lastUsername)
	}
}

func TestAddressHandlers_Create_MissingCountry(t *testing.T) {
	addresses := &mockAddresses{}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodPost, "/api/contacts/3/addresses",
		`{"street":"Jalan Sudirman"}`, "tok")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestAddressHandlers_Get_ChainNotFound(t *testing.T) {
	addresses := &mockAddresses{err: apperror.NotFound("contact is not found")}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodGet, "/api/contacts/3/addresses/11", "", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAddressHandlers_Update(t *testing.T) {
	addresses := &mockAddresses{address: &models.Address{
		ID: 11, ContactID: 3, Country: "Indonesia", PostalCode: "40111",
	}}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodPut, "/api/contacts/3/addresses/11",
		`{"country":"Indonesia","postal_code":"40111"}`, "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if addresses.lastAddressID != 11 || addresses.lastContactID != 3 {
		t.Fatalf("ids not forwarded: %+v", addresses)
	}
	if addresses.lastReq.PostalCode != "40111" {
		t.Fatalf("payload not forwarded: %+v", addresses.lastReq)
	}
}

func TestAddressHandlers_Remove(t *testing.T) {
	addresses := &mockAddresses{}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodDelete, "/api/contacts/3/addresses/11", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if addresses.removeCalls != 1 {
		t.Fatalf("expected 1 remove call, got %d", addresses.removeCalls)
	}
}

func TestAddressHandlers_List(t *testing.T) {
	addresses := &mockAddresses{list: []models.Address{
		{ID: 11, ContactID: 3, Country: "Indonesia", PostalCode: "12190"},
		{ID: 12, ContactID: 3, Country: "Indonesia", PostalCode: "40111"},
	}}
	r := newAddressRouter(addresses)

	w := doJSON(t, r, http.MethodGet, "/api/contacts/3/addresses", "", "tok")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Data []json.RawMessage `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Data) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(out.Data))
	}
}
