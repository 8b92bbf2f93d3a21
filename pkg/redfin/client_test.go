package redfin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hawaiielite-properties/pkg/upstream"
)

func TestSearchSoldUsesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties/search-sold" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("regionId") != "6_2446" || q.Get("soldWithin") != "30" {
			t.Errorf("query = %v", q)
		}
		if r.Header.Get("X-RapidAPI-Host") != "redfin-com-data.p.rapidapi.com" {
			t.Errorf("host header = %q", r.Header.Get("X-RapidAPI-Host"))
		}
		_, _ = w.Write([]byte(`{"properties":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "redfin-com-data.p.rapidapi.com", "key", time.Second)
	records, err := c.SearchSold(context.Background(), "", "")
	if err != nil {
		t.Fatalf("SearchSold: %v", err)
	}
	if len(records) != 2 || records[1]["id"] != "2" {
		t.Errorf("records = %v", records)
	}
}

func TestSearchSaleRejectsMissingArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":"nope"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "redfin-com-data.p.rapidapi.com", "key", time.Second)
	_, err := c.SearchSale(context.Background(), "6_2446")

	var payloadErr *upstream.PayloadError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("error = %v, want *upstream.PayloadError", err)
	}
}

func TestDetailUnwrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("propertyId") != "abc" {
			t.Errorf("propertyId = %q", r.URL.Query().Get("propertyId"))
		}
		_, _ = w.Write([]byte(`{"data":{"propertyId":"abc","beds":3}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "redfin-com-data.p.rapidapi.com", "key", time.Second)
	detail, err := c.Detail(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail["propertyId"] != "abc" {
		t.Errorf("detail = %v", detail)
	}
}
