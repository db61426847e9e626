package trello

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseCredentials(t *testing.T) {
	creds, err := ParseCredentials("my-key:my-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Key != "my-key" || creds.Token != "my-token" {
		t.Fatalf("unexpected credentials %+v", creds)
	}

	for _, bad := range []string{"", "no-separator", ":token", "key:"} {
		if _, err := ParseCredentials(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestClient_CredentialsInjected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "k" || q.Get("token") != "t" {
			t.Fatalf("credentials missing from query: %s", r.URL.RawQuery)
		}
		if q.Get("filter") != "open" {
			t.Fatalf("expected filter=open got %q", q.Get("filter"))
		}
		json.NewEncoder(w).Encode([]List{{ID: "l1", Name: "Todo"}})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	lists, err := client.GetLists(context.Background(), Credentials{Key: "k", Token: "t"}, "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != "l1" {
		t.Fatalf("unexpected lists %+v", lists)
	}
}

func TestClient_UnauthorizedMapped(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(ts.URL, 5*time.Second)
		_, err := client.GetBoards(context.Background(), Credentials{Key: "k", Token: "t"})
		ts.Close()

		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("status %d: expected ErrUnauthorized got %v", status, err)
		}
	}
}

func TestClient_UpdateCardClosed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT got %s", r.Method)
		}
		if r.URL.Path != "/cards/c1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("closed") != "true" {
			t.Fatalf("expected closed=true got %q", r.URL.Query().Get("closed"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	if err := client.UpdateCardClosed(context.Background(), Credentials{Key: "k", Token: "t"}, "c1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_CreateCard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("idList") != "l1" || q.Get("name") != "Write report" {
			t.Fatalf("unexpected card params: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(Card{ID: "c9", Name: "Write report", IDList: "l1"})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	card, err := client.CreateCard(context.Background(), Credentials{Key: "k", Token: "t"}, "l1", "Write report", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.ID != "c9" {
		t.Fatalf("unexpected card id %s", card.ID)
	}
}
