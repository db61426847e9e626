package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the board rejects the sync key. Callers
// should prompt the user to reconnect rather than retry.
var ErrUnauthorized = errors.New("board rejected credentials")

// Credentials is the parsed form of a user's board sync key.
// The stored format is "key:token".
type Credentials struct {
	Key   string
	Token string
}

// ParseCredentials splits a stored sync key into API key and token
func ParseCredentials(syncKey string) (Credentials, error) {
	parts := strings.SplitN(syncKey, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Credentials{}, fmt.Errorf("sync key must be in key:token format")
	}
	return Credentials{Key: parts[0], Token: parts[1]}, nil
}

// Board is a remote board as returned by the boards listing
type Board struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Closed       bool   `json:"closed"`
	Organization string `json:"idOrganization"`
}

// List is one column on a board
type List struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
}

// Card is the raw card representation from the board API
type Card struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Desc             string   `json:"desc"`
	Closed           bool     `json:"closed"`
	Due              string   `json:"due"`
	IDList           string   `json:"idList"`
	URL              string   `json:"url"`
	DateLastActivity string   `json:"dateLastActivity"`
	Labels           []Label  `json:"labels"`
	Badges           Badges   `json:"badges"`
	MemberNames      []string `json:"-"`
}

// Label is a card label
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Badges carries card activity counters
type Badges struct {
	Comments        int `json:"comments"`
	CheckItems      int `json:"checkItems"`
	CheckItemsDone  int `json:"checkItemsChecked"`
	AttachmentCount int `json:"attachments"`
}

// Client is a minimal client for the board REST API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a board API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.trello.com/1"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetBoards lists the boards visible to the credential owner
func (c *Client) GetBoards(ctx context.Context, creds Credentials) ([]Board, error) {
	var boards []Board
	if err := c.get(ctx, creds, "/members/me/boards", url.Values{
		"fields": []string{"name,url,closed,idOrganization"},
	}, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetLists returns the open lists on a board, in board order
func (c *Client) GetLists(ctx context.Context, creds Credentials, boardID string) ([]List, error) {
	var lists []List
	if err := c.get(ctx, creds, "/boards/"+boardID+"/lists", url.Values{
		"filter": []string{"open"},
	}, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetCards returns all cards on a board, in board order
func (c *Client) GetCards(ctx context.Context, creds Credentials, boardID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, creds, "/boards/"+boardID+"/cards", url.Values{
		"filter": []string{"all"},
		"fields": []string{"name,desc,closed,due,idList,url,dateLastActivity,labels,badges"},
	}, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateCardClosed sets a card's closed state
func (c *Client) UpdateCardClosed(ctx context.Context, creds Credentials, cardID string, closed bool) error {
	return c.put(ctx, creds, "/cards/"+cardID, url.Values{
		"closed": []string{strconv.FormatBool(closed)},
	})
}

// CreateList creates a new list on a board and returns it
func (c *Client) CreateList(ctx context.Context, creds Credentials, boardID, name string) (*List, error) {
	var list List
	if err := c.post(ctx, creds, "/lists", url.Values{
		"idBoard": []string{boardID},
		"name":    []string{name},
		"pos":     []string{"bottom"},
	}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetListCards returns the cards on a single list
func (c *Client) GetListCards(ctx context.Context, creds Credentials, listID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, creds, "/lists/"+listID+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Checklist is a checklist attached to a card
type Checklist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetChecklists returns the checklists on a card
func (c *Client) GetChecklists(ctx context.Context, creds Credentials, cardID string) ([]Checklist, error) {
	var checklists []Checklist
	if err := c.get(ctx, creds, "/cards/"+cardID+"/checklists", nil, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}

// CreateChecklist creates a checklist on a card and returns it
func (c *Client) CreateChecklist(ctx context.Context, creds Credentials, cardID, name string) (*Checklist, error) {
	var checklist Checklist
	if err := c.post(ctx, creds, "/cards/"+cardID+"/checklists", url.Values{
		"name": []string{name},
	}, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// AddCheckItem appends an item to a checklist
func (c *Client) AddCheckItem(ctx context.Context, creds Credentials, checklistID, name string) error {
	return c.do(ctx, http.MethodPost, creds, "/checklists/"+checklistID+"/checkItems", url.Values{
		"name": []string{name},
	}, nil)
}

// CreateCard creates a new card on a list and returns it
func (c *Client) CreateCard(ctx context.Context, creds Credentials, listID, name, desc string) (*Card, error) {
	var card Card
	if err := c.post(ctx, creds, "/cards", url.Values{
		"idList": []string{listID},
		"name":   []string{name},
		"desc":   []string{desc},
	}, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) get(ctx context.Context, creds Credentials, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, creds, path, params, out)
}

func (c *Client) put(ctx context.Context, creds Credentials, path string, params url.Values) error {
	return c.do(ctx, http.MethodPut, creds, path, params, nil)
}

func (c *Client) post(ctx context.Context, creds Credentials, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodPost, creds, path, params, out)
}

func (c *Client) do(ctx context.Context, method string, creds Credentials, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", creds.Key)
	params.Set("token", creds.Token)

	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("board request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("board returned status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode board response: %w", err)
	}
	return nil
}
