/*
Package model provides the review records decoded from a feed.
*/
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingField is wrapped by decode errors for reviews lacking a required
// field.
var ErrMissingField = errors.New("missing required field")

// Review is a single user review.
type Review struct {
	FirstName string   `json:"first_name" yaml:"first_name"`
	LastName  string   `json:"last_name" yaml:"last_name"`
	Text      string   `json:"text" yaml:"text"`
	Created   string   `json:"created" yaml:"created"`
	Rating    int      `json:"rating" yaml:"rating"`
	PhotoURLs []string `json:"photo_urls" yaml:"photo_urls"`
}

// FullName joins the first and last names.
func (r Review) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// UnmarshalJSON requires every field except photo_urls, which defaults to an
// empty list.
func (r *Review) UnmarshalJSON(b []byte) error {
	var raw struct {
		FirstName *string  `json:"first_name"`
		LastName  *string  `json:"last_name"`
		Text      *string  `json:"text"`
		Created   *string  `json:"created"`
		Rating    *int     `json:"rating"`
		PhotoURLs []string `json:"photo_urls"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, f := range []struct {
		name    string
		missing bool
	}{
		{"first_name", raw.FirstName == nil},
		{"last_name", raw.LastName == nil},
		{"text", raw.Text == nil},
		{"created", raw.Created == nil},
		{"rating", raw.Rating == nil},
	} {
		if f.missing {
			return fmt.Errorf("review: %w: %s", ErrMissingField, f.name)
		}
	}
	if raw.PhotoURLs == nil {
		raw.PhotoURLs = []string{}
	}
	*r = Review{
		FirstName: *raw.FirstName,
		LastName:  *raw.LastName,
		Text:      *raw.Text,
		Created:   *raw.Created,
		Rating:    *raw.Rating,
		PhotoURLs: raw.PhotoURLs,
	}
	return nil
}

// Feed is a page of reviews.
type Feed struct {
	Items []Review `json:"items"`
	Count int      `json:"count"`
}

// DecodeFeed reads either a feed object or a bare array of reviews. A bare
// array reports its length as the count.
func DecodeFeed(r io.Reader) (Feed, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Feed{}, fmt.Errorf("reading feed: %w", err)
	}
	b = bytes.TrimSpace(b)
	var feed Feed
	if len(b) > 0 && b[0] == '[' {
		if err := json.Unmarshal(b, &feed.Items); err != nil {
			return Feed{}, fmt.Errorf("decoding feed: %w", err)
		}
		feed.Count = len(feed.Items)
		return feed, nil
	}
	if err := json.Unmarshal(b, &feed); err != nil {
		return Feed{}, fmt.Errorf("decoding feed: %w", err)
	}
	if feed.Items == nil {
		feed.Items = []Review{}
	}
	return feed, nil
}

// EncodeFeed writes feed as indented JSON.
func EncodeFeed(w io.Writer, feed Feed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}
	return nil
}
