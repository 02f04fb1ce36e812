package handlers_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"sort"
	"strconv"

	"github.com/veerendra4401/hookwatch/internal/event"
)

// fakeStore is an in-memory EventStore double for handler tests.
type fakeStore struct {
	events      []event.Event
	nextID      int
	insertErr   error
	listErr     error
	deleteErr   error
	deleteCalls int
}

func (f *fakeStore) Insert(_ context.Context, ev event.Event) (event.Event, error) {
	if f.insertErr != nil {
		return event.Event{}, f.insertErr
	}
	f.nextID++
	ev.ID = "ev-" + strconv.Itoa(f.nextID)
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeStore) ListNewestFirst(_ context.Context) ([]event.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]event.Event, len(f.events))
	copy(out, f.events)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (f *fakeStore) DeleteOlderThan(_ context.Context, cutoff string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.events[:0]
	for _, ev := range f.events {
		if ev.Timestamp >= cutoff {
			kept = append(kept, ev)
		}
	}
	f.events = kept
	return nil
}

var errStoreDown = errors.New("connection refused")

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}
