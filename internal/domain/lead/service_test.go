package lead

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	path    string
	body    json.RawMessage
	payload json.RawMessage
	err     error
}

func (f *fakePoster) Post(_ context.Context, path string, body json.RawMessage) (json.RawMessage, error) {
	f.path = path
	f.body = body
	return f.payload, f.err
}

type fakeRecorder struct {
	batches []Batch
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, batch Batch) error {
	f.batches = append(f.batches, batch)
	return f.err
}

func TestNewServiceRequiresClient(t *testing.T) {
	_, err := NewService()
	require.EqualError(t, err, "lead.Service: client is required")
}

func TestForwardPassesThrough(t *testing.T) {
	payload := json.RawMessage(`{"organizations":[{"id":"o1","name":"Acme"}],"extra":{"kept":true}}`)
	poster := &fakePoster{payload: payload}
	rec := &fakeRecorder{}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	svc, err := NewService(WithClient(poster), WithRecorder(rec), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	args := json.RawMessage(`{"q_organization_keyword_tags":["hvac"]}`)
	got, err := svc.Forward(context.Background(), OpOrganizationSearch, args)
	require.NoError(t, err)

	assert.Equal(t, string(payload), string(got))
	assert.Equal(t, "/mixed_companies/search", poster.path)
	assert.Equal(t, string(args), string(poster.body))

	require.Len(t, rec.batches, 1)
	assert.Equal(t, now, rec.batches[0].FetchedAt)
	assert.Len(t, rec.batches[0].Organizations, 1)
}

func TestForwardRecorderFailureIsIgnored(t *testing.T) {
	poster := &fakePoster{payload: json.RawMessage(`{"person":{"id":"p1"}}`)}
	rec := &fakeRecorder{err: errors.New("graph down")}

	svc, err := NewService(WithClient(poster), WithRecorder(rec))
	require.NoError(t, err)

	got, err := svc.Forward(context.Background(), OpPeopleEnrichment, json.RawMessage(`{"email":"a@b.c"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"person":{"id":"p1"}}`, string(got))
	assert.Len(t, rec.batches, 1)
}

func TestForwardSkipsEmptyBatches(t *testing.T) {
	poster := &fakePoster{payload: json.RawMessage(`"not an object"`)}
	rec := &fakeRecorder{}

	svc, err := NewService(WithClient(poster), WithRecorder(rec))
	require.NoError(t, err)

	_, err = svc.Forward(context.Background(), OpPeopleSearch, nil)
	require.NoError(t, err)

	poster.payload = json.RawMessage(`{"people":[]}`)
	_, err = svc.Forward(context.Background(), OpPeopleSearch, nil)
	require.NoError(t, err)

	assert.Empty(t, rec.batches)
}

func TestForwardUpstreamError(t *testing.T) {
	want := errors.New("upstream exploded")
	rec := &fakeRecorder{}
	svc, err := NewService(WithClient(&fakePoster{err: want}), WithRecorder(rec))
	require.NoError(t, err)

	_, err = svc.Forward(context.Background(), OpOrganizationEnrichment, nil)
	assert.ErrorIs(t, err, want)
	assert.Empty(t, rec.batches)
}

func TestForwardUnknownOperation(t *testing.T) {
	svc, err := NewService(WithClient(&fakePoster{}))
	require.NoError(t, err)

	_, err = svc.Forward(context.Background(), Operation("contacts_delete"), nil)
	require.EqualError(t, err, `unknown operation "contacts_delete"`)
}

func TestRecordersJoinErrors(t *testing.T) {
	ok := &fakeRecorder{}
	bad := &fakeRecorder{err: errors.New("sheet locked")}

	err := Recorders{ok, nil, bad}.Record(context.Background(), Batch{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet locked")
	assert.Len(t, ok.batches, 1)
}
