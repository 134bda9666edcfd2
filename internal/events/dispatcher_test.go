package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesAllHandlers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls []string
	dispatcher.Subscribe(EventJobCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.SubjectID)
		return nil
	})
	dispatcher.Subscribe(EventJobCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.SubjectID)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventJobCreated, SubjectID: "job-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:job-1", "second:job-1"}, calls)
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventJobAssigned, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventJobCreated})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcherJoinsHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	errFirst := errors.New("first handler failed")
	ran := false
	dispatcher.Subscribe(EventUserLoggedIn, func(context.Context, Event) error {
		return errFirst
	})
	dispatcher.Subscribe(EventUserLoggedIn, func(context.Context, Event) error {
		ran = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventUserLoggedIn})
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.True(t, ran, "later handlers must still run when an earlier one fails")
}
