package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entconversation "github.com/aether-home/aether/ent/conversation"
	entmessage "github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/pkg/models"
	testdb "github.com/aether-home/aether/test/database"
)

func TestConversationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates active with the given id", func(t *testing.T) {
		id := uuid.New().String()
		conv, err := service.Create(ctx, models.CreateConversationRequest{ID: id, UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, id, conv.ID)
		assert.Equal(t, entconversation.StatusActive, conv.Status)
	})

	t.Run("assigns an id when missing", func(t *testing.T) {
		conv, err := service.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
		require.NoError(t, err)
		assert.NotEmpty(t, conv.ID)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.Create(ctx, models.CreateConversationRequest{ID: id, UserID: "alice"})
		require.NoError(t, err)
		_, err = service.Create(ctx, models.CreateConversationRequest{ID: id, UserID: "alice"})
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestConversationService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	t.Run("creates on first call and returns the same row after", func(t *testing.T) {
		id := uuid.New().String()
		first, err := service.GetOrCreate(ctx, id, "alice")
		require.NoError(t, err)
		second, err := service.GetOrCreate(ctx, id, "someone-else")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "alice", second.UserID, "an existing row keeps its owner")
	})

	t.Run("requires an id", func(t *testing.T) {
		_, err := service.GetOrCreate(ctx, "", "alice")
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_Messages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)

	t.Run("appends and reads back in order", func(t *testing.T) {
		_, err := service.AddMessage(ctx, models.AddMessageRequest{
			ConversationID: conv.ID,
			Role:           entmessage.RoleUser,
			Content:        "is the garage door closed?",
		})
		require.NoError(t, err)
		_, err = service.AddMessage(ctx, models.AddMessageRequest{
			ConversationID: conv.ID,
			Role:           entmessage.RoleAssistant,
			Content:        "Yes, it closed at 21:14.",
		})
		require.NoError(t, err)

		msgs, err := service.GetMessages(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, entmessage.RoleUser, msgs[0].Role)
		assert.Equal(t, entmessage.RoleAssistant, msgs[1].Role)
	})

	t.Run("touches the conversation timestamp", func(t *testing.T) {
		before, err := service.Get(ctx, conv.ID)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		_, err = service.AddMessage(ctx, models.AddMessageRequest{
			ConversationID: conv.ID,
			Role:           entmessage.RoleUser,
			Content:        "and the back door?",
		})
		require.NoError(t, err)

		after, err := service.Get(ctx, conv.ID)
		require.NoError(t, err)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("rejects a message without role", func(t *testing.T) {
		_, err := service.AddMessage(ctx, models.AddMessageRequest{ConversationID: conv.ID, Content: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a message for a missing conversation", func(t *testing.T) {
		_, err := service.AddMessage(ctx, models.AddMessageRequest{
			ConversationID: uuid.New().String(),
			Role:           entmessage.RoleUser,
			Content:        "x",
		})
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestConversationService_SetStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	conv, err := service.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)

	t.Run("moves forward", func(t *testing.T) {
		updated, err := service.SetStatus(ctx, conv.ID, entconversation.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, entconversation.StatusCompleted, updated.Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		updated, err := service.SetStatus(ctx, conv.ID, entconversation.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, entconversation.StatusCompleted, updated.Status)
	})

	t.Run("never moves backward", func(t *testing.T) {
		_, err := service.SetStatus(ctx, conv.ID, entconversation.StatusActive)
		assert.True(t, IsStateConflict(err))
	})
}

func TestConversationService_PurgeOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	stale, err := service.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)
	fresh, err := service.Create(ctx, models.CreateConversationRequest{UserID: "alice"})
	require.NoError(t, err)

	// Age the stale conversation directly.
	err = client.Conversation.UpdateOneID(stale.ID).
		SetUpdatedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := service.PurgeOlderThan(ctx, time.Now().Add(-365*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.Get(ctx, stale.ID)
	assert.Equal(t, ErrNotFound, err)
	_, err = service.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
