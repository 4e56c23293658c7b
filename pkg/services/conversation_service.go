package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	entconversation "github.com/aether-home/aether/ent/conversation"
	entmessage "github.com/aether-home/aether/ent/message"
	"github.com/aether-home/aether/pkg/models"
	"github.com/google/uuid"
)

// conversationStatusRank orders conversation statuses. Status only
// moves forward: active < completed < archived.
var conversationStatusRank = map[entconversation.Status]int{
	entconversation.StatusActive:    0,
	entconversation.StatusCompleted: 1,
	entconversation.StatusArchived:  2,
}

// ConversationService provides persistence for conversations and their
// message transcripts.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// Create persists a new conversation. When req.ID is empty a random
// identifier is assigned.
func (s *ConversationService) Create(httpCtx context.Context, req models.CreateConversationRequest) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	conv, err := s.client.Conversation.Create().
		SetID(id).
		SetUserID(req.UserID).
		SetTitle(req.Title).
		SetStatus(entconversation.StatusActive).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// GetOrCreate returns the conversation with the given id, creating it
// when it does not exist yet. New streams derive the id from the first
// user message, so retries of the same request converge on one row.
func (s *ConversationService) GetOrCreate(httpCtx context.Context, id, userID string) (*ent.Conversation, error) {
	if id == "" {
		return nil, NewValidationError("conversation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, id)
	if err == nil {
		return conv, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	conv, err = s.client.Conversation.Create().
		SetID(id).
		SetUserID(userID).
		SetStatus(entconversation.StatusActive).
		Save(ctx)
	if err != nil {
		// Lost a create race; the other writer's row is the one we want.
		if ent.IsConstraintError(err) {
			return s.client.Conversation.Get(ctx, id)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// Get returns a conversation by id.
func (s *ConversationService) Get(httpCtx context.Context, id string) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// List returns conversations for a user, most recently updated first.
func (s *ConversationService) List(httpCtx context.Context, userID string, limit int) ([]*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.Conversation.Query()
	if userID != "" {
		q = q.Where(entconversation.UserIDEQ(userID))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := q.
		Order(ent.Desc(entconversation.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return items, nil
}

// AddMessage appends a message to a conversation transcript and bumps
// the conversation's updated-at timestamp.
func (s *ConversationService) AddMessage(httpCtx context.Context, req models.AddMessageRequest) (*ent.Message, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(req.ConversationID).
		SetRole(req.Role).
		SetContent(req.Content)
	if len(req.ToolCalls) > 0 {
		create = create.SetToolCalls(req.ToolCalls)
	}
	if req.ToolCallID != "" {
		create = create.SetToolCallID(req.ToolCallID)
	}
	if req.ToolName != "" {
		create = create.SetToolName(req.ToolName)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	err = s.client.Conversation.UpdateOneID(req.ConversationID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}
	return msg, nil
}

// GetMessages returns a conversation's transcript in insertion order.
func (s *ConversationService) GetMessages(httpCtx context.Context, conversationID string) ([]*ent.Message, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msgs, err := s.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(entmessage.FieldCreatedAt), ent.Asc(entmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return msgs, nil
}

// SetStatus advances a conversation's status. Status is monotonic;
// moving backwards is a state conflict.
func (s *ConversationService) SetStatus(httpCtx context.Context, id string, status entconversation.Status) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if conversationStatusRank[status] < conversationStatusRank[conv.Status] {
		return nil, NewStateConflictError("conversation", string(conv.Status), "set status "+string(status))
	}
	if conv.Status == status {
		return conv, nil
	}

	updated, err := conv.Update().SetStatus(status).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update conversation status: %w", err)
	}
	return updated, nil
}

// SetTitle stores a generated or user-supplied title.
func (s *ConversationService) SetTitle(httpCtx context.Context, id, title string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.Conversation.UpdateOneID(id).SetTitle(title).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set conversation title: %w", err)
	}
	return nil
}

// PurgeOlderThan deletes conversations not updated within the retention
// window. Messages go with them via the cascade edge.
func (s *ConversationService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Conversation.Delete().
		Where(entconversation.UpdatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge conversations: %w", err)
	}
	return n, nil
}
