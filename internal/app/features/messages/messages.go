// internal/app/features/messages/messages.go
package messages

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type createRequest struct {
	MenteeUserID string `json:"mentorada_user_id" validate:"required"`
	SenderUserID string `json:"sender_user_id" validate:"required"`
	Body         string `json:"message" validate:"required"`
}

// HandleCreate handles POST /mensagens. The declared sender must be the
// caller; admins get no exception here.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da mensagem inválidos")
		return
	}
	if err := h.Policy.DecideMessageCreate(ownership.SubjectFor(user), req.SenderUserID); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	message := models.Message{
		ID:           uuid.NewString(),
		MenteeUserID: req.MenteeUserID,
		SenderUserID: req.SenderUserID,
		Body:         req.Body,
		Read:         false,
		CreatedAt:    store.Now(),
	}
	if err := h.Store.InsertMessage(ctx, &message); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, message)
}

// ServeConversation handles GET /mensagens/conversation/{otherUserID}: the
// full thread between the caller and the other party, oldest first.
// Messages addressed to the caller are marked read as a side effect.
func (h *Handler) ServeConversation(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	otherID := chi.URLParam(r, "otherUserID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	thread, err := h.Store.MessagesBetween(ctx, user.ID, otherID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	for i := range thread {
		m := &thread[i]
		if m.MenteeUserID == user.ID && m.SenderUserID == otherID && !m.Read {
			if err := h.Store.MarkMessageRead(ctx, m.ID); err != nil {
				h.Log.Warn("mark message read failed",
					zap.String("mensagem_id", m.ID), zap.Error(err))
				continue
			}
			m.Read = true
		}
	}
	httpjson.Respond(w, http.StatusOK, thread)
}

// ServeUnreadCount handles GET /mensagens/unread-count: unread messages
// addressed to the caller.
func (h *Handler) ServeUnreadCount(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Store.UnreadCount(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]int64{"unread_count": count})
}

// ServeUnreadCountFrom handles GET /mensagens/unread-count-from/{senderID}:
// unread messages a given mentee wrote, used by the mentor's inbox badges.
func (h *Handler) ServeUnreadCountFrom(w http.ResponseWriter, r *http.Request) {
	senderID := chi.URLParam(r, "senderID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Store.UnreadCountFromMentee(ctx, senderID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]int64{"unread_count": count})
}
