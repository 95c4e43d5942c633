// internal/app/features/messages/routes.go
package messages

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the message routes. Typically: r.Mount("/mensagens", messages.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/conversation/{otherUserID}", h.ServeConversation)
	r.Get("/unread-count", h.ServeUnreadCount)
	r.Get("/unread-count-from/{senderID}", h.ServeUnreadCountFrom)

	return r
}
