// internal/app/features/sendmail/send.go
package sendmail

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/system/htmlsanitize"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
)

type sendRequest struct {
	Recipient   string `json:"recipient_email" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	HTMLContent string `json:"html_content" validate:"required"`
}

// HandleSend handles POST /send-email (admin). Delivery is fire-and-forget;
// the response only confirms the email was accepted.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados do email inválidos")
		return
	}

	email := mailer.Email{
		To:       req.Recipient,
		Subject:  req.Subject,
		HTMLBody: htmlsanitize.Sanitize(req.HTMLContent),
	}
	go func() {
		if err := h.Mail.Send(email); err != nil {
			h.Log.Warn("ad-hoc email failed",
				zap.String("to", email.To),
				zap.Error(err))
		}
	}()

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("Email enviado para %s", req.Recipient),
	})
}
