package middlewares

import (
	"fmt"
	"net/http"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// SubscriptionRequired blocks dashboard traffic while the session's
// subscription flag is false. The 402 body always carries exactly two
// actions, pay and logout; no other route out of the gate exists.
func (m *Middlewares) SubscriptionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.SessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
			return
		}

		if !session.SubscriptionActive {
			m.Log.Info("subscription gate shown",
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingRoleKey, string(session.Role)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			m.renderGate(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) renderGate(w http.ResponseWriter) {
	base := fmt.Sprintf("/%s/%s", m.InternalConfig.App.EndpointPrefix, m.InternalConfig.App.Version)

	gate := responses.SubscriptionGate{
		Message: constvars.ErrClientSubscriptionInactive,
		Actions: []responses.GateAction{
			{Label: "Pay now", Method: http.MethodPost, Path: base + "/subscriptions/pay"},
			{Label: "Log out", Method: http.MethodPost, Path: base + "/auth/logout"},
		},
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: constvars.ErrClientSubscriptionInactive,
		Data:    gate,
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(http.StatusPaymentRequired)
	json.NewEncoder(w).Encode(response)
}
