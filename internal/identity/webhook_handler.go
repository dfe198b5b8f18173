package identity

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
	"github.com/Iamvlnmurthy/pepl/internal/shared/response"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	secret  string
	logger  *zap.Logger
}

// NewHandler takes the Clerk webhook signing secret (whsec_...).
func NewHandler(service Service, secret string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("identity.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.handler")
	}
	return &Handler{service: service, secret: secret, logger: l}
}

func (h *Handler) Webhook(c *gin.Context) {
	if c.GetHeader("svix-id") == "" ||
		c.GetHeader("svix-timestamp") == "" ||
		c.GetHeader("svix-signature") == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Missing svix signature headers", nil)
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Unable to read request body", nil)
		return
	}

	wh, err := svix.NewWebhook(h.secret)
	if err != nil {
		h.logger.Error("webhook secret misconfigured", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error", nil)
		return
	}

	if err := wh.Verify(payload, c.Request.Header); err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Webhook signature verification failed", nil)
		return
	}

	var event ClerkWebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Malformed webhook payload", nil)
		return
	}

	var data ClerkUserData
	if len(event.Data) > 0 {
		if err := json.Unmarshal(event.Data, &data); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Malformed user payload", nil)
			return
		}
	}

	ctx := c.Request.Context()
	switch event.Type {
	case EventUserCreated:
		err = h.service.HandleUserCreated(ctx, data)
	case EventUserUpdated:
		err = h.service.HandleUserUpdated(ctx, data)
	case EventUserDeleted:
		err = h.service.HandleUserDeleted(ctx, data)
	default:
		h.logger.Info("unhandled clerk event type", zap.String("type", event.Type))
	}

	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("clerk webhook handling failed",
			zap.String("type", event.Type),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
