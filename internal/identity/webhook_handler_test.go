package identity_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

type fakeWebhookService struct {
	CreatedFn func(ctx context.Context, data identity.ClerkUserData) error
	UpdatedFn func(ctx context.Context, data identity.ClerkUserData) error
	DeletedFn func(ctx context.Context, data identity.ClerkUserData) error
}

func (f *fakeWebhookService) HandleUserCreated(ctx context.Context, data identity.ClerkUserData) error {
	if f.CreatedFn != nil {
		return f.CreatedFn(ctx, data)
	}
	return nil
}
func (f *fakeWebhookService) HandleUserUpdated(ctx context.Context, data identity.ClerkUserData) error {
	if f.UpdatedFn != nil {
		return f.UpdatedFn(ctx, data)
	}
	return nil
}
func (f *fakeWebhookService) HandleUserDeleted(ctx context.Context, data identity.ClerkUserData) error {
	if f.DeletedFn != nil {
		return f.DeletedFn(ctx, data)
	}
	return nil
}

// signPayload reproduces the svix v1 signature scheme.
func signPayload(t *testing.T, msgID, timestamp, payload string) string {
	t.Helper()

	secret, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(testWebhookSecret, "whsec_"))
	assert.NoError(t, err)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(fmt.Sprintf("%s.%s.%s", msgID, timestamp, payload)))
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func signedRequest(t *testing.T, payload string) *http.Request {
	t.Helper()

	msgID := "msg_test"
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", msgID)
	req.Header.Set("svix-timestamp", timestamp)
	req.Header.Set("svix-signature", signPayload(t, msgID, timestamp, payload))
	return req
}

func TestWebhookHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing svix headers", func(t *testing.T) {
		h := identity.NewHandler(&fakeWebhookService{}, testWebhookSecret)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(`{}`))

		h.Webhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_SIGNATURE")
	})

	t.Run("bad signature", func(t *testing.T) {
		h := identity.NewHandler(&fakeWebhookService{}, testWebhookSecret)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", strings.NewReader(`{}`))
		req.Header.Set("svix-id", "msg_test")
		req.Header.Set("svix-timestamp", fmt.Sprintf("%d", time.Now().Unix()))
		req.Header.Set("svix-signature", "v1,invalid")
		c.Request = req

		h.Webhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("user.created dispatched", func(t *testing.T) {
		dispatched := false
		svc := &fakeWebhookService{
			CreatedFn: func(ctx context.Context, data identity.ClerkUserData) error {
				dispatched = true
				assert.Equal(t, "user_abc", data.ID)
				return nil
			},
		}

		h := identity.NewHandler(svc, testWebhookSecret)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		payload := `{"type":"user.created","data":{"id":"user_abc","first_name":"Ravi","email_addresses":[{"id":"em_1","email_address":"ravi@example.com"}]}}`
		c.Request = signedRequest(t, payload)

		h.Webhook(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, dispatched)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("unknown event type acknowledged", func(t *testing.T) {
		h := identity.NewHandler(&fakeWebhookService{}, testWebhookSecret)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		payload := `{"type":"session.created","data":{}}`
		c.Request = signedRequest(t, payload)

		h.Webhook(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})
}
