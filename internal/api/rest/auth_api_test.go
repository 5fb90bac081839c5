package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-client/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProfileServer(t *testing.T, gotAuth, gotUserID *string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/profile/5", func(c *gin.Context) {
		*gotAuth = c.GetHeader("Authorization")
		*gotUserID = c.GetHeader("User-ID")
		c.JSON(http.StatusOK, gin.H{
			"id":       5,
			"username": "carol",
			"email":    "carol@example.com",
			"role":     "user",
			"isActive": true,
		})
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestGetProfileAttachesCredential(t *testing.T) {
	var gotAuth, gotUserID string
	server := newProfileServer(t, &gotAuth, &gotUserID)

	api := NewAuthAPI(transport.NewClient(server.URL, 5*time.Second, transport.AuthModeBearer))
	cred := &transport.Credential{UserID: 5, Token: "token-abc"}
	user, err := api.GetProfile(context.Background(), 5, cred)

	assert.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Empty(t, gotUserID)
}

func TestGetProfileAttachesUserIDHeaderInLegacyMode(t *testing.T) {
	var gotAuth, gotUserID string
	server := newProfileServer(t, &gotAuth, &gotUserID)

	api := NewAuthAPI(transport.NewClient(server.URL, 5*time.Second, transport.AuthModeUserID))
	cred := &transport.Credential{UserID: 5, Token: "token-abc"}
	_, err := api.GetProfile(context.Background(), 5, cred)

	assert.NoError(t, err)
	assert.Equal(t, "5", gotUserID)
	assert.Empty(t, gotAuth)
}

func TestGetProfileWithoutCredentialSendsNoAuthHeaders(t *testing.T) {
	var gotAuth, gotUserID string
	server := newProfileServer(t, &gotAuth, &gotUserID)

	api := NewAuthAPI(transport.NewClient(server.URL, 5*time.Second, transport.AuthModeBearer))
	_, err := api.GetProfile(context.Background(), 5, nil)

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Empty(t, gotUserID)
}
