package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-client/internal/errors"
	"social-client/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newFakeServer 按服务端契约搭建测试服务
func newFakeServer(t *testing.T) (*httptest.Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, router
}

func newTestClient(baseURL string, mode AuthMode) *Client {
	return NewClient(baseURL, 5*time.Second, mode)
}

func TestExecuteDecodesSuccessPayload(t *testing.T) {
	server, router := newFakeServer(t)
	router.GET("/profile/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":       1,
			"username": "alice",
			"email":    "alice@example.com",
			"role":     "user",
			"isActive": true,
		})
	})

	client := newTestClient(server.URL, AuthModeBearer)
	user, err := Execute[Empty, model.User](context.Background(), client, http.MethodGet, server.URL+"/profile/1", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestExecuteReturnsRawTextForStringResponse(t *testing.T) {
	server, router := newFakeServer(t)
	router.DELETE("/posts/9", func(c *gin.Context) {
		c.String(http.StatusOK, "Post deleted successfully")
	})

	client := newTestClient(server.URL, AuthModeBearer)
	text, err := Execute[Empty, string](context.Background(), client, http.MethodDelete, server.URL+"/posts/9", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Post deleted successfully", text)
}

func TestExecuteClassifiesStructuredErrorBody(t *testing.T) {
	server, router := newFakeServer(t)
	router.GET("/posts/404", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "post not found",
			"details": "no post with id 404",
		})
	})

	client := newTestClient(server.URL, AuthModeBearer)
	_, err := Execute[Empty, model.PostDTO](context.Background(), client, http.MethodGet, server.URL+"/posts/404", nil, nil)

	assert.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	assert.True(t, ok)
	assert.Equal(t, errors.KindServerError, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "post not found", apiErr.Message)
	assert.Equal(t, "no post with id 404", apiErr.Details)
}

func TestExecuteClassifiesUnparseableErrorBody(t *testing.T) {
	server, router := newFakeServer(t)
	router.GET("/boom", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "<html>oops</html>")
	})

	client := newTestClient(server.URL, AuthModeBearer)
	_, err := Execute[Empty, model.User](context.Background(), client, http.MethodGet, server.URL+"/boom", nil, nil)

	assert.True(t, errors.IsKind(err, errors.KindServerStatus))
	assert.Equal(t, http.StatusInternalServerError, err.(*errors.APIError).Status)
}

func TestExecuteClassifiesDecodingFailure(t *testing.T) {
	server, router := newFakeServer(t)
	router.GET("/posts", func(c *gin.Context) {
		c.String(http.StatusOK, "not json at all")
	})

	client := newTestClient(server.URL, AuthModeBearer)
	_, err := Execute[Empty, []model.PostDTO](context.Background(), client, http.MethodGet, server.URL+"/posts", nil, nil)

	assert.True(t, errors.IsKind(err, errors.KindDecoding))
}

func TestExecuteClassifiesTransportFailure(t *testing.T) {
	server, _ := newFakeServer(t)
	target := server.URL + "/posts"
	server.Close()

	client := newTestClient(server.URL, AuthModeBearer)
	_, err := Execute[Empty, []model.PostDTO](context.Background(), client, http.MethodGet, target, nil, nil)

	assert.True(t, errors.IsKind(err, errors.KindTransport))
}

func TestExecuteClassifiesEncodingFailureBeforeSending(t *testing.T) {
	server, router := newFakeServer(t)
	received := 0
	router.POST("/posts", func(c *gin.Context) {
		received++
		c.JSON(http.StatusOK, gin.H{})
	})

	type unserializable struct {
		Fn func() `json:"fn"`
	}

	client := newTestClient(server.URL, AuthModeBearer)
	body := &unserializable{Fn: func() {}}
	_, err := Execute[unserializable, model.PostDTO](context.Background(), client, http.MethodPost, server.URL+"/posts", body, nil)

	assert.True(t, errors.IsKind(err, errors.KindEncoding))
	assert.Equal(t, 0, received)
}

func TestExecuteRejectsInvalidTarget(t *testing.T) {
	client := newTestClient("http://localhost:1", AuthModeBearer)

	_, err := Execute[Empty, model.User](context.Background(), client, http.MethodGet, "://bad-target", nil, nil)
	assert.True(t, errors.IsKind(err, errors.KindInvalidTarget))

	_, err = Execute[Empty, model.User](context.Background(), client, "TRACE", "http://localhost:1/x", nil, nil)
	assert.True(t, errors.IsKind(err, errors.KindInvalidTarget))
}

func TestExecuteAttachesBearerToken(t *testing.T) {
	server, router := newFakeServer(t)
	var gotAuth, gotUserID string
	router.POST("/posts/7/like", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotUserID = c.GetHeader("User-ID")
		c.String(http.StatusOK, "liked")
	})

	client := newTestClient(server.URL, AuthModeBearer)
	cred := &Credential{UserID: 3, Token: "token-abc"}
	_, err := Execute[Empty, string](context.Background(), client, http.MethodPost, server.URL+"/posts/7/like", nil, cred)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Empty(t, gotUserID)
}

func TestExecuteAttachesUserIDHeaderInLegacyMode(t *testing.T) {
	server, router := newFakeServer(t)
	var gotAuth, gotUserID string
	router.POST("/posts/7/like", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotUserID = c.GetHeader("User-ID")
		c.String(http.StatusOK, "liked")
	})

	client := newTestClient(server.URL, AuthModeUserID)
	cred := &Credential{UserID: 3, Token: "token-abc"}
	_, err := Execute[Empty, string](context.Background(), client, http.MethodPost, server.URL+"/posts/7/like", nil, cred)

	assert.NoError(t, err)
	assert.Equal(t, "3", gotUserID)
	assert.Empty(t, gotAuth)
}

func TestExecuteSendsContentTypeAndRequestID(t *testing.T) {
	server, router := newFakeServer(t)
	var contentType, requestID string
	router.POST("/register", func(c *gin.Context) {
		contentType = c.GetHeader("Content-Type")
		requestID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusCreated, gin.H{"id": 1, "username": "alice", "email": "a@b.c", "role": "user", "isActive": true})
	})

	client := newTestClient(server.URL, AuthModeBearer)
	body := &model.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "secret1"}
	_, err := Execute[model.RegisterRequest, model.User](context.Background(), client, http.MethodPost, server.URL+"/register", body, nil)

	assert.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.NotEmpty(t, requestID)
}
