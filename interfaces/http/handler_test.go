package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidtube/domain/apperror"
	"vidtube/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	StatusCode int                   `json:"statusCode"`
	Data       json.RawMessage       `json:"data"`
	Message    string                `json:"message"`
	Success    bool                  `json:"success"`
	Errors     []apperror.FieldError `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type signupForm struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	VideoID  string `json:"videoId"  binding:"omitempty,objectid"`
}

func TestBindError(t *testing.T) {
	RegisterValidations()
	router := gin.New()
	router.POST("/", Wrap(func(c *gin.Context) error {
		var form signupForm
		if err := c.ShouldBindJSON(&form); err != nil {
			return bindError(err)
		}
		return respond(c, http.StatusOK, form, "ok")
	}))

	tests := []struct {
		name    string
		body    string
		status  int
		message string
		fields  map[string]string
	}{
		{
			name:    "field errors use json names",
			body:    `{"email":"nope","password":"short","videoId":"123"}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields: map[string]string{
				"email":    "must be a valid email",
				"password": "must be at least 8 characters",
				"videoId":  "must be a valid id",
			},
		},
		{
			name:    "missing fields",
			body:    `{}`,
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields:  map[string]string{"email": "is required", "password": "is required"},
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			status:  http.StatusBadRequest,
			message: "Invalid request body",
		},
		{
			name:   "valid",
			body:   `{"email":"a@b.io","password":"longenough","videoId":"` + bson.NewObjectID().Hex() + `"}`,
			status: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.status, body.StatusCode)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
				assert.False(t, body.Success)
			}
			got := map[string]string{}
			for _, fe := range body.Errors {
				got[fe.Field] = fe.Message
			}
			if tt.fields != nil {
				assert.Equal(t, tt.fields, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

type toggleLikes struct {
	liked map[string]bool
	err   error
}

func (s *toggleLikes) Toggle(_ context.Context, _ bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeToggle, error) {
	if s.err != nil {
		return model.LikeToggle{}, s.err
	}
	key := string(kind) + targetID
	s.liked[key] = !s.liked[key]
	return model.LikeToggle{Liked: s.liked[key]}, nil
}

func (s *toggleLikes) LikedVideos(context.Context, bson.ObjectID) ([]model.LikedVideo, error) {
	return []model.LikedVideo{}, nil
}

func (s *toggleLikes) Likes(context.Context, bson.ObjectID, model.LikeKind, string) (model.LikeSummary, error) {
	return model.LikeSummary{}, s.err
}

func TestLikeHandler_ToggleStatus(t *testing.T) {
	likes := &toggleLikes{liked: map[string]bool{}}
	handler := NewLikeHandler(likes)
	router := gin.New()
	router.POST("/toggle/v/:videoId", Wrap(handler.ToggleVideoLike))
	router.GET("/v/:videoId", Wrap(handler.VideoLikes))

	toggle := func() envelope {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/toggle/v/abc", nil))
		body := decode(t, rec)
		assert.Equal(t, rec.Code, body.StatusCode)
		return body
	}

	first := toggle()
	assert.Equal(t, http.StatusCreated, first.StatusCode)
	assert.Equal(t, "Liked successfully", first.Message)
	assert.JSONEq(t, `{"liked":true}`, string(first.Data))

	second := toggle()
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "Unliked successfully", second.Message)
	assert.JSONEq(t, `{"liked":false}`, string(second.Data))

	likes.err = apperror.NotFound("Video not found")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video not found", decode(t, rec).Message)
}

func TestWrap_HidesInternalErrors(t *testing.T) {
	router := gin.New()
	router.GET("/", Wrap(func(*gin.Context) error {
		return errors.New("dial tcp 10.0.0.1:27017: connection refused")
	}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Something went wrong", body.Message)
	assert.NotContains(t, rec.Body.String(), "27017")
}

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	healthy := NewHealthHandler(map[string]HealthCheck{"mongo": func(context.Context) error { return nil }})
	failing := NewHealthHandler(map[string]HealthCheck{"mongo": func(context.Context) error { return errors.New("down") }})
	router.GET("/ok", Wrap(healthy.Check))
	router.GET("/bad", Wrap(failing.Check))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
