package realtime

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidtube/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishRoutesToTarget(t *testing.T) {
	h := NewNotificationHub()
	target := h.subscribe("owner")
	other := h.subscribe("someone-else")

	require.NoError(t, h.Publish(context.Background(), model.Event{Type: model.EventLikeCreated, ActorID: "fan", TargetUserID: "owner"}))

	select {
	case evt := <-target:
		assert.Equal(t, model.EventLikeCreated, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("target did not receive event")
	}
	assert.Empty(t, other)
}

func TestHub_SkipsSelfNotifications(t *testing.T) {
	h := NewNotificationHub()
	ch := h.subscribe("owner")

	require.NoError(t, h.Publish(context.Background(), model.Event{Type: model.EventCommentCreated, ActorID: "owner", TargetUserID: "owner"}))
	assert.Empty(t, ch)
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewNotificationHub()
	ch := h.subscribe("owner")
	assert.Equal(t, 1, h.Subscribers("owner"))

	h.unsubscribe("owner", ch)
	assert.Equal(t, 0, h.Subscribers("owner"))
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_ServeStreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHub()
	router := gin.New()
	router.GET("/stream", func(c *gin.Context) {
		c.Set("user_id", "owner")
		h.Serve(c)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	reader := bufio.NewReader(res.Body)
	first, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ":ok\n", first)

	require.Eventually(t, func() bool { return h.Subscribers("owner") == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, h.Publish(ctx, model.Event{Type: model.EventSubscriptionCreated, ActorID: "fan", TargetUserID: "owner"}))

	var lines []string
	for len(lines) < 3 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
		if strings.HasPrefix(line, "data: ") {
			break
		}
	}
	assert.Contains(t, lines, "event: subscription.created")
}

func TestHub_ServeRequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/stream", nil)

	NewNotificationHub().Serve(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
