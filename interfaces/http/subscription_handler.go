package http

import (
	"net/http"

	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context) error
	Subscribers(c *gin.Context) error
	SubscribedChannels(c *gin.Context) error
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) error {
	res, err := h.subscriptionUsecase.Toggle(c.Request.Context(), middleware.CurrentUserID(c), c.Param("channelId"))
	if err != nil {
		return err
	}
	if res.Subscribed {
		return respond(c, http.StatusCreated, res, "Subscribed successfully")
	}
	return respond(c, http.StatusOK, res, "Unsubscribed successfully")
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) error {
	users, err := h.subscriptionUsecase.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, users, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) error {
	channels, err := h.subscriptionUsecase.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
