package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/constants"
	"github.com/safinity/safinity/internal/pkg/models"
	nsqpkg "github.com/safinity/safinity/internal/pkg/nsq"
	"github.com/safinity/safinity/services/alert/handler/http"
	"github.com/safinity/safinity/services/alert/handler/nsq"
)

// Handler coordinates the HTTP and NSQ handlers for the alert service
type Handler struct {
	alertHandler  *http.AlertHandler
	deviceHandler *nsq.DeviceEventHandler
	consumer      *nsqpkg.Consumer
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	alertHandler *http.AlertHandler,
	deviceHandler *nsq.DeviceEventHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		alertHandler:  alertHandler,
		deviceHandler: deviceHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the alert service HTTP routes behind the given
// middleware
func (h *Handler) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	alerts := e.Group("/alerts", middleware...)
	alerts.POST("/dispatch", h.alertHandler.Dispatch)
}

// StartDeviceConsumer subscribes to the device event topic
func (h *Handler) StartDeviceConsumer() error {
	topic := h.cfg.NSQ.DeviceEventsTopic
	if topic == "" {
		topic = constants.TopicDeviceEvents
	}
	channel := h.cfg.NSQ.Channel
	if channel == "" {
		channel = constants.ChannelAlertDispatcher
	}

	consumer, err := nsqpkg.NewConsumer(topic, channel, h.cfg.NSQ.Address, h.deviceHandler.HandleMessage)
	if err != nil {
		return err
	}
	h.consumer = consumer

	if len(h.cfg.NSQ.LookupdAddrs) > 0 {
		return consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddrs)
	}
	return nil
}

// Stop shuts down the NSQ consumer
func (h *Handler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
