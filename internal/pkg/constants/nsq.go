package constants

// NSQ topics and channels
const (
	// TopicDeviceEvents carries decoded panic-button events from the
	// device bridge
	TopicDeviceEvents = "device.events"

	// ChannelAlertDispatcher is the consumer channel for alert dispatch
	ChannelAlertDispatcher = "alert-dispatcher"
)
