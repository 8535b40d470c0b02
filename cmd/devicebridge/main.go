package main

import (
	"flag"
	"log"
	"time"

	"github.com/safinity/safinity/internal/pkg/config"
	"github.com/safinity/safinity/internal/pkg/constants"
	"github.com/safinity/safinity/internal/pkg/models"
	nsqpkg "github.com/safinity/safinity/internal/pkg/nsq"
)

// Publishes decoded panic-button events onto the device event topic, standing
// in for the hardware bridge during local development and integration testing.
func main() {
	var (
		address  = flag.String("nsqd", config.GetEnv("NSQ_ADDRESS", "127.0.0.1:4150"), "nsqd TCP address")
		topic    = flag.String("topic", config.GetEnv("NSQ_DEVICE_EVENTS_TOPIC", constants.TopicDeviceEvents), "device event topic")
		userID   = flag.String("user", "", "user ID the button belongs to (required)")
		deviceID = flag.String("device", "btn-local", "device identifier")
		event    = flag.String("event", models.DeviceTriplePress,
			"event to publish: connected|disconnected|reconnecting|single_press|double_press|triple_press")
	)
	flag.Parse()

	if *userID == "" {
		log.Fatal("missing required -user flag")
	}

	producer, err := nsqpkg.NewProducer(*address)
	if err != nil {
		log.Fatalf("failed to connect to nsqd at %s: %v", *address, err)
	}
	defer producer.Stop()

	msg := models.DeviceEvent{
		Event:      *event,
		UserID:     *userID,
		DeviceID:   *deviceID,
		OccurredAt: time.Now().UTC(),
	}
	if err := producer.Publish(*topic, msg); err != nil {
		log.Fatalf("failed to publish device event: %v", err)
	}

	log.Printf("published %s for user %s on %s", *event, *userID, *topic)
}
