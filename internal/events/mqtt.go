// Package events publishes workshop activity to the floor displays over
// MQTT. Publishing is best effort: the REST flow never fails because a
// broker is down.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// TimelineTopicPrefix is the topic the floor displays subscribe to,
// suffixed with the work-order id.
const TimelineTopicPrefix = "workshop/timeline/"

// Publisher publishes timeline entries to an MQTT broker.
type Publisher struct {
	client mqtt.Client
}

// NewPublisher connects to the broker at brokerURL (e.g. "tcp://mqtt:1883").
func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", token.Error())
	}

	log.WithField("broker", brokerURL).Info("Connected to MQTT broker")
	return &Publisher{client: client}, nil
}

// PublishTimeline publishes a timeline entry on the work order's topic.
func (p *Publisher) PublishTimeline(workOrderID string, entry map[string]any) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline entry: %w", err)
	}

	token := p.client.Publish(TimelineTopicPrefix+workOrderID, 0, false, data)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
