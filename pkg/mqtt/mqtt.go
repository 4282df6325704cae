// Package mqtt publishes bot telemetry (status heartbeats, moderation
// events) to an MQTT broker, so external dashboards can watch the bot
// without talking to Discord. Disabled when no broker is configured.
package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ANN7660/hoshimi/pkg/logger"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher wraps the MQTT client. A nil or disabled Publisher accepts
// every call as a no-op, callers never need to guard.
type Publisher struct {
	client   mqtt.Client
	clientID string
	enabled  bool
	mu       sync.Mutex
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global publisher. An empty host disables it.
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher creates and connects a Publisher
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}
	if host == "" {
		logger.Info("MQTT disabled (no broker configured)", "MQTT")
		return p
	}

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(clientID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)

	opts.OnConnect = func(c mqtt.Client) {
		logger.Success("Connected to MQTT broker", "MQTT")
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		logger.Warn(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
	}

	p.client = mqtt.NewClient(opts)
	token := p.client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		logger.Warn(fmt.Sprintf("Could not connect to MQTT broker: %v", token.Error()), "MQTT")
		return p
	}
	p.enabled = true
	return p
}

// Publish sends a JSON payload on a topic. Failures are logged and
// swallowed, telemetry never blocks bot behavior.
func (p *Publisher) Publish(topic string, payload any) {
	if p == nil || !p.enabled {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshal MQTT payload: %v", err), "MQTT")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	token := p.client.Publish(p.clientID+"/"+topic, 0, false, data)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			logger.Warn(fmt.Sprintf("MQTT publish to %s failed: %v", topic, token.Error()), "MQTT")
		}
	}()
}

// PublishStatus sends a status heartbeat.
func (p *Publisher) PublishStatus(online bool, guilds int) {
	p.Publish("status", map[string]any{
		"online": online,
		"guilds": guilds,
		"at":     time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishModeration sends a moderation event (warn, mute, ...).
func (p *Publisher) PublishModeration(action, guildID, userID, moderatorID string) {
	p.Publish("moderation", map[string]any{
		"action":    action,
		"guild":     guildID,
		"user":      userID,
		"moderator": moderatorID,
		"at":        time.Now().UTC().Format(time.RFC3339),
	})
}

// Destroy disconnects from the broker
func (p *Publisher) Destroy() {
	if p == nil || !p.enabled {
		return
	}
	p.client.Disconnect(250)
	p.enabled = false
}
