package events

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
)

const defaultTopic = "tasks"

// MQTTPublisher đẩy sự kiện lên broker MQTT dưới topic <topic>/<event type>
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
	log    zerolog.Logger
}

// TopicFromURL lấy topic gốc từ path của MQTT_URL, mặc định "tasks"
func TopicFromURL(uri *url.URL) string {
	topic := strings.Trim(uri.Path, "/")
	if topic == "" {
		return defaultTopic
	}
	return topic
}

func createClientOptions(clientID string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	if uri.User != nil {
		opts.SetUsername(uri.User.Username())
		if password, ok := uri.User.Password(); ok {
			opts.SetPassword(password)
		}
	}
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	return opts
}

// ConnectMQTT kết nối tới broker chỉ định bởi rawURL, ví dụ tcp://broker:1883/tasks
func ConnectMQTT(rawURL, clientID string, log zerolog.Logger) (*MQTTPublisher, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse mqtt url: %w", err)
	}

	client := mqtt.NewClient(createClientOptions(clientID, uri))
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, fmt.Errorf("connect to mqtt broker %s: timeout", uri.Host)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", uri.Host, err)
	}

	topic := TopicFromURL(uri)
	log.Info().Str("broker", uri.Host).Str("topic", topic).Msg("connected to MQTT")
	return &MQTTPublisher{client: client, topic: topic, log: log}, nil
}

func (p *MQTTPublisher) Publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Str("event", ev.Type).Msg("marshal mqtt event")
		return
	}
	topic := p.topic + "/" + ev.Type
	token := p.client.Publish(topic, 0, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			p.log.Warn().Err(token.Error()).Str("topic", topic).Msg("publish mqtt event")
		}
	}()
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
