// Package publish streams sampled colors to an MQTT broker.
package publish

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"honnef.co/go/huecurve"
	"honnef.co/go/huecurve/gradient"
)

// DefaultTimeout is how long Publish waits for the broker by default.
const DefaultTimeout = 2 * time.Second

// ErrTimeout is returned when the broker doesn't acknowledge a frame in time.
var ErrTimeout = errors.New("publish: timed out")

// Client is the part of [mqtt.Client] used by a Publisher.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher sends color frames to an MQTT topic.
type Publisher struct {
	client  Client
	topic   string
	qos     byte
	timeout time.Duration

	g        *gradient.Gradient
	listener *huecurve.Listener[[]gradient.Color]
}

type Option func(*Publisher)

// WithQoS sets the MQTT quality of service level. The default is 0.
func WithQoS(qos byte) Option {
	return func(p *Publisher) { p.qos = qos }
}

// WithTimeout sets how long Publish waits for each frame to be sent.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.timeout = d }
}

func New(client Client, topic string, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		topic:   topic,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends colors as a single [Frame] and waits for it to be sent.
func (p *Publisher) Publish(colors []gradient.Color) error {
	data, err := Frame(colors).MarshalBinary()
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, p.qos, false, data)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: %w", p.topic, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Attach publishes every color update of g. Failures are logged and don't
// interrupt the update. Attaching replaces any previously attached gradient.
func (p *Publisher) Attach(g *gradient.Gradient) {
	p.Detach()
	p.g = g
	p.listener = g.OnUpdate(func(colors []gradient.Color) {
		if err := p.Publish(colors); err != nil {
			huecurve.Logger().Warn("couldn't publish colors", "topic", p.topic, "err", err)
			return
		}
		huecurve.Logger().Debug("published colors", "topic", p.topic, "count", len(colors))
	})
}

// Detach stops publishing updates.
func (p *Publisher) Detach() {
	if p.g != nil {
		p.g.OffUpdate(p.listener)
		p.g, p.listener = nil, nil
	}
}

// Connect connects to the MQTT broker at url.
func Connect(url, clientID, username, password string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(url).
		SetClientID(clientID).
		SetUsername(username).
		SetPassword(password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			huecurve.Logger().Info("connected to broker", "url", url)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			huecurve.Logger().Warn("lost connection to broker", "url", url, "err", err)
		})
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connect to %s: %w", url, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}
	return client, nil
}
