// Package mqtt provides MQTT communication capabilities for the bot.
// It publishes periodic status heartbeats and supports plain pub/sub.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/FlaceManagerGo/pkg/logger"
	"github.com/google/uuid"
	json "github.com/goccy/go-json"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// HeartbeatTopic is the topic the bot publishes its status to.
const HeartbeatTopic = "flace/status"

// Heartbeat is the periodic status payload published to the broker.
type Heartbeat struct {
	ClientID  string `json:"clientId"`
	Guilds    int    `json:"guilds"`
	DBOnline  bool   `json:"dbOnline"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// MqttCommunicator handles MQTT communication
type MqttCommunicator struct {
	client   mqtt.Client
	clientID string
	stopChan chan struct{}
	stopOnce sync.Once
}

var (
	communicator *MqttCommunicator
	once         sync.Once
)

// Init initializes the global MQTT communicator
func Init(host, port, username, password, clientID string) *MqttCommunicator {
	once.Do(func() {
		communicator = NewMqttCommunicator(host, port, username, password, clientID)
	})
	return communicator
}

// Get returns the global MQTT communicator
func Get() *MqttCommunicator {
	return communicator
}

// NewMqttCommunicator creates a new MQTT communicator
func NewMqttCommunicator(host, port, username, password, clientID string) *MqttCommunicator {
	mc := &MqttCommunicator{
		clientID: clientID,
		stopChan: make(chan struct{}),
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	mc.client = mqtt.NewClient(opts)

	token := mc.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return mc
}

// Destroy stops the heartbeat and closes the MQTT connection
func (mc *MqttCommunicator) Destroy() {
	mc.stopOnce.Do(func() {
		close(mc.stopChan)
	})

	if mc.client != nil && mc.client.IsConnected() {
		mc.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	} else {
		logger.Warn("El cliente MQTT no estaba conectado, no se necesita cerrar.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (mc *MqttCommunicator) IsConnected() bool {
	return mc.client != nil && mc.client.IsConnected()
}

// Publish sends a message to a topic
func (mc *MqttCommunicator) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := mc.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// StartHeartbeat publishes the status returned by collect every interval
// until Destroy is called. Publish failures are logged and do not stop
// the loop.
func (mc *MqttCommunicator) StartHeartbeat(interval time.Duration, collect func() Heartbeat) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !mc.IsConnected() {
					continue
				}

				hb := collect()
				hb.ClientID = mc.clientID
				hb.Timestamp = time.Now().Format(time.RFC3339)

				if err := mc.Publish(HeartbeatTopic, hb); err != nil {
					logger.Warn(fmt.Sprintf("Error publicando heartbeat: %v", err), "MQTT")
				}
			case <-mc.stopChan:
				return
			}
		}
	}()
}

// Subscribe subscribes to a topic with a message handler
func (mc *MqttCommunicator) Subscribe(topic string, handler func(topic string, payload []byte)) error {
	token := mc.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe unsubscribes from a topic
func (mc *MqttCommunicator) Unsubscribe(topic string) error {
	token := mc.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}
