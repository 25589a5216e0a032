// Package ble connects to GoCube smart cubes over Bluetooth Low Energy.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/chintanlad10/cubesolver/internal/protocol"
)

// Errors
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
)

// BLE UUIDs
var (
	serviceUUID = bluetooth.NewUUID(mustParseUUID(protocol.ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(mustParseUUID(protocol.TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(mustParseUUID(protocol.RxCharUUID))
)

func mustParseUUID(s string) [16]byte {
	var uuid [16]byte
	clean := strings.ReplaceAll(s, "-", "")
	for i := 0; i < 16; i++ {
		var b byte
		fmt.Sscanf(clean[i*2:i*2+2], "%02x", &b)
		uuid[i] = b
	}
	return uuid
}

// Client manages the BLE connection to a smart cube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	txChar  bluetooth.DeviceCharacteristic
	rxChar  bluetooth.DeviceCharacteristic

	mu         sync.RWMutex
	connected  bool
	deviceName string

	onMessage func(*protocol.Message)
}

// NewClient creates a BLE client on the default adapter.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter}, nil
}

// SetMessageCallback sets the callback for incoming messages.
func (c *Client) SetMessageCallback(cb func(*protocol.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// ConnectFirst scans for the first GoCube device and connects to it.
func (c *Client) ConnectFirst(ctx context.Context, timeout time.Duration) error {
	c.mu.RLock()
	if c.connected {
		c.mu.RUnlock()
		return ErrAlreadyConnected
	}
	c.mu.RUnlock()

	var targetAddr bluetooth.Address
	var targetName string
	found := make(chan struct{})
	var foundOnce sync.Once

	go func() {
		c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			if strings.HasPrefix(strings.ToLower(name), "gocube") {
				targetAddr = result.Address
				targetName = name
				foundOnce.Do(func() { close(found) })
			}
		})
	}()

	select {
	case <-found:
		c.adapter.StopScan()
	case <-time.After(timeout):
		c.adapter.StopScan()
		return ErrDeviceNotFound
	case <-ctx.Done():
		c.adapter.StopScan()
		return ctx.Err()
	}

	device, err := c.adapter.Connect(targetAddr, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return fmt.Errorf("cube service not found")
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		if ch.UUID() == txCharUUID {
			txChar = ch
		} else if ch.UUID() == rxCharUUID {
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.txChar = txChar
	c.rxChar = rxChar
	c.connected = true
	c.deviceName = targetName
	c.mu.Unlock()

	return nil
}

// handleNotification parses raw notifications and forwards them.
func (c *Client) handleNotification(data []byte) {
	msg, err := protocol.ParseMessage(data)
	if err != nil {
		// garbled frames happen mid-connection; drop them
		return
	}

	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()

	if cb != nil {
		cb(msg)
	}
}

// SendCommand writes a framed command to the cube.
func (c *Client) SendCommand(cmdCode byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected {
		return ErrNotConnected
	}
	_, err := c.rxChar.WriteWithoutResponse(protocol.BuildCommand(cmdCode))
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	return nil
}

// DeviceName returns the connected device's advertised name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Close disconnects from the device.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	c.connected = false
	return c.device.Disconnect()
}
