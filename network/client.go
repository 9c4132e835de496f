package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/mossback/spellstorm-mp/shared/messages"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateRegistered
	StateError
)

// Row channels are best-effort bounded queues; the frame loop drains
// them every update, so they only fill if the scene stalls.
const rowBuffer = 256

// Client manages the WebSocket connection to the game server. It is the
// single owner of the connection handle; components that need to send
// hold a *Client, never a global.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	identity   string
	serverName string
	tickRate   int
	conn       *websocket.Conn

	playerRowCh        chan messages.PlayerRow
	playerRemoveCh     chan messages.PlayerRemove
	projectileRowCh    chan messages.ProjectileRow
	projectileRemoveCh chan messages.ProjectileRemove
	subAppliedCh       chan messages.SubscriptionApplied
}

func NewClient() *Client {
	return &Client{
		state:              StateDisconnected,
		playerRowCh:        make(chan messages.PlayerRow, rowBuffer),
		playerRemoveCh:     make(chan messages.PlayerRemove, rowBuffer),
		projectileRowCh:    make(chan messages.ProjectileRow, rowBuffer),
		projectileRemoveCh: make(chan messages.ProjectileRemove, rowBuffer),
		subAppliedCh:       make(chan messages.SubscriptionApplied, 1),
	}
}

// Connect dials the server in a background goroutine and registers the
// player once the socket is up.
func (c *Client) Connect(address, version, username, characterClass string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.send(messages.RegisterPlayer{
			Version:        version,
			Username:       username,
			CharacterClass: characterClass,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send register request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.RegisterAccepted) {
		log.Printf("[client] registered: identity=%s server=%s tickRate=%d",
			msg.Identity, msg.ServerName, msg.TickRate)
		c.mu.Lock()
		c.identity = msg.Identity
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.state = StateRegistered
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.RegisterRejected) {
		log.Printf("[client] registration rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("registration rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, row messages.PlayerRow) {
		pushRow(c.playerRowCh, row, "player row")
	})

	router.On(func(_ *router.NetworkClient, row messages.PlayerRemove) {
		pushRow(c.playerRemoveCh, row, "player remove")
	})

	router.On(func(_ *router.NetworkClient, row messages.ProjectileRow) {
		pushRow(c.projectileRowCh, row, "projectile row")
	})

	router.On(func(_ *router.NetworkClient, row messages.ProjectileRemove) {
		pushRow(c.projectileRemoveCh, row, "projectile remove")
	})

	router.On(func(_ *router.NetworkClient, msg messages.SubscriptionApplied) {
		select {
		case c.subAppliedCh <- msg:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// Disconnect tears the connection down. Reconnecting afterwards is a
// fresh session; no state survives.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.identity = ""
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Identity returns the server-assigned identity for this connection,
// or "" before registration completes.
func (c *Client) Identity() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// SendUpdate transmits the per-tick intent payload.
func (c *Client) SendUpdate(msg messages.UpdatePlayerInput) error {
	return c.send(msg)
}

// CastSpell issues the discrete spell action.
func (c *Client) CastSpell(spellName string) error {
	return c.send(messages.CastSpell{SpellName: spellName})
}

func (c *Client) send(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainPlayerRows returns all pending player snapshots, non-blocking.
func (c *Client) DrainPlayerRows() []messages.PlayerRow {
	return drainChan(c.playerRowCh)
}

// DrainPlayerRemoves returns all pending player deletions, non-blocking.
func (c *Client) DrainPlayerRemoves() []messages.PlayerRemove {
	return drainChan(c.playerRemoveCh)
}

// DrainProjectileRows returns all pending projectile spawns, non-blocking.
func (c *Client) DrainProjectileRows() []messages.ProjectileRow {
	return drainChan(c.projectileRowCh)
}

// DrainProjectileRemoves returns all pending projectile deletions, non-blocking.
func (c *Client) DrainProjectileRemoves() []messages.ProjectileRemove {
	return drainChan(c.projectileRemoveCh)
}

// SubscriptionApplied reports (once) that the initial row set arrived.
func (c *Client) SubscriptionApplied() bool {
	select {
	case <-c.subAppliedCh:
		return true
	default:
		return false
	}
}

func pushRow[T any](ch chan T, row T, kind string) {
	select {
	case ch <- row:
	default:
		log.Printf("[client] dropping %s: queue full", kind)
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
