package mpris

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

// Bus is the narrow slice of session-bus functionality the controller
// needs. The production implementation speaks D-Bus via godbus; tests
// substitute a mock.
type Bus interface {
	// ListNames returns all well-known names registered on the bus.
	ListNames(ctx context.Context) ([]string, error)

	// Call invokes a method with no arguments on the object at path
	// owned by dest. Method is the fully qualified name
	// ("iface.Member").
	Call(ctx context.Context, dest, path, method string) error

	// GetProperty reads a property via org.freedesktop.DBus.Properties
	// and returns the raw reply value. Depending on the peer this may
	// be a bare value or a dbus.Variant wrapping it.
	GetProperty(ctx context.Context, dest, path, iface, prop string) (interface{}, error)
}

// sessionBus implements Bus on the user's session bus. The connection
// is dialed lazily on first use and cached for the life of the process;
// a failed dial is not cached, so a later call retries.
type sessionBus struct {
	address string

	mu   sync.RWMutex
	conn *dbus.Conn
}

// NewSessionBus returns a Bus backed by the user's session bus. If
// address is non-empty it is dialed instead of the address from the
// environment.
func NewSessionBus(address string) Bus {
	return &sessionBus{address: address}
}

func (b *sessionBus) connect() (*dbus.Conn, error) {
	b.mu.RLock()
	if conn := b.conn; conn != nil {
		b.mu.RUnlock()
		return conn, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		return b.conn, nil
	}

	var (
		conn *dbus.Conn
		err  error
	)
	if b.address != "" {
		conn, err = dbus.Connect(b.address)
	} else {
		conn, err = dbus.SessionBus()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	b.conn = conn
	return conn, nil
}

func (b *sessionBus) ListNames(ctx context.Context) ([]string, error) {
	conn, err := b.connect()
	if err != nil {
		return nil, err
	}

	var names []string
	obj := conn.Object(busName, busPath)
	if err := obj.CallWithContext(ctx, listNamesMethod, 0).Store(&names); err != nil {
		return nil, fmt.Errorf("failed to list bus names: %w", err)
	}
	return names, nil
}

func (b *sessionBus) Call(ctx context.Context, dest, path, method string) error {
	conn, err := b.connect()
	if err != nil {
		return err
	}
	return conn.Object(dest, dbus.ObjectPath(path)).CallWithContext(ctx, method, 0).Err
}

func (b *sessionBus) GetProperty(ctx context.Context, dest, path, iface, prop string) (interface{}, error) {
	conn, err := b.connect()
	if err != nil {
		return nil, err
	}

	call := conn.Object(dest, dbus.ObjectPath(path)).CallWithContext(ctx, propertiesGet, 0, iface, prop)
	if call.Err != nil {
		return nil, call.Err
	}
	if len(call.Body) == 0 {
		return nil, fmt.Errorf("empty reply reading %s.%s from %s", iface, prop, dest)
	}
	return call.Body[0], nil
}
