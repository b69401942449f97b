package mpris

import (
	"context"
	"fmt"
)

type busCall struct {
	Dest   string
	Method string
}

// MockBus is a scripted Bus for tests: Names drives discovery, Statuses
// holds raw PlaybackStatus reply values per player, CallErrs fails
// specific dispatches, and Calls records every dispatch in order.
type MockBus struct {
	Names     []string
	ListErr   error
	Statuses  map[string]interface{}
	StatusErr map[string]error
	CallErrs  map[busCall]error

	Calls  []busCall
	Probes []string
}

func (m *MockBus) ListNames(ctx context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Names, nil
}

func (m *MockBus) Call(ctx context.Context, dest, path, method string) error {
	call := busCall{Dest: dest, Method: method}
	m.Calls = append(m.Calls, call)
	if err, ok := m.CallErrs[call]; ok {
		return err
	}
	return nil
}

func (m *MockBus) GetProperty(ctx context.Context, dest, path, iface, prop string) (interface{}, error) {
	m.Probes = append(m.Probes, dest)
	if err, ok := m.StatusErr[dest]; ok {
		return nil, err
	}
	v, ok := m.Statuses[dest]
	if !ok {
		return nil, fmt.Errorf("mock: no status scripted for %s", dest)
	}
	return v, nil
}

// Ensure MockBus satisfies the Bus interface
var _ Bus = &MockBus{}
