package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/tower-race/internal/protocol"
)

// SimpleClient 轻量客户端实现，记录收到的所有消息
type SimpleClient struct {
	ID   string
	Name string
	Room string

	mu       sync.Mutex
	Messages []*protocol.Message
	Closed   bool
}

// NewSimpleClient 创建测试客户端
func NewSimpleClient(id string) *SimpleClient {
	return &SimpleClient{ID: id}
}

func (c *SimpleClient) GetID() string       { return c.ID }
func (c *SimpleClient) GetName() string     { return c.Name }
func (c *SimpleClient) SetName(name string) { c.Name = name }
func (c *SimpleClient) GetRoom() string     { return c.Room }
func (c *SimpleClient) SetRoom(code string) { c.Room = code }

func (c *SimpleClient) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, msg)
}

func (c *SimpleClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Closed = true
}

// LastMessage 返回最后收到的消息，没有则返回 nil
func (c *SimpleClient) LastMessage() *protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessagesOfType 返回指定类型的所有消息
func (c *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result []*protocol.Message
	for _, m := range c.Messages {
		if m.Type == msgType {
			result = append(result, m)
		}
	}
	return result
}

// MockClient 基于 testify/mock 的客户端，用于验证调用
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetName(name string) {
	m.Called(name)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(code string) {
	m.Called(code)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}
