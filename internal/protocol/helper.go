package protocol

import (
	"encoding/json"
	"fmt"
)

// NewMessage 构造一条消息，payload 为 nil 时不携带负载
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload == nil {
		return msg, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化 %s 负载失败: %w", msgType, err)
	}
	msg.Payload = data
	return msg, nil
}

// MustNewMessage 构造消息，序列化失败时 panic。
// 仅用于服务端自有的负载类型，这些类型序列化不会失败。
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 编码为 JSON 帧
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode 从 JSON 帧解码消息信封
func Decode(data []byte) (*Message, error) {
	msg := &Message{}
	if err := json.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ParsePayload 将消息负载解析为具体类型
func ParsePayload[T any](msg *Message) (*T, error) {
	payload := new(T)
	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// NewErrorMessage 按错误码构造错误消息，文案取自 ErrorMessages 注册表
func NewErrorMessage(code int) *Message {
	return NewErrorMessageWithText(code, ErrorMessages[code])
}

// NewErrorMessageWithText 构造带自定义文案的错误消息
func NewErrorMessageWithText(code int, text string) *Message {
	return MustNewMessage(MsgError, ErrorPayload{
		Code:    code,
		Message: text,
	})
}
