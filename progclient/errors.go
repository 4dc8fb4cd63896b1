package progclient

import (
	"errors"
	"fmt"
)

// Kind 标记调用失败发生在哪个阶段，调用方可据此分支处理。
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNetworkUnavailable  // RPC 不可达或请求超时
	KindAccountNotFound     // 依赖的账户不存在（如查找表）
	KindSerializationFailed // borsh/交易序列化或账户数据解析失败
	KindSigningFailed       // 缺少必要签名者或签名失败
	KindSubmissionRejected  // 节点拒绝交易，或链上执行报错
	KindConfirmationTimeout // 确认轮询在期限内未达到目标承诺级别
)

func (k Kind) String() string {
	switch k {
	case KindNetworkUnavailable:
		return "network unavailable"
	case KindAccountNotFound:
		return "account not found"
	case KindSerializationFailed:
		return "serialization failed"
	case KindSigningFailed:
		return "signing failed"
	case KindSubmissionRejected:
		return "submission rejected"
	case KindConfirmationTimeout:
		return "confirmation timeout"
	default:
		return "unknown"
	}
}

// Error 携带失败阶段、操作名与相关 key（方法名 / 账户 / 签名），底层错误可 Unwrap。
type Error struct {
	Kind Kind
	Op   string // 出错的操作，如 SignedCall、ExtendLookupTable
	Key  string // 相关标识：指令名、账户地址或交易签名，可为空
	Err  error
}

func (e *Error) Error() string {
	if e.Key != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Key, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Key)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf 从错误链中提取 Kind，非本包错误返回 KindUnknown。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func wrapErr(kind Kind, op, key string, err error) error {
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}
