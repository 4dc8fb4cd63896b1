package progclient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

// LoadKeypair 从文件加载签名密钥。支持两种格式：
//   - solana-cli 的 id.json（64 个字节值的 JSON 数组）
//   - base58 编码的私钥字符串
//
// 密钥校验由 SDK 的 AccountFromBytes 完成。
func LoadKeypair(path string) (types.Account, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Account{}, fmt.Errorf("read keypair file %s: %w", path, err)
	}

	content := strings.TrimSpace(string(raw))
	if strings.HasPrefix(content, "[") {
		return keypairFromJSONArray(content)
	}

	key, err := base58.Decode(content)
	if err != nil {
		return types.Account{}, fmt.Errorf("decode base58 keypair: %w", err)
	}
	acct, err := types.AccountFromBytes(key)
	if err != nil {
		return types.Account{}, fmt.Errorf("invalid keypair: %w", err)
	}
	return acct, nil
}

func keypairFromJSONArray(content string) (types.Account, error) {
	var vals []int
	if err := json.Unmarshal([]byte(content), &vals); err != nil {
		return types.Account{}, fmt.Errorf("parse keypair json: %w", err)
	}

	key := make([]byte, len(vals))
	for i, v := range vals {
		if v < 0 || v > 255 {
			return types.Account{}, fmt.Errorf("keypair json: byte out of range at index %d: %d", i, v)
		}
		key[i] = byte(v)
	}

	acct, err := types.AccountFromBytes(key)
	if err != nil {
		return types.Account{}, fmt.Errorf("invalid keypair: %w", err)
	}
	return acct, nil
}
