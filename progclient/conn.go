package progclient

import (
	"context"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// Conn 是本包依赖的 RPC 能力面，仅包含提交路径需要的方法。
// *Client 是基于 blocto SDK 的默认实现；测试可用 fake 替换。
type Conn interface {
	GetLatestBlockhash(ctx context.Context) (string, error)
	GetSlot(ctx context.Context) (uint64, error)
	GetAccountInfo(ctx context.Context, base58Addr string) (client.AccountInfo, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
	// SendEncodedTransaction 走原始 sendTransaction RPC，交易需已 base64 编码。
	SendEncodedTransaction(ctx context.Context, base64Tx string, cfg rpc.SendTransactionConfig) (string, error)
	GetSignatureStatus(ctx context.Context, sig string) (*rpc.SignatureStatus, error)
}

// Client 包装 blocto SDK 客户端以实现 Conn。
type Client struct {
	c *client.Client
}

func NewClient(endpoint string) *Client {
	return &Client{c: client.NewClient(endpoint)}
}

// Underlying 返回底层 SDK 客户端，必要时可直接用它做本包未覆盖的调用。
func (c *Client) Underlying() *client.Client {
	return c.c
}

func (c *Client) GetLatestBlockhash(ctx context.Context) (string, error) {
	v, err := c.c.GetLatestBlockhash(ctx)
	if err != nil {
		return "", err
	}
	return v.Blockhash, nil
}

func (c *Client) GetSlot(ctx context.Context) (uint64, error) {
	return c.c.GetSlot(ctx)
}

func (c *Client) GetAccountInfo(ctx context.Context, base58Addr string) (client.AccountInfo, error) {
	return c.c.GetAccountInfo(ctx, base58Addr)
}

func (c *Client) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	return c.c.SendTransaction(ctx, tx)
}

func (c *Client) SendEncodedTransaction(ctx context.Context, base64Tx string, cfg rpc.SendTransactionConfig) (string, error) {
	res, err := c.c.RpcClient.SendTransactionWithConfig(ctx, base64Tx, cfg)
	if err != nil {
		return "", err
	}
	if res.Error != nil {
		return "", res.Error
	}
	return res.Result, nil
}

func (c *Client) GetSignatureStatus(ctx context.Context, sig string) (*rpc.SignatureStatus, error) {
	return c.c.GetSignatureStatus(ctx, sig)
}
