package svc

import (
	"context"
	"time"

	"solana-program-client/internal/config"
	"solana-program-client/pkg/logger"
	"solana-program-client/progclient"

	"github.com/blocto/solana-go-sdk/types"
)

// ServiceContext 持有调用工具的共享资源
type ServiceContext struct {
	Config config.CallConfig
	Conn   *progclient.Client
	Payer  types.Account
}

// NewServiceContext 加载钱包密钥并建立 RPC 连接
func NewServiceContext(c config.CallConfig) (*ServiceContext, error) {
	payer, err := progclient.LoadKeypair(c.WalletConf.KeypairPath)
	if err != nil {
		logger.Errorf("加载 keypair 失败: path=%s err=%v", c.WalletConf.KeypairPath, err)
		return nil, err
	}

	conn := progclient.NewClient(c.RpcConf.Endpoint)
	logger.Infof("服务上下文初始化完成: endpoint=%s payer=%s", c.RpcConf.Endpoint, payer.PublicKey.ToBase58())

	return &ServiceContext{
		Config: c,
		Conn:   conn,
		Payer:  payer,
	}, nil
}

// CallContext 按配置的确认超时生成调用用的 context
func (s *ServiceContext) CallContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.Config.RpcConf.ConfirmTimeoutS) * time.Second
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
