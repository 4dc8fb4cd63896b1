package main

import (
	"flag"
	"os"
	"runtime/debug"

	"solana-program-client/internal/config"
	"solana-program-client/internal/svc"
	"solana-program-client/pkg/logger"
	"solana-program-client/progclient"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/conf"
)

var configFile = flag.String("f", "etc/legacycall.yaml", "the config file")

// updateBlobArgs 对应链上 update_blob 指令的 borsh 参数
type updateBlobArgs struct {
	Data []byte
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var c config.CallConfig
	conf.MustLoad(*configFile, &c)

	logger.Init(c.LogConf.ToLogOption())
	defer logger.Sync()

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	programID := common.PublicKeyFromString(c.ProgramConf.ProgramID)

	// blob 账户是程序用固定种子 "blob" 推导的 PDA
	blobAccount, _, err := common.FindProgramAddress([][]byte{[]byte("blob")}, programID)
	if err != nil {
		panic(err)
	}

	accounts := []types.AccountMeta{
		{PubKey: blobAccount, IsWritable: true, IsSigner: false},
		{PubKey: svcCtx.Payer.PublicKey, IsWritable: true, IsSigner: true},
	}

	ctx, cancel := svcCtx.CallContext()
	defer cancel()

	sig, err := progclient.SignedCall(ctx, svcCtx.Conn, programID,
		svcCtx.Payer, []types.Account{svcCtx.Payer},
		"update_blob", updateBlobArgs{Data: []byte(c.BlobData)}, accounts)
	if err != nil {
		logger.Errorf("legacy 调用失败: %v", err)
		logger.Sync()
		os.Exit(1)
	}

	logger.Infof("交易已确认: signature=%s", sig)
}
