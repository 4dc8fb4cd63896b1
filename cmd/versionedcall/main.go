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

var configFile = flag.String("f", "etc/versionedcall.yaml", "the config file")

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

	ctx, cancel := svcCtx.CallContext()
	defer cancel()

	// 配置里给了查找表就直接用，否则现场建一张并收录本次要用的地址
	var tableKey common.PublicKey
	if c.ProgramConf.LookupTable != "" {
		tableKey = common.PublicKeyFromString(c.ProgramConf.LookupTable)
	} else {
		var createSig string
		tableKey, createSig, err = progclient.CreateLookupTable(ctx, svcCtx.Conn, svcCtx.Payer)
		if err != nil {
			logger.Errorf("创建查找表失败: %v", err)
			logger.Sync()
			os.Exit(1)
		}
		logger.Infof("查找表已创建: table=%s signature=%s", tableKey.ToBase58(), createSig)

		extendSig, err := progclient.ExtendLookupTable(ctx, svcCtx.Conn, svcCtx.Payer, tableKey,
			[]common.PublicKey{programID, svcCtx.Payer.PublicKey})
		if err != nil {
			logger.Errorf("扩容查找表失败: %v", err)
			logger.Sync()
			os.Exit(1)
		}
		logger.Infof("查找表已扩容: table=%s signature=%s", tableKey.ToBase58(), extendSig)
	}

	blobAccount, _, err := common.FindProgramAddress([][]byte{[]byte("blob")}, programID)
	if err != nil {
		panic(err)
	}

	accounts := []types.AccountMeta{
		{PubKey: blobAccount, IsWritable: true, IsSigner: false},
		{PubKey: svcCtx.Payer.PublicKey, IsWritable: true, IsSigner: true},
	}

	sig, err := progclient.CallWithLookupTable(ctx, svcCtx.Conn, programID,
		"update_blob", updateBlobArgs{Data: []byte(c.BlobData)}, tableKey,
		svcCtx.Payer, []types.Account{svcCtx.Payer}, accounts)
	if err != nil {
		logger.Errorf("versioned 调用失败: %v", err)
		logger.Sync()
		os.Exit(1)
	}

	logger.Infof("交易已终局确认: signature=%s", sig)
}
