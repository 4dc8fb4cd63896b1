package main

import (
	"flag"
	"os"
	"runtime/debug"
	"strings"

	"solana-program-client/internal/config"
	"solana-program-client/internal/svc"
	"solana-program-client/pkg/logger"
	"solana-program-client/progclient"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/zeromicro/go-zero/core/conf"
)

var (
	configFile = flag.String("f", "etc/lookuptable.yaml", "the config file")
	create     = flag.Bool("create", false, "创建一张新的查找表")
	extend     = flag.String("extend", "", "待扩容的查找表地址")
	addrs      = flag.String("addrs", "", "追加的地址，英文逗号分隔")
	show       = flag.String("show", "", "查看查找表当前收录的地址")
)

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

	ctx, cancel := svcCtx.CallContext()
	defer cancel()

	switch {
	case *create:
		tableKey, sig, err := progclient.CreateLookupTable(ctx, svcCtx.Conn, svcCtx.Payer)
		if err != nil {
			fail("创建查找表失败: %v", err)
		}
		logger.Infof("查找表已创建: table=%s signature=%s", tableKey.ToBase58(), sig)

	case *extend != "":
		if *addrs == "" {
			fail("缺少 -addrs 参数")
		}
		var keys []common.PublicKey
		for _, s := range strings.Split(*addrs, ",") {
			keys = append(keys, common.PublicKeyFromString(strings.TrimSpace(s)))
		}
		sig, err := progclient.ExtendLookupTable(ctx, svcCtx.Conn, svcCtx.Payer,
			common.PublicKeyFromString(*extend), keys)
		if err != nil {
			fail("扩容查找表失败: %v", err)
		}
		logger.Infof("查找表已扩容: table=%s added=%d signature=%s", *extend, len(keys), sig)

	case *show != "":
		table, err := progclient.FetchLookupTable(ctx, svcCtx.Conn, common.PublicKeyFromString(*show))
		if err != nil {
			fail("读取查找表失败: %v", err)
		}
		logger.Infof("查找表 %s 共 %d 条地址", *show, len(table.Addresses))
		for i, a := range table.Addresses {
			logger.Infof("  [%d] %s", i, a.ToBase58())
		}

	default:
		fail("需要 -create、-extend 或 -show 之一")
	}
}

func fail(format string, args ...interface{}) {
	logger.Errorf(format, args...)
	logger.Sync()
	os.Exit(1)
}
