package config

import (
	"solana-program-client/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig RPC 节点相关配置
type RpcConfig struct {
	Endpoint        string `yaml:"endpoint"`          // RPC 节点地址，例如 https://api.devnet.solana.com
	ConfirmTimeoutS int    `yaml:"confirm_timeout_s"` // 等待交易确认的超时（秒），0 用库默认值
}

// WalletConfig 付费/签名钱包配置
type WalletConfig struct {
	KeypairPath string `yaml:"keypair_path"` // 密钥文件路径，支持 id.json 或 base58 文本
}

// ProgramConfig 目标程序配置
type ProgramConfig struct {
	ProgramID   string `yaml:"program_id"`   // 链上程序地址
	LookupTable string `yaml:"lookup_table"` // 既有查找表地址，versioned 调用用；留空表示现场创建
}

// CallConfig 是调用工具的主配置结构体
type CallConfig struct {
	LogConf     LogConfig     `yaml:"logger"`
	RpcConf     RpcConfig     `yaml:"rpc"`
	WalletConf  WalletConfig  `yaml:"wallet"`
	ProgramConf ProgramConfig `yaml:"program"`

	BlobData string `yaml:"blob_data"` // update_blob 指令写入的内容
}
