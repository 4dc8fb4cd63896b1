// Package progclient 是链上程序的轻量调用层：负责拼指令判别符、组装指令、
// 构建并签名交易（legacy 与带地址查找表的 v0 两种格式），以及查找表的创建与扩容。
// 签名、序列化、RPC 传输全部委托给 blocto/solana-go-sdk，指令参数用 borsh 编码。
package progclient
