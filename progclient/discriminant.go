package progclient

import "crypto/sha256"

// NamespaceGlobal 是程序入口指令使用的命名空间。
const NamespaceGlobal = "global"

// Discriminant 计算指令判别符：sha256("<namespace>:<name>") 的前 8 字节。
// 该前缀放在指令数据头部，链上程序靠它分发到对应的处理函数。
// 纯函数，相同输入恒返回相同结果。
func Discriminant(namespace, name string) [8]byte {
	h := sha256.Sum256([]byte(namespace + ":" + name))
	var d [8]byte
	copy(d[:], h[:8])
	return d
}
