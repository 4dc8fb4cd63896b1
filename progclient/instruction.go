package progclient

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
)

// BuildInstruction 组装一条程序指令：数据为 判别符 || borsh(args)，账户列表按传入顺序保留。
// args 必须是 borsh 可序列化的结构体。
func BuildInstruction(programID common.PublicKey, method string, args interface{}, accounts []types.AccountMeta) (types.Instruction, error) {
	payload, err := borsh.Serialize(args)
	if err != nil {
		return types.Instruction{}, wrapErr(KindSerializationFailed, "BuildInstruction", method,
			fmt.Errorf("borsh encode args: %w", err))
	}

	disc := Discriminant(NamespaceGlobal, method)
	data := make([]byte, 0, len(disc)+len(payload))
	data = append(data, disc[:]...)
	data = append(data, payload...)

	return types.Instruction{
		ProgramID: programID,
		Accounts:  accounts,
		Data:      data,
	}, nil
}
